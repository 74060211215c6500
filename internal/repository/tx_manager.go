package repository

import "context"

// TxRepos are the repositories visible inside one database transaction.
type TxRepos interface {
	Products() ProductRepository
	Sales() SaleRepository
	SaleItems() SaleItemRepository
	Inventory() InventoryRepository
}

// TransactionManager hides begin/commit/rollback from the usecases.
// fn returning an error rolls the whole transaction back.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
