package repository

import (
	"context"

	repo "retailpos/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	products  repo.ProductRepository
	sales     repo.SaleRepository
	saleItems repo.SaleItemRepository
	inventory repo.InventoryRepository
}

func (r *txReposGorm) Products() repo.ProductRepository    { return r.products }
func (r *txReposGorm) Sales() repo.SaleRepository          { return r.sales }
func (r *txReposGorm) SaleItems() repo.SaleItemRepository  { return r.saleItems }
func (r *txReposGorm) Inventory() repo.InventoryRepository { return r.inventory }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

// WithinTx runs fn inside one database transaction, handing it repositories
// rebuilt on the transactional handle. A returned error rolls everything
// back.
func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := &txReposGorm{
			products:  NewProductGormRepository(tx),
			sales:     NewSaleGormRepository(tx),
			saleItems: NewSaleItemGormRepository(tx),
			inventory: NewInventoryGormRepository(tx),
		}
		return fn(r)
	})
}
