package repository

import (
	"context"

	"retailpos/internal/domain/model"
)

type InventoryRepository interface {
	// LockProductsForSale reads all given products in one batched query,
	// holding row locks until the surrounding transaction ends. Products
	// that do not exist are simply absent from the result.
	LockProductsForSale(ctx context.Context, ids []int64) ([]model.Product, error)

	// DecreaseStockIfEnough decrements stock only when enough remains,
	// returning false otherwise. The condition and the decrement are one
	// statement, so concurrent sales can never drive stock negative.
	DecreaseStockIfEnough(ctx context.Context, productID int64, qty int) (bool, error)

	// SetStock sets the absolute stock value (manual adjustment).
	SetStock(ctx context.Context, productID int64, newStock int) error

	AppendLog(ctx context.Context, entry model.InventoryLog) error
}
