package repository

import (
	"context"

	"retailpos/internal/domain/model"
)

type SaleItemRepository interface {
	CreateBulk(ctx context.Context, saleID int64, items []model.SaleItem) error
	ListBySaleID(ctx context.Context, saleID int64) ([]model.SaleItem, error)
	CountByProductID(ctx context.Context, productID int64) (int64, error)
}
