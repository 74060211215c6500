package repository

import (
	"context"

	"retailpos/internal/domain/model"
)

type SupplierRepository interface {
	List(ctx context.Context) ([]model.Supplier, error)
	FindByID(ctx context.Context, id int64) (model.Supplier, error)
	Create(ctx context.Context, s model.Supplier) (model.Supplier, error)
	Update(ctx context.Context, s model.Supplier) (model.Supplier, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}
