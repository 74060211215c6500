package repository

import (
	"context"

	"retailpos/internal/domain/model"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id int64) (model.Category, error)
	Create(ctx context.Context, c model.Category) (model.Category, error)
	Update(ctx context.Context, c model.Category) (model.Category, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}
