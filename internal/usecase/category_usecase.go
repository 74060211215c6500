package usecase

import (
	"context"
	"strings"

	"retailpos/internal/domain/model"
	repo "retailpos/internal/repository"
)

type CategoryUsecase struct {
	categories repo.CategoryRepository
	products   repo.ProductRepository
}

func NewCategoryUsecase(categories repo.CategoryRepository, products repo.ProductRepository) *CategoryUsecase {
	return &CategoryUsecase{categories: categories, products: products}
}

type CategoryInput struct {
	Name        string
	Description string
}

func (u *CategoryUsecase) List(ctx context.Context) ([]model.Category, error) {
	items, err := u.categories.List(ctx)
	if err != nil {
		return nil, Unexpected(err)
	}
	return items, nil
}

func (u *CategoryUsecase) Get(ctx context.Context, id int64) (model.Category, error) {
	if id <= 0 {
		return model.Category{}, Validationf("invalid category id")
	}
	c, err := u.categories.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Category{}, NotFoundf("category %d not found", id)
	}
	if err != nil {
		return model.Category{}, Unexpected(err)
	}
	return c, nil
}

func (u *CategoryUsecase) Create(ctx context.Context, in CategoryInput) (model.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Category{}, Validationf("category_name is required")
	}

	created, err := u.categories.Create(ctx, model.Category{
		Name:        name,
		Description: in.Description,
	})
	if err != nil {
		return model.Category{}, Unexpected(err)
	}
	return created, nil
}

func (u *CategoryUsecase) Update(ctx context.Context, id int64, in CategoryInput) (model.Category, error) {
	if id <= 0 {
		return model.Category{}, Validationf("invalid category id")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Category{}, Validationf("category_name is required")
	}

	updated, err := u.categories.Update(ctx, model.Category{
		ID:          id,
		Name:        name,
		Description: in.Description,
	})
	if err == repo.ErrNotFound {
		return model.Category{}, NotFoundf("category %d not found", id)
	}
	if err != nil {
		return model.Category{}, Unexpected(err)
	}
	return updated, nil
}

// Delete refuses to remove a category any product still references.
func (u *CategoryUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return Validationf("invalid category id")
	}

	count, err := u.products.CountByCategoryID(ctx, id)
	if err != nil {
		return Unexpected(err)
	}
	if count > 0 {
		return Referentialf("cannot delete category with associated products")
	}

	err = u.categories.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NotFoundf("category %d not found", id)
	}
	if err != nil {
		return Unexpected(err)
	}
	return nil
}
