package usecase

import (
	"context"
	"strings"

	"retailpos/internal/domain/model"
	repo "retailpos/internal/repository"
)

type SupplierUsecase struct {
	suppliers repo.SupplierRepository
	products  repo.ProductRepository
}

func NewSupplierUsecase(suppliers repo.SupplierRepository, products repo.ProductRepository) *SupplierUsecase {
	return &SupplierUsecase{suppliers: suppliers, products: products}
}

type SupplierInput struct {
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
}

func (u *SupplierUsecase) List(ctx context.Context) ([]model.Supplier, error) {
	items, err := u.suppliers.List(ctx)
	if err != nil {
		return nil, Unexpected(err)
	}
	return items, nil
}

func (u *SupplierUsecase) Get(ctx context.Context, id int64) (model.Supplier, error) {
	if id <= 0 {
		return model.Supplier{}, Validationf("invalid supplier id")
	}
	s, err := u.suppliers.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Supplier{}, NotFoundf("supplier %d not found", id)
	}
	if err != nil {
		return model.Supplier{}, Unexpected(err)
	}
	return s, nil
}

func (u *SupplierUsecase) Create(ctx context.Context, in SupplierInput) (model.Supplier, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Supplier{}, Validationf("supplier_name is required")
	}

	created, err := u.suppliers.Create(ctx, model.Supplier{
		Name:          name,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
		Address:       in.Address,
	})
	if err != nil {
		return model.Supplier{}, Unexpected(err)
	}
	return created, nil
}

func (u *SupplierUsecase) Update(ctx context.Context, id int64, in SupplierInput) (model.Supplier, error) {
	if id <= 0 {
		return model.Supplier{}, Validationf("invalid supplier id")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Supplier{}, Validationf("supplier_name is required")
	}

	updated, err := u.suppliers.Update(ctx, model.Supplier{
		ID:            id,
		Name:          name,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
		Address:       in.Address,
	})
	if err == repo.ErrNotFound {
		return model.Supplier{}, NotFoundf("supplier %d not found", id)
	}
	if err != nil {
		return model.Supplier{}, Unexpected(err)
	}
	return updated, nil
}

// Delete refuses to remove a supplier any product still references.
func (u *SupplierUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return Validationf("invalid supplier id")
	}

	count, err := u.products.CountBySupplierID(ctx, id)
	if err != nil {
		return Unexpected(err)
	}
	if count > 0 {
		return Referentialf("cannot delete supplier with associated products")
	}

	err = u.suppliers.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NotFoundf("supplier %d not found", id)
	}
	if err != nil {
		return Unexpected(err)
	}
	return nil
}
