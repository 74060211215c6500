package usecase

import (
	"context"
	"strings"

	"retailpos/internal/domain/model"
	repo "retailpos/internal/repository"
)

const defaultReorderLevel = 5

type ProductUsecase struct {
	products   repo.ProductRepository
	categories repo.CategoryRepository
	suppliers  repo.SupplierRepository
	saleItems  repo.SaleItemRepository
	tx         repo.TransactionManager
}

func NewProductUsecase(
	products repo.ProductRepository,
	categories repo.CategoryRepository,
	suppliers repo.SupplierRepository,
	saleItems repo.SaleItemRepository,
	tx repo.TransactionManager,
) *ProductUsecase {
	return &ProductUsecase{
		products:   products,
		categories: categories,
		suppliers:  suppliers,
		saleItems:  saleItems,
		tx:         tx,
	}
}

type ProductInput struct {
	Code              string
	Name              string
	CategoryID        int64
	SupplierID        int64
	UnitPrice         float64
	Stock             *int
	ReorderLevel      *int
	SizeSpecification *string
}

func (u *ProductUsecase) List(ctx context.Context) ([]repo.ProductListRow, error) {
	rows, err := u.products.List(ctx)
	if err != nil {
		return nil, Unexpected(err)
	}
	return rows, nil
}

func (u *ProductUsecase) Get(ctx context.Context, id int64) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, Validationf("invalid product id")
	}
	p, err := u.products.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Product{}, NotFoundf("product %d not found", id)
	}
	if err != nil {
		return model.Product{}, Unexpected(err)
	}
	return p, nil
}

func (u *ProductUsecase) Create(ctx context.Context, in ProductInput) (model.Product, error) {
	p, err := u.buildProduct(ctx, 0, in)
	if err != nil {
		return model.Product{}, err
	}

	created, err := u.products.Create(ctx, p)
	if err != nil {
		return model.Product{}, Unexpected(err)
	}
	return created, nil
}

func (u *ProductUsecase) Update(ctx context.Context, id int64, in ProductInput) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, Validationf("invalid product id")
	}

	// Omitted stock/reorder fields keep their current values instead of
	// falling back to the create-time defaults.
	current, err := u.products.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Product{}, NotFoundf("product %d not found", id)
	}
	if err != nil {
		return model.Product{}, Unexpected(err)
	}
	if in.Stock == nil {
		in.Stock = &current.Stock
	}
	if in.ReorderLevel == nil {
		in.ReorderLevel = &current.ReorderLevel
	}

	p, err := u.buildProduct(ctx, id, in)
	if err != nil {
		return model.Product{}, err
	}
	p.ID = id

	updated, err := u.products.Update(ctx, p)
	if err == repo.ErrNotFound {
		return model.Product{}, NotFoundf("product %d not found", id)
	}
	if err != nil {
		return model.Product{}, Unexpected(err)
	}
	return updated, nil
}

// Delete refuses to remove a product that appears in any sale: sold
// products are immutable history.
func (u *ProductUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return Validationf("invalid product id")
	}

	sold, err := u.saleItems.CountByProductID(ctx, id)
	if err != nil {
		return Unexpected(err)
	}
	if sold > 0 {
		return Referentialf("cannot delete product that has been sold")
	}

	err = u.products.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NotFoundf("product %d not found", id)
	}
	if err != nil {
		return Unexpected(err)
	}
	return nil
}

// CheckCode is the pre-submit uniqueness hint. The same check runs again
// inside Create/Update, so a stale client answer cannot slip a duplicate in.
func (u *ProductUsecase) CheckCode(ctx context.Context, code string, excludeID int64) (bool, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return false, Validationf("product code is required")
	}
	exists, err := u.products.CodeExists(ctx, code, excludeID)
	if err != nil {
		return false, Unexpected(err)
	}
	return exists, nil
}

// AdjustStock sets an absolute stock value with a reason, writing the
// signed delta to the inventory log in the same transaction.
func (u *ProductUsecase) AdjustStock(ctx context.Context, actor Actor, productID int64, newStock int, reason string) error {
	if productID <= 0 {
		return Validationf("invalid product id")
	}
	if newStock < 0 {
		return Validationf("stock must be >= 0")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return Validationf("reason is required")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		locked, err := r.Inventory().LockProductsForSale(ctx, []int64{productID})
		if err != nil {
			return Unexpected(err)
		}
		if len(locked) == 0 {
			return NotFoundf("product %d not found", productID)
		}
		p := locked[0]

		if err := r.Inventory().SetStock(ctx, productID, newStock); err != nil {
			return Unexpected(err)
		}

		if err := r.Inventory().AppendLog(ctx, model.InventoryLog{
			ProductID:     productID,
			ProductCode:   p.Code,
			ChangeAmount:  newStock - p.Stock,
			Reason:        reason,
			ReferenceType: model.InventoryRefAdjustment,
			ReferenceID:   productID,
			ChangedBy:     actor.UserID,
		}); err != nil {
			return Unexpected(err)
		}
		return nil
	})
}

// buildProduct validates the input against the catalog's referential and
// uniqueness rules and assembles the row. excludeID skips the product
// itself in the duplicate-code check on updates.
func (u *ProductUsecase) buildProduct(ctx context.Context, excludeID int64, in ProductInput) (model.Product, error) {
	code := strings.TrimSpace(in.Code)
	name := strings.TrimSpace(in.Name)

	if code == "" {
		return model.Product{}, Validationf("product_code is required")
	}
	if name == "" {
		return model.Product{}, Validationf("product_name is required")
	}
	if in.CategoryID <= 0 {
		return model.Product{}, Validationf("category_id is required")
	}
	if in.SupplierID <= 0 {
		return model.Product{}, Validationf("supplier_id is required")
	}
	if in.UnitPrice < 0 {
		return model.Product{}, Validationf("unit_price must be >= 0")
	}
	if in.Stock != nil && *in.Stock < 0 {
		return model.Product{}, Validationf("quantity_in_stock must be >= 0")
	}
	if in.ReorderLevel != nil && *in.ReorderLevel < 0 {
		return model.Product{}, Validationf("reorder_level must be >= 0")
	}

	ok, err := u.categories.Exists(ctx, in.CategoryID)
	if err != nil {
		return model.Product{}, Unexpected(err)
	}
	if !ok {
		return model.Product{}, Referentialf("category %d does not exist", in.CategoryID)
	}

	ok, err = u.suppliers.Exists(ctx, in.SupplierID)
	if err != nil {
		return model.Product{}, Unexpected(err)
	}
	if !ok {
		return model.Product{}, Referentialf("supplier %d does not exist", in.SupplierID)
	}

	exists, err := u.products.CodeExists(ctx, code, excludeID)
	if err != nil {
		return model.Product{}, Unexpected(err)
	}
	if exists {
		return model.Product{}, Conflictf("product code %s already exists", code)
	}

	stock := 0
	if in.Stock != nil {
		stock = *in.Stock
	}
	reorder := defaultReorderLevel
	if in.ReorderLevel != nil {
		reorder = *in.ReorderLevel
	}

	return model.Product{
		Code:              code,
		Name:              name,
		CategoryID:        in.CategoryID,
		SupplierID:        in.SupplierID,
		UnitPrice:         in.UnitPrice,
		Stock:             stock,
		ReorderLevel:      reorder,
		SizeSpecification: in.SizeSpecification,
	}, nil
}
