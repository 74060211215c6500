package usecase_test

import (
	"context"
	"time"

	"retailpos/internal/domain/model"
	repo "retailpos/internal/repository"

	"github.com/stretchr/testify/mock"
)

// TxManagerMock runs the closure against a fixed set of repos so unit tests
// can assert on what happened "inside" the transaction.
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	products  repo.ProductRepository
	sales     repo.SaleRepository
	saleItems repo.SaleItemRepository
	inventory repo.InventoryRepository
}

func (r *TxReposMock) Products() repo.ProductRepository    { return r.products }
func (r *TxReposMock) Sales() repo.SaleRepository          { return r.sales }
func (r *TxReposMock) SaleItems() repo.SaleItemRepository  { return r.saleItems }
func (r *TxReposMock) Inventory() repo.InventoryRepository { return r.inventory }

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context) ([]repo.ProductListRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]repo.ProductListRow)
	return rows, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	updated, _ := args.Get(0).(model.Product)
	return updated, args.Error(1)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProductRepoMock) CodeExists(ctx context.Context, code string, excludeID int64) (bool, error) {
	args := m.Called(ctx, code, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *ProductRepoMock) CountByCategoryID(ctx context.Context, categoryID int64) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProductRepoMock) CountBySupplierID(ctx context.Context, supplierID int64) (int64, error) {
	args := m.Called(ctx, supplierID)
	return args.Get(0).(int64), args.Error(1)
}

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Category)
	return items, args.Error(1)
}

func (m *CategoryRepoMock) FindByID(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *CategoryRepoMock) Create(ctx context.Context, c model.Category) (model.Category, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Category)
	return created, args.Error(1)
}

func (m *CategoryRepoMock) Update(ctx context.Context, c model.Category) (model.Category, error) {
	args := m.Called(ctx, c)
	updated, _ := args.Get(0).(model.Category)
	return updated, args.Error(1)
}

func (m *CategoryRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CategoryRepoMock) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type SupplierRepoMock struct{ mock.Mock }

func (m *SupplierRepoMock) List(ctx context.Context) ([]model.Supplier, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Supplier)
	return items, args.Error(1)
}

func (m *SupplierRepoMock) FindByID(ctx context.Context, id int64) (model.Supplier, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.Supplier)
	return s, args.Error(1)
}

func (m *SupplierRepoMock) Create(ctx context.Context, s model.Supplier) (model.Supplier, error) {
	args := m.Called(ctx, s)
	created, _ := args.Get(0).(model.Supplier)
	return created, args.Error(1)
}

func (m *SupplierRepoMock) Update(ctx context.Context, s model.Supplier) (model.Supplier, error) {
	args := m.Called(ctx, s)
	updated, _ := args.Get(0).(model.Supplier)
	return updated, args.Error(1)
}

func (m *SupplierRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *SupplierRepoMock) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type SaleRepoMock struct{ mock.Mock }

func (m *SaleRepoMock) Create(ctx context.Context, sale model.Sale) (int64, error) {
	args := m.Called(ctx, sale)
	return args.Get(0).(int64), args.Error(1)
}

func (m *SaleRepoMock) FindByID(ctx context.Context, id int64) (model.Sale, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.Sale)
	return s, args.Error(1)
}

func (m *SaleRepoMock) ListSummaries(ctx context.Context, r repo.SaleDateRange) ([]repo.SaleSummaryRow, error) {
	args := m.Called(ctx, r)
	rows, _ := args.Get(0).([]repo.SaleSummaryRow)
	return rows, args.Error(1)
}

func (m *SaleRepoMock) Stats(ctx context.Context, from, to time.Time) (int64, float64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int64), args.Get(1).(float64), args.Error(2)
}

type SaleItemRepoMock struct{ mock.Mock }

func (m *SaleItemRepoMock) CreateBulk(ctx context.Context, saleID int64, items []model.SaleItem) error {
	args := m.Called(ctx, saleID, items)
	return args.Error(0)
}

func (m *SaleItemRepoMock) ListBySaleID(ctx context.Context, saleID int64) ([]model.SaleItem, error) {
	args := m.Called(ctx, saleID)
	items, _ := args.Get(0).([]model.SaleItem)
	return items, args.Error(1)
}

func (m *SaleItemRepoMock) CountByProductID(ctx context.Context, productID int64) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

type InventoryRepoMock struct{ mock.Mock }

func (m *InventoryRepoMock) LockProductsForSale(ctx context.Context, ids []int64) ([]model.Product, error) {
	args := m.Called(ctx, ids)
	ps, _ := args.Get(0).([]model.Product)
	return ps, args.Error(1)
}

func (m *InventoryRepoMock) DecreaseStockIfEnough(ctx context.Context, productID int64, qty int) (bool, error) {
	args := m.Called(ctx, productID, qty)
	return args.Bool(0), args.Error(1)
}

func (m *InventoryRepoMock) SetStock(ctx context.Context, productID int64, newStock int) error {
	args := m.Called(ctx, productID, newStock)
	return args.Error(0)
}

func (m *InventoryRepoMock) AppendLog(ctx context.Context, entry model.InventoryLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
