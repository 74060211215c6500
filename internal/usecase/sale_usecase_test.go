package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"retailpos/internal/domain/model"
	repo "retailpos/internal/repository"
	"retailpos/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type stubNumbers struct{ n string }

func (s stubNumbers) Next(time.Time) string { return s.n }

func requireKind(t *testing.T, err error, kind usecase.ErrorKind) {
	t.Helper()
	ae, ok := usecase.AsAppError(err)
	assert.True(t, ok, "expected AppError, got %v", err)
	if ok {
		assert.Equal(t, kind, ae.Kind)
	}
}

type saleFixture struct {
	txm       *TxManagerMock
	sales     *SaleRepoMock
	saleItems *SaleItemRepoMock
	inventory *InventoryRepoMock
	uc        *usecase.SaleUsecase
}

func newSaleFixture() *saleFixture {
	f := &saleFixture{
		sales:     new(SaleRepoMock),
		saleItems: new(SaleItemRepoMock),
		inventory: new(InventoryRepoMock),
	}
	f.txm = &TxManagerMock{Repos: &TxReposMock{
		sales:     f.sales,
		saleItems: f.saleItems,
		inventory: f.inventory,
	}}
	f.uc = usecase.NewSaleUsecase(f.txm, f.sales, stubNumbers{n: "TXN-20260829-TESTTEST"})
	return f
}

var cashier = usecase.Actor{UserID: 1, PaymentMethod: "Cash"}

func saleDate() time.Time {
	return time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)
}

func TestCreateSale_EmptyCart(t *testing.T) {
	f := newSaleFixture()

	_, err := f.uc.CreateSale(context.Background(), cashier, usecase.CreateSaleInput{
		Items:    nil,
		SaleDate: saleDate(),
	})
	requireKind(t, err, usecase.KindValidation)
	f.txm.AssertNotCalled(t, "WithinTx", mock.Anything)
}

func TestCreateSale_NonPositiveQuantity(t *testing.T) {
	f := newSaleFixture()

	_, err := f.uc.CreateSale(context.Background(), cashier, usecase.CreateSaleInput{
		Items:    []usecase.CartItemInput{{ProductID: 1, Quantity: 0, UnitPrice: 100}},
		SaleDate: saleDate(),
	})
	requireKind(t, err, usecase.KindValidation)
}

func TestCreateSale_NegativeUnitPrice(t *testing.T) {
	f := newSaleFixture()

	_, err := f.uc.CreateSale(context.Background(), cashier, usecase.CreateSaleInput{
		Items:    []usecase.CartItemInput{{ProductID: 1, Quantity: 1, UnitPrice: -1}},
		SaleDate: saleDate(),
	})
	requireKind(t, err, usecase.KindValidation)
}

func TestCreateSale_NegativeTax(t *testing.T) {
	f := newSaleFixture()

	_, err := f.uc.CreateSale(context.Background(), cashier, usecase.CreateSaleInput{
		Items:     []usecase.CartItemInput{{ProductID: 1, Quantity: 1, UnitPrice: 100}},
		TaxAmount: -5,
		SaleDate:  saleDate(),
	})
	requireKind(t, err, usecase.KindValidation)
}

func TestCreateSale_MissingSaleDate(t *testing.T) {
	f := newSaleFixture()

	_, err := f.uc.CreateSale(context.Background(), cashier, usecase.CreateSaleInput{
		Items: []usecase.CartItemInput{{ProductID: 1, Quantity: 1, UnitPrice: 100}},
	})
	requireKind(t, err, usecase.KindValidation)
}

func TestCreateSale_InvalidActor(t *testing.T) {
	f := newSaleFixture()

	_, err := f.uc.CreateSale(context.Background(), usecase.Actor{}, usecase.CreateSaleInput{
		Items:    []usecase.CartItemInput{{ProductID: 1, Quantity: 1, UnitPrice: 100}},
		SaleDate: saleDate(),
	})
	requireKind(t, err, usecase.KindValidation)
}

func TestCreateSale_UnknownProduct(t *testing.T) {
	f := newSaleFixture()

	f.txm.On("WithinTx", mock.Anything).Return()
	f.inventory.On("LockProductsForSale", mock.Anything, []int64{99}).
		Return([]model.Product{}, nil)

	_, err := f.uc.CreateSale(context.Background(), cashier, usecase.CreateSaleInput{
		Items:    []usecase.CartItemInput{{ProductID: 99, Quantity: 1, UnitPrice: 100}},
		SaleDate: saleDate(),
	})
	requireKind(t, err, usecase.KindNotFound)
	f.sales.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateSale_InsufficientStock(t *testing.T) {
	f := newSaleFixture()

	f.txm.On("WithinTx", mock.Anything).Return()
	f.inventory.On("LockProductsForSale", mock.Anything, []int64{1}).
		Return([]model.Product{{ID: 1, Code: "P-001", Name: "Beans", Stock: 2}}, nil)

	_, err := f.uc.CreateSale(context.Background(), cashier, usecase.CreateSaleInput{
		Items:    []usecase.CartItemInput{{ProductID: 1, Quantity: 5, UnitPrice: 100}},
		SaleDate: saleDate(),
	})
	requireKind(t, err, usecase.KindInsufficientStock)

	// no header, no items, no ledger rows
	f.sales.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.saleItems.AssertNotCalled(t, "CreateBulk", mock.Anything, mock.Anything, mock.Anything)
	f.inventory.AssertNotCalled(t, "AppendLog", mock.Anything, mock.Anything)
}

func TestCreateSale_InsufficientStock_AcrossDuplicateLines(t *testing.T) {
	f := newSaleFixture()

	// two lines of 3 against stock 5: the second line must fail
	f.txm.On("WithinTx", mock.Anything).Return()
	f.inventory.On("LockProductsForSale", mock.Anything, []int64{1}).
		Return([]model.Product{{ID: 1, Code: "P-001", Name: "Beans", Stock: 5}}, nil)

	_, err := f.uc.CreateSale(context.Background(), cashier, usecase.CreateSaleInput{
		Items: []usecase.CartItemInput{
			{ProductID: 1, Quantity: 3, UnitPrice: 100},
			{ProductID: 1, Quantity: 3, UnitPrice: 100},
		},
		SaleDate: saleDate(),
	})
	requireKind(t, err, usecase.KindInsufficientStock)
	f.sales.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateSale_ConditionalDecrementLost(t *testing.T) {
	f := newSaleFixture()

	f.txm.On("WithinTx", mock.Anything).Return()
	f.inventory.On("LockProductsForSale", mock.Anything, []int64{1}).
		Return([]model.Product{{ID: 1, Code: "P-001", Name: "Beans", Stock: 10}}, nil)
	f.sales.On("Create", mock.Anything, mock.AnythingOfType("model.Sale")).Return(int64(42), nil)
	f.saleItems.On("CreateBulk", mock.Anything, int64(42), mock.Anything).Return(nil)
	// the guarded UPDATE reports not enough stock after all
	f.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(1), 3).Return(false, nil)

	_, err := f.uc.CreateSale(context.Background(), cashier, usecase.CreateSaleInput{
		Items:    []usecase.CartItemInput{{ProductID: 1, Quantity: 3, UnitPrice: 100}},
		SaleDate: saleDate(),
	})
	requireKind(t, err, usecase.KindInsufficientStock)
	f.inventory.AssertNotCalled(t, "AppendLog", mock.Anything, mock.Anything)
}

func TestCreateSale_StorageFailureIsUnexpected(t *testing.T) {
	f := newSaleFixture()

	f.txm.On("WithinTx", mock.Anything).Return()
	f.inventory.On("LockProductsForSale", mock.Anything, []int64{1}).
		Return(nil, errors.New("connection reset"))

	_, err := f.uc.CreateSale(context.Background(), cashier, usecase.CreateSaleInput{
		Items:    []usecase.CartItemInput{{ProductID: 1, Quantity: 1, UnitPrice: 100}},
		SaleDate: saleDate(),
	})
	requireKind(t, err, usecase.KindUnexpected)
}

func TestCreateSale_Success(t *testing.T) {
	f := newSaleFixture()

	f.txm.On("WithinTx", mock.Anything).Return()
	f.inventory.On("LockProductsForSale", mock.Anything, []int64{1}).
		Return([]model.Product{{
			ID: 1, Code: "P-001", Name: "Beans",
			Stock: 10, ReorderLevel: 5, UnitPrice: 100,
		}}, nil)

	f.sales.On("Create", mock.Anything, mock.MatchedBy(func(s model.Sale) bool {
		return s.TransactionNumber == "TXN-20260829-TESTTEST" &&
			s.Subtotal == 300 &&
			s.Tax == 30 &&
			s.Total == 330 &&
			s.PaymentMethod == "Cash" &&
			s.UserID == 1
	})).Return(int64(42), nil)

	f.saleItems.On("CreateBulk", mock.Anything, int64(42), mock.MatchedBy(func(items []model.SaleItem) bool {
		if len(items) != 1 {
			return false
		}
		it := items[0]
		return it.ProductID == 1 &&
			it.ProductCode == "P-001" &&
			it.ProductName == "Beans" &&
			it.Quantity == 3 &&
			it.UnitPrice == 100 &&
			it.Subtotal == 300
	})).Return(nil)

	f.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(1), 3).Return(true, nil)
	f.inventory.On("AppendLog", mock.Anything, mock.MatchedBy(func(l model.InventoryLog) bool {
		return l.ProductID == 1 &&
			l.ProductCode == "P-001" &&
			l.ChangeAmount == -3 &&
			l.Reason == model.InventoryReasonSale &&
			l.ReferenceType == model.InventoryRefSale &&
			l.ReferenceID == 42 &&
			l.ChangedBy == 1
	})).Return(nil)

	out, err := f.uc.CreateSale(context.Background(), cashier, usecase.CreateSaleInput{
		Items:     []usecase.CartItemInput{{ProductID: 1, Quantity: 3, UnitPrice: 100}},
		TaxAmount: 30,
		SaleDate:  saleDate(),
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(42), out.SaleID)
	assert.Equal(t, "TXN-20260829-TESTTEST", out.TransactionNumber)
	assert.Equal(t, 330.0, out.Total)

	f.sales.AssertExpectations(t)
	f.saleItems.AssertExpectations(t)
	f.inventory.AssertExpectations(t)
}

func TestCreateSale_MultipleProducts_LocksOnceInCartOrder(t *testing.T) {
	f := newSaleFixture()

	f.txm.On("WithinTx", mock.Anything).Return()
	// one batched locked read for both products, ids in cart order
	f.inventory.On("LockProductsForSale", mock.Anything, []int64{2, 1}).
		Return([]model.Product{
			{ID: 1, Code: "P-001", Name: "Beans", Stock: 10},
			{ID: 2, Code: "P-002", Name: "Filters", Stock: 4},
		}, nil)
	f.sales.On("Create", mock.Anything, mock.MatchedBy(func(s model.Sale) bool {
		// 2*50 + 3*100 = 400
		return s.Subtotal == 400 && s.Tax == 0 && s.Total == 400
	})).Return(int64(7), nil)
	f.saleItems.On("CreateBulk", mock.Anything, int64(7), mock.MatchedBy(func(items []model.SaleItem) bool {
		return len(items) == 2 && items[0].ProductCode == "P-002" && items[1].ProductCode == "P-001"
	})).Return(nil)
	f.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(2), 2).Return(true, nil)
	f.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(1), 3).Return(true, nil)
	f.inventory.On("AppendLog", mock.Anything, mock.AnythingOfType("model.InventoryLog")).Return(nil).Twice()

	_, err := f.uc.CreateSale(context.Background(), cashier, usecase.CreateSaleInput{
		Items: []usecase.CartItemInput{
			{ProductID: 2, Quantity: 2, UnitPrice: 50},
			{ProductID: 1, Quantity: 3, UnitPrice: 100},
		},
		SaleDate: saleDate(),
	})
	assert.NoError(t, err)
	f.inventory.AssertNumberOfCalls(t, "LockProductsForSale", 1)
}

func TestListSales_EndBeforeStart(t *testing.T) {
	f := newSaleFixture()

	start := saleDate()
	end := start.Add(-48 * time.Hour)
	_, err := f.uc.ListSales(context.Background(), &start, &end)
	requireKind(t, err, usecase.KindValidation)
}

func TestListSales_Success(t *testing.T) {
	f := newSaleFixture()

	f.sales.On("ListSummaries", mock.Anything, mock.AnythingOfType("repository.SaleDateRange")).
		Return([]repo.SaleSummaryRow{{SaleID: 1, Total: 330}}, nil)

	rows, err := f.uc.ListSales(context.Background(), nil, nil)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestGetSale_NotFound(t *testing.T) {
	f := newSaleFixture()

	f.sales.On("FindByID", mock.Anything, int64(99)).Return(model.Sale{}, repo.ErrNotFound)

	_, err := f.uc.GetSale(context.Background(), 99)
	requireKind(t, err, usecase.KindNotFound)
}
