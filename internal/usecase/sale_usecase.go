package usecase

import (
	"context"
	"math"
	"time"

	"retailpos/internal/domain/model"
	repo "retailpos/internal/repository"
)

// Actor is the request-scoped identity a sale is recorded under. Built from
// configuration at the boundary until a real auth layer exists.
type Actor struct {
	UserID        int64
	PaymentMethod string
}

// TxNumberGenerator produces unique human-readable transaction numbers.
// Collision-freedom is ultimately enforced by the unique index on
// sales.transaction_number.
type TxNumberGenerator interface {
	Next(at time.Time) string
}

type SaleUsecase struct {
	tx      repo.TransactionManager
	sales   repo.SaleRepository
	numbers TxNumberGenerator
}

func NewSaleUsecase(tx repo.TransactionManager, sales repo.SaleRepository, numbers TxNumberGenerator) *SaleUsecase {
	return &SaleUsecase{tx: tx, sales: sales, numbers: numbers}
}

type CartItemInput struct {
	ProductID int64
	Quantity  int
	UnitPrice float64
}

type CreateSaleInput struct {
	Items     []CartItemInput
	TaxAmount float64
	SaleDate  time.Time
}

type CreateSaleOutput struct {
	SaleID            int64   `json:"sale_id"`
	TransactionNumber string  `json:"transaction_number"`
	Total             float64 `json:"total"`
}

// CreateSale runs the whole checkout as one all-or-nothing transaction:
// lock the cart's product rows, verify stock, persist the sale header and
// snapshot items, decrement stock, and append ledger entries. Any failure
// rolls everything back; no partial sale is ever visible.
func (u *SaleUsecase) CreateSale(ctx context.Context, actor Actor, in CreateSaleInput) (CreateSaleOutput, error) {
	if actor.UserID <= 0 {
		return CreateSaleOutput{}, Validationf("invalid acting user")
	}
	if len(in.Items) == 0 {
		return CreateSaleOutput{}, Validationf("items must not be empty")
	}
	for i, it := range in.Items {
		if it.ProductID <= 0 {
			return CreateSaleOutput{}, Validationf("items[%d].product_id must be a positive id", i)
		}
		if it.Quantity <= 0 {
			return CreateSaleOutput{}, Validationf("items[%d].quantity must be a positive integer", i)
		}
		if it.UnitPrice < 0 {
			return CreateSaleOutput{}, Validationf("items[%d].unit_price must be >= 0", i)
		}
	}
	if in.TaxAmount < 0 {
		return CreateSaleOutput{}, Validationf("tax_amount must be >= 0")
	}
	if in.SaleDate.IsZero() {
		return CreateSaleOutput{}, Validationf("sale_date is required")
	}

	// Subtotal is always server-computed. Tax is caller-supplied (rate
	// policy lives in the presentation layer); the persisted total is
	// subtotal + tax, so the totals identity holds no matter what the
	// caller claimed.
	subtotal := 0.0
	for _, it := range in.Items {
		subtotal += float64(it.Quantity) * it.UnitPrice
	}
	subtotal = round2(subtotal)
	tax := round2(in.TaxAmount)
	total := round2(subtotal + tax)

	var out CreateSaleOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// One batched locked read of every cart product; the row locks
		// serialize concurrent sales on the same stock rows for the rest
		// of the transaction.
		ids := distinctProductIDs(in.Items)
		locked, err := r.Inventory().LockProductsForSale(ctx, ids)
		if err != nil {
			return Unexpected(err)
		}
		products := make(map[int64]model.Product, len(locked))
		for _, p := range locked {
			products[p.ID] = p
		}
		for _, id := range ids {
			if _, ok := products[id]; !ok {
				return NotFoundf("product %d not found", id)
			}
		}

		// Stock sufficiency against the locked snapshot, cumulative across
		// duplicate lines for the same product.
		remaining := make(map[int64]int, len(products))
		for id, p := range products {
			remaining[id] = p.Stock
		}
		for _, it := range in.Items {
			p := products[it.ProductID]
			if remaining[it.ProductID] < it.Quantity {
				return InsufficientStockf(
					"insufficient stock for product %s: requested %d, available %d",
					p.Code, it.Quantity, remaining[it.ProductID],
				)
			}
			remaining[it.ProductID] -= it.Quantity
		}

		number := u.numbers.Next(in.SaleDate)
		saleID, err := r.Sales().Create(ctx, model.Sale{
			TransactionNumber: number,
			SaleDate:          in.SaleDate,
			Subtotal:          subtotal,
			Tax:               tax,
			Total:             total,
			PaymentMethod:     actor.PaymentMethod,
			UserID:            actor.UserID,
		})
		if err != nil {
			return Unexpected(err)
		}

		items := make([]model.SaleItem, 0, len(in.Items))
		for _, it := range in.Items {
			p := products[it.ProductID]
			items = append(items, model.SaleItem{
				ProductID:   it.ProductID,
				ProductCode: p.Code,
				ProductName: p.Name,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
				Subtotal:    round2(float64(it.Quantity) * it.UnitPrice),
			})
		}
		if err := r.SaleItems().CreateBulk(ctx, saleID, items); err != nil {
			return Unexpected(err)
		}

		for _, it := range in.Items {
			p := products[it.ProductID]

			// The conditional decrement is the hard guarantee: even if the
			// snapshot check above were wrong, stock cannot go negative.
			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, it.ProductID, it.Quantity)
			if err != nil {
				return Unexpected(err)
			}
			if !ok {
				return InsufficientStockf(
					"insufficient stock for product %s: requested %d",
					p.Code, it.Quantity,
				)
			}

			if err := r.Inventory().AppendLog(ctx, model.InventoryLog{
				ProductID:     it.ProductID,
				ProductCode:   p.Code,
				ChangeAmount:  -it.Quantity,
				Reason:        model.InventoryReasonSale,
				ReferenceType: model.InventoryRefSale,
				ReferenceID:   saleID,
				ChangedBy:     actor.UserID,
			}); err != nil {
				return Unexpected(err)
			}
		}

		out = CreateSaleOutput{SaleID: saleID, TransactionNumber: number, Total: total}
		return nil
	})
	if err != nil {
		return CreateSaleOutput{}, err
	}
	return out, nil
}

func (u *SaleUsecase) ListSales(ctx context.Context, start, end *time.Time) ([]repo.SaleSummaryRow, error) {
	if start != nil && end != nil && end.Before(*start) {
		return nil, Validationf("endDate must not be before startDate")
	}
	rows, err := u.sales.ListSummaries(ctx, repo.SaleDateRange{Start: start, End: end})
	if err != nil {
		return nil, Unexpected(err)
	}
	return rows, nil
}

func (u *SaleUsecase) GetSale(ctx context.Context, id int64) (model.Sale, error) {
	if id <= 0 {
		return model.Sale{}, Validationf("invalid sale id")
	}
	s, err := u.sales.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Sale{}, NotFoundf("sale %d not found", id)
	}
	if err != nil {
		return model.Sale{}, Unexpected(err)
	}
	return s, nil
}

func distinctProductIDs(items []CartItemInput) []int64 {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.ProductID]; ok {
			continue
		}
		seen[it.ProductID] = struct{}{}
		ids = append(ids, it.ProductID)
	}
	return ids
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
