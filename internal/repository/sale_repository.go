package repository

import (
	"context"
	"time"

	"retailpos/internal/domain/model"
)

// SaleSummaryRow is one row of the sales history listing.
type SaleSummaryRow struct {
	SaleID            int64     `json:"sale_id" csv:"sale_id"`
	TransactionNumber string    `json:"transaction_number" csv:"transaction_number"`
	SaleDate          time.Time `json:"sale_date" csv:"sale_date"`
	Subtotal          float64   `json:"subtotal" csv:"subtotal"`
	Tax               float64   `json:"tax" csv:"tax"`
	Total             float64   `json:"total" csv:"total"`
	PaymentMethod     string    `json:"payment_method" csv:"payment_method"`
	ItemCount         int64     `json:"item_count" csv:"item_count"`
}

// SaleDateRange filters the history listing; nil bounds are open.
type SaleDateRange struct {
	Start *time.Time
	End   *time.Time
}

type SaleRepository interface {
	Create(ctx context.Context, sale model.Sale) (int64, error)
	FindByID(ctx context.Context, id int64) (model.Sale, error)
	ListSummaries(ctx context.Context, r SaleDateRange) ([]SaleSummaryRow, error)

	// Stats returns the number of sales and summed total in [from, to).
	Stats(ctx context.Context, from, to time.Time) (int64, float64, error)
}
