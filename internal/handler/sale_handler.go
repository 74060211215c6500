package handler

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"retailpos/internal/config"
	"retailpos/internal/usecase"
	"retailpos/internal/validator"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"
)

type SaleItemRequest struct {
	ProductID int64   `json:"product_id" validate:"required,gt=0"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
}

type CreateSaleRequest struct {
	Items []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	// total_amount is accepted for compatibility with the POS client but
	// treated as a display hint; the server recomputes the persisted total.
	TotalAmount float64  `json:"total_amount" validate:"gte=0"`
	TaxAmount   *float64 `json:"tax_amount" validate:"omitempty,gte=0"`
	SaleDate    string   `json:"sale_date" validate:"required"`
}

type CreateSaleResponse struct {
	Message           string  `json:"message"`
	SaleID            int64   `json:"sale_id"`
	TransactionNumber string  `json:"transaction_number"`
	Total             float64 `json:"total"`
}

type SaleHandler struct {
	uc  *usecase.SaleUsecase
	cfg config.Config
}

func NewSaleHandler(uc *usecase.SaleUsecase, cfg config.Config) *SaleHandler {
	return &SaleHandler{uc: uc, cfg: cfg}
}

func (h *SaleHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/sales", h.list)
	e.GET("/sales/export", h.exportCSV)
	e.GET("/sales/:id", h.get)
	e.POST("/sales", h.create)
}

// actor builds the request-scoped identity the sale is recorded under.
// Until an auth layer exists this comes from configuration.
func (h *SaleHandler) actor() usecase.Actor {
	return usecase.Actor{
		UserID:        h.cfg.DefaultUserID,
		PaymentMethod: h.cfg.DefaultPaymentMethod,
	}
}

// taxAmount resolves the tax on a sale: caller-supplied when present,
// otherwise the configured rate applied to the item subtotal.
func (h *SaleHandler) taxAmount(req CreateSaleRequest) float64 {
	if req.TaxAmount != nil {
		return *req.TaxAmount
	}
	if h.cfg.TaxRate <= 0 {
		return 0
	}
	subtotal := 0.0
	for _, it := range req.Items {
		subtotal += float64(it.Quantity) * it.UnitPrice
	}
	return math.Round(subtotal*h.cfg.TaxRate*100) / 100
}

func (h *SaleHandler) create(c echo.Context) error {
	var req CreateSaleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if errs := validator.Struct(&req); len(errs) > 0 {
		return writeValidation(c, errs)
	}

	saleDate, err := parseSaleDate(req.SaleDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid sale_date"})
	}

	items := make([]usecase.CartItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.CartItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	out, err := h.uc.CreateSale(c.Request().Context(), h.actor(), usecase.CreateSaleInput{
		Items:     items,
		TaxAmount: h.taxAmount(req),
		SaleDate:  saleDate,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, CreateSaleResponse{
		Message:           "sale processed successfully",
		SaleID:            out.SaleID,
		TransactionNumber: out.TransactionNumber,
		Total:             out.Total,
	})
}

func (h *SaleHandler) list(c echo.Context) error {
	start, end, err := dateRangeParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	rows, err := h.uc.ListSales(c.Request().Context(), start, end)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *SaleHandler) get(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	s, err := h.uc.GetSale(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SaleHandler) exportCSV(c echo.Context) error {
	start, end, err := dateRangeParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	rows, err := h.uc.ListSales(c.Request().Context(), start, end)
	if err != nil {
		return writeError(c, err)
	}

	b, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return writeError(c, usecase.Unexpected(err))
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="sales.csv"`)
	return c.Blob(http.StatusOK, "text/csv", b)
}

func dateRangeParams(c echo.Context) (*time.Time, *time.Time, error) {
	var start, end *time.Time

	if v := c.QueryParam("startDate"); v != "" {
		t, err := parseSaleDate(v)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid startDate")
		}
		start = &t
	}
	if v := c.QueryParam("endDate"); v != "" {
		t, err := parseSaleDate(v)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid endDate")
		}
		// A plain date means the whole day, inclusive
		if len(v) == len("2006-01-02") {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		end = &t
	}
	return start, end, nil
}

// parseSaleDate accepts both full timestamps and plain dates, which is what
// the POS client sends.
func parseSaleDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
