package handler

import (
	"net/http"

	"retailpos/internal/config"
	"retailpos/internal/usecase"
	"retailpos/internal/validator"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"
)

type StockAdjustmentRequest struct {
	QuantityInStock *int   `json:"quantity_in_stock" validate:"required,gte=0"`
	Reason          string `json:"reason" validate:"required,max=255"`
}

// ReportHandler serves the inventory report/export, dashboard stats, and
// manual stock adjustments.
type ReportHandler struct {
	reports  *usecase.ReportUsecase
	products *usecase.ProductUsecase
	cfg      config.Config
}

func NewReportHandler(reports *usecase.ReportUsecase, products *usecase.ProductUsecase, cfg config.Config) *ReportHandler {
	return &ReportHandler{reports: reports, products: products, cfg: cfg}
}

func (h *ReportHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/inventory/export", h.exportCSV)
	e.GET("/inventory/report", h.report)
	e.PUT("/inventory/:product_id", h.adjustStock)
	e.GET("/dashboard/stats", h.dashboard)
}

func (h *ReportHandler) report(c echo.Context) error {
	rep, err := h.reports.InventoryReport(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rep)
}

func (h *ReportHandler) exportCSV(c echo.Context) error {
	rep, err := h.reports.InventoryReport(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	b, err := gocsv.MarshalBytes(&rep.Rows)
	if err != nil {
		return writeError(c, usecase.Unexpected(err))
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="inventory.csv"`)
	return c.Blob(http.StatusOK, "text/csv", b)
}

func (h *ReportHandler) dashboard(c echo.Context) error {
	stats, err := h.reports.Dashboard(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *ReportHandler) adjustStock(c echo.Context) error {
	id, ok := paramID(c, "product_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product_id"})
	}

	var req StockAdjustmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if errs := validator.Struct(&req); len(errs) > 0 {
		return writeValidation(c, errs)
	}

	actor := usecase.Actor{
		UserID:        h.cfg.DefaultUserID,
		PaymentMethod: h.cfg.DefaultPaymentMethod,
	}
	if err := h.products.AdjustStock(c.Request().Context(), actor, id, *req.QuantityInStock, req.Reason); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "stock updated"})
}
