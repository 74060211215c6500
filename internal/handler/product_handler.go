package handler

import (
	"net/http"
	"strconv"

	"retailpos/internal/usecase"
	"retailpos/internal/validator"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

// writeError maps the usecase error kind to a status code. Unexpected
// errors keep their detail in the server log; the caller gets a generic
// message.
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if ae, ok := usecase.AsAppError(err); ok {
		if ae.Kind == usecase.KindUnexpected {
			zap.S().Errorw("request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", ae.Err,
			)
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
		return c.JSON(ae.Kind.HTTPStatus(), ErrorResponse{Error: ae.Message})
	}

	zap.S().Errorw("request failed",
		"method", c.Request().Method,
		"path", c.Path(),
		"error", err,
	)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// writeValidation reports the first failed field of a request DTO.
func writeValidation(c echo.Context, errs []validator.FieldError) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: errs[0].String()})
}

func paramID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

type ProductRequest struct {
	ProductCode       string  `json:"product_code" validate:"required,max=50"`
	ProductName       string  `json:"product_name" validate:"required,max=255"`
	CategoryID        int64   `json:"category_id" validate:"required,gt=0"`
	SupplierID        int64   `json:"supplier_id" validate:"required,gt=0"`
	UnitPrice         float64 `json:"unit_price" validate:"gte=0"`
	QuantityInStock   *int    `json:"quantity_in_stock" validate:"omitempty,gte=0"`
	ReorderLevel      *int    `json:"reorder_level" validate:"omitempty,gte=0"`
	SizeSpecification *string `json:"size_specification" validate:"omitempty,max=100"`
}

type CheckCodeResponse struct {
	Exists bool `json:"exists"`
}

type ProductHandler struct {
	uc *usecase.ProductUsecase
}

func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.list)
	e.GET("/products/check-code", h.checkCode)
	e.GET("/products/:id", h.get)
	e.POST("/products", h.create)
	e.PUT("/products/:id", h.update)
	e.DELETE("/products/:id", h.delete)
}

func (h *ProductHandler) list(c echo.Context) error {
	rows, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ProductHandler) get(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	p, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) create(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if errs := validator.Struct(&req); len(errs) > 0 {
		return writeValidation(c, errs)
	}

	p, err := h.uc.Create(c.Request().Context(), usecase.ProductInput{
		Code:              req.ProductCode,
		Name:              req.ProductName,
		CategoryID:        req.CategoryID,
		SupplierID:        req.SupplierID,
		UnitPrice:         req.UnitPrice,
		Stock:             req.QuantityInStock,
		ReorderLevel:      req.ReorderLevel,
		SizeSpecification: req.SizeSpecification,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) update(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if errs := validator.Struct(&req); len(errs) > 0 {
		return writeValidation(c, errs)
	}

	p, err := h.uc.Update(c.Request().Context(), id, usecase.ProductInput{
		Code:              req.ProductCode,
		Name:              req.ProductName,
		CategoryID:        req.CategoryID,
		SupplierID:        req.SupplierID,
		UnitPrice:         req.UnitPrice,
		Stock:             req.QuantityInStock,
		ReorderLevel:      req.ReorderLevel,
		SizeSpecification: req.SizeSpecification,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) delete(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "product deleted"})
}

func (h *ProductHandler) checkCode(c echo.Context) error {
	code := c.QueryParam("code")

	var excludeID int64
	if v := c.QueryParam("exclude_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid exclude_id"})
		}
		excludeID = id
	}

	exists, err := h.uc.CheckCode(c.Request().Context(), code, excludeID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, CheckCodeResponse{Exists: exists})
}
