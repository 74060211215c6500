package handler

import (
	"net/http"

	"retailpos/internal/usecase"
	"retailpos/internal/validator"

	"github.com/labstack/echo/v4"
)

type SupplierRequest struct {
	SupplierName  string `json:"supplier_name" validate:"required,max=255"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone" validate:"omitempty,max=50"`
	Email         string `json:"email" validate:"omitempty,email"`
	Address       string `json:"address"`
}

type SupplierHandler struct {
	uc *usecase.SupplierUsecase
}

func NewSupplierHandler(uc *usecase.SupplierUsecase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

func (h *SupplierHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/suppliers", h.list)
	e.GET("/suppliers/:id", h.get)
	e.POST("/suppliers", h.create)
	e.PUT("/suppliers/:id", h.update)
	e.DELETE("/suppliers/:id", h.delete)
}

func (h *SupplierHandler) list(c echo.Context) error {
	items, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *SupplierHandler) get(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	s, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SupplierHandler) create(c echo.Context) error {
	var req SupplierRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if errs := validator.Struct(&req); len(errs) > 0 {
		return writeValidation(c, errs)
	}

	s, err := h.uc.Create(c.Request().Context(), usecase.SupplierInput{
		Name:          req.SupplierName,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *SupplierHandler) update(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req SupplierRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if errs := validator.Struct(&req); len(errs) > 0 {
		return writeValidation(c, errs)
	}

	s, err := h.uc.Update(c.Request().Context(), id, usecase.SupplierInput{
		Name:          req.SupplierName,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SupplierHandler) delete(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "supplier deleted"})
}
