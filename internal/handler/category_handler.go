package handler

import (
	"net/http"

	"retailpos/internal/usecase"
	"retailpos/internal/validator"

	"github.com/labstack/echo/v4"
)

type CategoryRequest struct {
	CategoryName string `json:"category_name" validate:"required,max=100"`
	Description  string `json:"description"`
}

type CategoryHandler struct {
	uc *usecase.CategoryUsecase
}

func NewCategoryHandler(uc *usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

func (h *CategoryHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/categories", h.list)
	e.GET("/categories/:id", h.get)
	e.POST("/categories", h.create)
	e.PUT("/categories/:id", h.update)
	e.DELETE("/categories/:id", h.delete)
}

func (h *CategoryHandler) list(c echo.Context) error {
	items, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CategoryHandler) get(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	cat, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *CategoryHandler) create(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if errs := validator.Struct(&req); len(errs) > 0 {
		return writeValidation(c, errs)
	}

	cat, err := h.uc.Create(c.Request().Context(), usecase.CategoryInput{
		Name:        req.CategoryName,
		Description: req.Description,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, cat)
}

func (h *CategoryHandler) update(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if errs := validator.Struct(&req); len(errs) > 0 {
		return writeValidation(c, errs)
	}

	cat, err := h.uc.Update(c.Request().Context(), id, usecase.CategoryInput{
		Name:        req.CategoryName,
		Description: req.Description,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *CategoryHandler) delete(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "category deleted"})
}
