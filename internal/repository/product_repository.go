package repository

import (
	"context"
	"errors"

	"retailpos/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// ProductListRow is one row of the catalog listing: the product joined with
// its category/supplier names plus the computed stock status.
type ProductListRow struct {
	ProductID         int64   `json:"product_id" csv:"product_id"`
	ProductCode       string  `json:"product_code" csv:"product_code"`
	ProductName       string  `json:"product_name" csv:"product_name"`
	CategoryID        int64   `json:"category_id" csv:"-"`
	CategoryName      string  `json:"category_name" csv:"category"`
	SupplierID        int64   `json:"supplier_id" csv:"-"`
	SupplierName      string  `json:"supplier_name" csv:"supplier"`
	UnitPrice         float64 `json:"unit_price" csv:"unit_price"`
	QuantityInStock   int     `json:"quantity_in_stock" csv:"quantity_in_stock"`
	ReorderLevel      int     `json:"reorder_level" csv:"reorder_level"`
	SizeSpecification *string `json:"size_specification,omitempty" csv:"size_specification"`
	StockStatus       string  `json:"stock_status" csv:"stock_status"`
}

type ProductRepository interface {
	List(ctx context.Context) ([]ProductListRow, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) (model.Product, error)
	Delete(ctx context.Context, id int64) error

	// CodeExists reports whether another product already holds the code.
	// excludeID skips one product (edit flows); 0 means exclude nothing.
	CodeExists(ctx context.Context, code string, excludeID int64) (bool, error)

	CountByCategoryID(ctx context.Context, categoryID int64) (int64, error)
	CountBySupplierID(ctx context.Context, supplierID int64) (int64, error)
}
