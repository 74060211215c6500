package model

import "time"

type Product struct {
	ID                int64     `gorm:"column:product_id;primaryKey;autoIncrement" json:"product_id"`
	Code              string    `gorm:"column:product_code;type:varchar(50);not null;uniqueIndex" json:"product_code"`
	Name              string    `gorm:"column:product_name;type:varchar(255);not null" json:"product_name"`
	CategoryID        int64     `gorm:"column:category_id;not null;index" json:"category_id"`
	SupplierID        int64     `gorm:"column:supplier_id;not null;index" json:"supplier_id"`
	UnitPrice         float64   `gorm:"column:unit_price;type:numeric(12,2);not null" json:"unit_price"`
	Stock             int       `gorm:"column:quantity_in_stock;not null;default:0" json:"quantity_in_stock"`
	ReorderLevel      int       `gorm:"column:reorder_level;not null;default:5" json:"reorder_level"`
	SizeSpecification *string   `gorm:"column:size_specification;type:varchar(100)" json:"size_specification,omitempty"`
	CreatedAt         time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string { return "products" }

// LowStock reports whether the product is at or below its reorder level.
func (p Product) LowStock() bool { return p.Stock <= p.ReorderLevel }
