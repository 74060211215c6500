package model

import "time"

// SaleItem snapshots product code/name and the charged unit price so
// historical receipts stay accurate after catalog edits. Immutable once
// created.
type SaleItem struct {
	ID          int64     `gorm:"column:sale_item_id;primaryKey;autoIncrement" json:"sale_item_id"`
	SaleID      int64     `gorm:"column:sale_id;not null;index" json:"sale_id"`
	ProductID   int64     `gorm:"column:product_id;not null;index" json:"product_id"`
	ProductCode string    `gorm:"column:product_code;type:varchar(50);not null" json:"product_code"`
	ProductName string    `gorm:"column:product_name;type:varchar(255);not null" json:"product_name"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	UnitPrice   float64   `gorm:"column:unit_price;type:numeric(12,2);not null" json:"unit_price"`
	Subtotal    float64   `gorm:"type:numeric(12,2);not null" json:"subtotal"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (SaleItem) TableName() string { return "sale_items" }
