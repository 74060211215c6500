package model

import "time"

// Reference types for inventory log entries.
const (
	InventoryRefSale       = "sale"
	InventoryRefAdjustment = "adjustment"
)

// Reason recorded for checkout decrements.
const InventoryReasonSale = "Sale transaction"

// InventoryLog is the append-only stock ledger: one row per stock change,
// with the signed amount and its cause. Never updated.
type InventoryLog struct {
	ID            int64     `gorm:"column:log_id;primaryKey;autoIncrement" json:"log_id"`
	ProductID     int64     `gorm:"column:product_id;not null;index" json:"product_id"`
	ProductCode   string    `gorm:"column:product_code;type:varchar(50);not null" json:"product_code"`
	ChangeAmount  int       `gorm:"column:change_amount;not null" json:"change_amount"`
	Reason        string    `gorm:"type:varchar(255);not null" json:"reason"`
	ReferenceType string    `gorm:"column:reference_type;type:varchar(20);not null;index" json:"reference_type"`
	ReferenceID   int64     `gorm:"column:reference_id;not null" json:"reference_id"`
	ChangedBy     int64     `gorm:"column:changed_by;not null" json:"changed_by"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (InventoryLog) TableName() string { return "inventory_logs" }
