package model

import "time"

// Sale is the checkout header. Rows are append-only: created exactly once
// by the sale transaction processor, never updated or deleted.
type Sale struct {
	ID                int64      `gorm:"column:sale_id;primaryKey;autoIncrement" json:"sale_id"`
	TransactionNumber string     `gorm:"column:transaction_number;type:varchar(40);not null;uniqueIndex" json:"transaction_number"`
	SaleDate          time.Time  `gorm:"column:sale_date;not null;index" json:"sale_date"`
	Subtotal          float64    `gorm:"type:numeric(12,2);not null" json:"subtotal"`
	Tax               float64    `gorm:"type:numeric(12,2);not null" json:"tax"`
	Total             float64    `gorm:"type:numeric(12,2);not null" json:"total"`
	PaymentMethod     string     `gorm:"column:payment_method;type:varchar(20);not null" json:"payment_method"`
	UserID            int64      `gorm:"column:user_id;not null" json:"user_id"`
	CreatedAt         time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	Items             []SaleItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (Sale) TableName() string { return "sales" }
