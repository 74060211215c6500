package model

import "time"

type Supplier struct {
	ID            int64     `gorm:"column:supplier_id;primaryKey;autoIncrement" json:"supplier_id"`
	Name          string    `gorm:"column:supplier_name;type:varchar(255);not null" json:"supplier_name"`
	ContactPerson string    `gorm:"column:contact_person;type:varchar(255)" json:"contact_person"`
	Phone         string    `gorm:"type:varchar(50)" json:"phone"`
	Email         string    `gorm:"type:varchar(255)" json:"email"`
	Address       string    `gorm:"type:text" json:"address"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Supplier) TableName() string { return "suppliers" }
