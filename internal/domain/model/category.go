package model

import "time"

type Category struct {
	ID          int64     `gorm:"column:category_id;primaryKey;autoIncrement" json:"category_id"`
	Name        string    `gorm:"column:category_name;type:varchar(100);not null" json:"category_name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Category) TableName() string { return "categories" }
