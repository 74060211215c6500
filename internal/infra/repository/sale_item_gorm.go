package repository

import (
	"context"

	"retailpos/internal/domain/model"

	"gorm.io/gorm"
)

type SaleItemGormRepository struct {
	db *gorm.DB
}

func NewSaleItemGormRepository(db *gorm.DB) *SaleItemGormRepository {
	return &SaleItemGormRepository{db: db}
}

func (r *SaleItemGormRepository) CreateBulk(ctx context.Context, saleID int64, items []model.SaleItem) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].SaleID = saleID
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *SaleItemGormRepository) ListBySaleID(ctx context.Context, saleID int64) ([]model.SaleItem, error) {
	items := []model.SaleItem{}
	err := r.db.WithContext(ctx).
		Where("sale_id = ?", saleID).
		Order("sale_item_id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SaleItemGormRepository) CountByProductID(ctx context.Context, productID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SaleItem{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	return count, err
}
