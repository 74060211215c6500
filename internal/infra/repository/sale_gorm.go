package repository

import (
	"context"
	"errors"
	"time"

	"retailpos/internal/domain/model"
	repo "retailpos/internal/repository"

	"gorm.io/gorm"
)

type SaleGormRepository struct {
	db *gorm.DB
}

func NewSaleGormRepository(db *gorm.DB) *SaleGormRepository {
	return &SaleGormRepository{db: db}
}

func (r *SaleGormRepository) Create(ctx context.Context, sale model.Sale) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&sale).Error; err != nil {
		return 0, err
	}
	return sale.ID, nil
}

func (r *SaleGormRepository) FindByID(ctx context.Context, id int64) (model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&s, "sale_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Sale{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Sale{}, err
	}
	return s, nil
}

// ListSummaries returns sales history rows, newest first, optionally bounded
// by sale date.
func (r *SaleGormRepository) ListSummaries(ctx context.Context, dr repo.SaleDateRange) ([]repo.SaleSummaryRow, error) {
	rows := []repo.SaleSummaryRow{}

	q := r.db.WithContext(ctx).
		Model(&model.Sale{}).
		Select(`sales.sale_id,
			sales.transaction_number,
			sales.sale_date,
			sales.subtotal,
			sales.tax,
			sales.total,
			sales.payment_method,
			COUNT(sale_items.sale_item_id) AS item_count`).
		Joins("LEFT JOIN sale_items ON sale_items.sale_id = sales.sale_id").
		Group("sales.sale_id")

	if dr.Start != nil {
		q = q.Where("sales.sale_date >= ?", *dr.Start)
	}
	if dr.End != nil {
		q = q.Where("sales.sale_date <= ?", *dr.End)
	}

	if err := q.Order("sales.sale_date DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SaleGormRepository) Stats(ctx context.Context, from, to time.Time) (int64, float64, error) {
	var out struct {
		Count   int64
		Revenue float64
	}
	err := r.db.WithContext(ctx).
		Model(&model.Sale{}).
		Select("COUNT(*) AS count, COALESCE(SUM(total), 0) AS revenue").
		Where("sale_date >= ? AND sale_date < ?", from, to).
		Scan(&out).Error
	if err != nil {
		return 0, 0, err
	}
	return out.Count, out.Revenue, nil
}
