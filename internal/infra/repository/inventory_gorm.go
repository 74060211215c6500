package repository

import (
	"context"

	"retailpos/internal/domain/model"
	repo "retailpos/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InventoryGormRepository struct {
	db *gorm.DB
}

func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

// LockProductsForSale reads the cart's products in one query under
// SELECT ... FOR UPDATE. The locks pin each contested stock row until the
// surrounding transaction commits or rolls back.
func (r *InventoryGormRepository) LockProductsForSale(ctx context.Context, ids []int64) ([]model.Product, error) {
	products := []model.Product{}
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("product_id IN ?", ids).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// DecreaseStockIfEnough only decrements when enough stock remains. The
// WHERE guard makes check-and-decrement a single statement.
func (r *InventoryGormRepository) DecreaseStockIfEnough(ctx context.Context, productID int64, qty int) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("product_id = ? AND quantity_in_stock >= ?", productID, qty).
		Update("quantity_in_stock", gorm.Expr("quantity_in_stock - ?", qty))

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}

func (r *InventoryGormRepository) SetStock(ctx context.Context, productID int64, newStock int) error {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("product_id = ?", productID).
		Update("quantity_in_stock", newStock)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *InventoryGormRepository) AppendLog(ctx context.Context, entry model.InventoryLog) error {
	return r.db.WithContext(ctx).Create(&entry).Error
}
