package repository

import (
	"context"
	"errors"

	"retailpos/internal/domain/model"
	repo "retailpos/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// List returns the catalog joined with category/supplier names and the
// computed stock status, ordered by product name.
func (r *ProductGormRepository) List(ctx context.Context) ([]repo.ProductListRow, error) {
	rows := []repo.ProductListRow{}
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Select(`products.product_id,
			products.product_code,
			products.product_name,
			products.category_id,
			categories.category_name,
			products.supplier_id,
			suppliers.supplier_name,
			products.unit_price,
			products.quantity_in_stock,
			products.reorder_level,
			products.size_specification,
			CASE WHEN products.quantity_in_stock <= products.reorder_level
				THEN 'Low Stock' ELSE 'In Stock' END AS stock_status`).
		Joins("JOIN categories ON categories.category_id = products.category_id").
		Joins("JOIN suppliers ON suppliers.supplier_id = products.supplier_id").
		Order("products.product_name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, "product_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) (model.Product, error) {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("product_id = ?", p.ID).
		Updates(map[string]interface{}{
			"product_code":       p.Code,
			"product_name":       p.Name,
			"category_id":        p.CategoryID,
			"supplier_id":        p.SupplierID,
			"unit_price":         p.UnitPrice,
			"quantity_in_stock":  p.Stock,
			"reorder_level":      p.ReorderLevel,
			"size_specification": p.SizeSpecification,
		})
	if res.Error != nil {
		return model.Product{}, res.Error
	}
	if res.RowsAffected == 0 {
		return model.Product{}, repo.ErrNotFound
	}
	return r.FindByID(ctx, p.ID)
}

func (r *ProductGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, "product_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductGormRepository) CodeExists(ctx context.Context, code string, excludeID int64) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Product{}).Where("product_code = ?", code)
	if excludeID != 0 {
		q = q.Where("product_id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ProductGormRepository) CountByCategoryID(ctx context.Context, categoryID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}

func (r *ProductGormRepository) CountBySupplierID(ctx context.Context, supplierID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("supplier_id = ?", supplierID).
		Count(&count).Error
	return count, err
}
