package repository

import (
	"context"
	"errors"

	"retailpos/internal/domain/model"
	repo "retailpos/internal/repository"

	"gorm.io/gorm"
)

type SupplierGormRepository struct {
	db *gorm.DB
}

func NewSupplierGormRepository(db *gorm.DB) *SupplierGormRepository {
	return &SupplierGormRepository{db: db}
}

func (r *SupplierGormRepository) List(ctx context.Context) ([]model.Supplier, error) {
	items := []model.Supplier{}
	err := r.db.WithContext(ctx).Order("supplier_name").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SupplierGormRepository) FindByID(ctx context.Context, id int64) (model.Supplier, error) {
	var s model.Supplier
	err := r.db.WithContext(ctx).First(&s, "supplier_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Supplier{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Supplier{}, err
	}
	return s, nil
}

func (r *SupplierGormRepository) Create(ctx context.Context, s model.Supplier) (model.Supplier, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.Supplier{}, err
	}
	return s, nil
}

func (r *SupplierGormRepository) Update(ctx context.Context, s model.Supplier) (model.Supplier, error) {
	res := r.db.WithContext(ctx).Model(&model.Supplier{}).
		Where("supplier_id = ?", s.ID).
		Updates(map[string]interface{}{
			"supplier_name":  s.Name,
			"contact_person": s.ContactPerson,
			"phone":          s.Phone,
			"email":          s.Email,
			"address":        s.Address,
		})
	if res.Error != nil {
		return model.Supplier{}, res.Error
	}
	if res.RowsAffected == 0 {
		return model.Supplier{}, repo.ErrNotFound
	}
	return r.FindByID(ctx, s.ID)
}

func (r *SupplierGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Supplier{}, "supplier_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *SupplierGormRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Supplier{}).
		Where("supplier_id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
