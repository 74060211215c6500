package repository

import (
	"context"
	"errors"

	"retailpos/internal/domain/model"
	repo "retailpos/internal/repository"

	"gorm.io/gorm"
)

type CategoryGormRepository struct {
	db *gorm.DB
}

func NewCategoryGormRepository(db *gorm.DB) *CategoryGormRepository {
	return &CategoryGormRepository{db: db}
}

func (r *CategoryGormRepository) List(ctx context.Context) ([]model.Category, error) {
	items := []model.Category{}
	err := r.db.WithContext(ctx).Order("category_name").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CategoryGormRepository) FindByID(ctx context.Context, id int64) (model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).First(&c, "category_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Category{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Category{}, err
	}
	return c, nil
}

func (r *CategoryGormRepository) Create(ctx context.Context, c model.Category) (model.Category, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return model.Category{}, err
	}
	return c, nil
}

func (r *CategoryGormRepository) Update(ctx context.Context, c model.Category) (model.Category, error) {
	res := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("category_id = ?", c.ID).
		Updates(map[string]interface{}{
			"category_name": c.Name,
			"description":   c.Description,
		})
	if res.Error != nil {
		return model.Category{}, res.Error
	}
	if res.RowsAffected == 0 {
		return model.Category{}, repo.ErrNotFound
	}
	return r.FindByID(ctx, c.ID)
}

func (r *CategoryGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Category{}, "category_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CategoryGormRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("category_id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
