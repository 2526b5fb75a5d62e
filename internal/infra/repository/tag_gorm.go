package repository

import (
	"context"
	"errors"

	"catalog/internal/domain/model"
	repo "catalog/internal/repository"

	"gorm.io/gorm"
)

type TagGormRepository struct {
	db *gorm.DB
}

// DI
func NewTagGormRepository(db *gorm.DB) *TagGormRepository {
	return &TagGormRepository{db: db}
}

func (r *TagGormRepository) ListWithProducts(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	err := r.db.WithContext(ctx).
		Preload("Products").
		Order("id asc").
		Find(&tags).Error
	if err != nil {
		return []model.Tag{}, err
	}
	return tags, nil
}

func (r *TagGormRepository) FindByID(ctx context.Context, id int64) (model.Tag, error) {
	var t model.Tag
	err := r.db.WithContext(ctx).Preload("Products").First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Tag{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Tag{}, err
	}
	return t, nil
}

func (r *TagGormRepository) Create(ctx context.Context, t model.Tag) (model.Tag, error) {
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		return model.Tag{}, err
	}
	return t, nil
}

func (r *TagGormRepository) UpdateAttrs(ctx context.Context, id int64, attrs map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.Tag{}).Where("id = ?", id).Updates(attrs)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *TagGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Tag{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
