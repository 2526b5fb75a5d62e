package repository

import (
	"context"

	"catalog/internal/domain/model"

	"gorm.io/gorm"
)

type ProductTagGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductTagGormRepository(db *gorm.DB) *ProductTagGormRepository {
	return &ProductTagGormRepository{db: db}
}

// 商品の現在の紐付け行を返す。
func (r *ProductTagGormRepository) ListByProduct(ctx context.Context, productID int64) ([]model.ProductTag, error) {
	var rows []model.ProductTag
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id asc").
		Find(&rows).Error
	if err != nil {
		return []model.ProductTag{}, err
	}
	return rows, nil
}

// 紐付け行の一括作成。タグの実在チェックはFK制約に任せる。
func (r *ProductTagGormRepository) BulkCreate(ctx context.Context, rows []model.ProductTag) ([]model.ProductTag, error) {
	if len(rows) == 0 {
		return rows, nil
	}
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// 行IDの集合で一括削除。
func (r *ProductTagGormRepository) BulkDelete(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.ProductTag{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
