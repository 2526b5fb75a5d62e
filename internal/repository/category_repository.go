package repository

import (
	"catalog/internal/domain/model"
	"context"
)

// カテゴリの永続化だけを約束。
type CategoryRepository interface {
	ListWithProducts(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id int64) (model.Category, error)

	Create(ctx context.Context, c model.Category) (model.Category, error)
	UpdateAttrs(ctx context.Context, id int64, attrs map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
}
