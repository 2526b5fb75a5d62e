package repository

import (
	"catalog/internal/domain/model"
	"context"
)

// タグの永続化だけを約束。
type TagRepository interface {
	ListWithProducts(ctx context.Context) ([]model.Tag, error)
	FindByID(ctx context.Context, id int64) (model.Tag, error)

	Create(ctx context.Context, t model.Tag) (model.Tag, error)
	UpdateAttrs(ctx context.Context, id int64, attrs map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
}
