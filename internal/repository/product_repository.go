package repository

import (
	"catalog/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	// Category と Tags を同時に読み込んで返す
	ListWithRelations(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	// attrsに含まれる列だけを更新。対象0件なら ErrNotFound。
	UpdateAttrs(ctx context.Context, id int64, attrs map[string]interface{}) error
	Delete(ctx context.Context, id int64) error

	// カテゴリ削除時に参照をNULLへ戻す
	DetachCategory(ctx context.Context, categoryID int64) error
}
