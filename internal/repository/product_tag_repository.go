package repository

import (
	"catalog/internal/domain/model"
	"context"
)

// 商品タグ紐付け行の一括操作を約束。
type ProductTagRepository interface {
	ListByProduct(ctx context.Context, productID int64) ([]model.ProductTag, error)

	// 空スライスはno-op。作成した行（ID付き）を返す。
	BulkCreate(ctx context.Context, rows []model.ProductTag) ([]model.ProductTag, error)
	// 行IDの集合で削除し、削除件数を返す。
	BulkDelete(ctx context.Context, ids []int64) (int64, error)
}
