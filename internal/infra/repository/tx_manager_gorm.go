package repository

import (
	"context"

	repo "catalog/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	categories  repo.CategoryRepository
	products    repo.ProductRepository
	productTags repo.ProductTagRepository
}

func (r *txReposGorm) Categories() repo.CategoryRepository    { return r.categories }
func (r *txReposGorm) Products() repo.ProductRepository       { return r.products }
func (r *txReposGorm) ProductTags() repo.ProductTagRepository { return r.productTags }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			categories:  NewCategoryGormRepository(tx),
			products:    NewProductGormRepository(tx),
			productTags: NewProductTagGormRepository(tx),
		}
		return fn(r)
	})
}
