package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"catalog/internal/domain/model"
	repo "catalog/internal/repository"
)

const msgCategoryNotFound = "No category found with this id!"

type CategoryUsecase struct {
	categoryRepo repo.CategoryRepository
	txm          repo.TransactionManager
}

// DI
func NewCategoryUsecase(categoryRepo repo.CategoryRepository, txm repo.TransactionManager) *CategoryUsecase {
	return &CategoryUsecase{
		categoryRepo: categoryRepo,
		txm:          txm,
	}
}

type CategoryCreateInput struct {
	Name string
}

type CategoryUpdateInput struct {
	Name *string
}

// 全カテゴリ（所属商品付き）
func (u *CategoryUsecase) List(ctx context.Context) ([]model.Category, error) {
	categories, err := u.categoryRepo.ListWithProducts(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return categories, nil
}

func (u *CategoryUsecase) Get(ctx context.Context, categoryID int64) (model.Category, error) {
	if categoryID <= 0 {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "invalid category id")
	}

	c, err := u.categoryRepo.FindByID(ctx, categoryID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Category{}, NewHTTPError(http.StatusNotFound, msgCategoryNotFound)
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c, nil
}

func (u *CategoryUsecase) Create(ctx context.Context, in CategoryCreateInput) (model.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "name required")
	}

	c, err := u.categoryRepo.Create(ctx, model.Category{
		Name: strings.TrimSpace(in.Name),
	})
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c, nil
}

// 属性更新後に再取得して返す。
func (u *CategoryUsecase) Update(ctx context.Context, categoryID int64, in CategoryUpdateInput) (model.Category, error) {
	if categoryID <= 0 {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "invalid category id")
	}

	attrs := map[string]interface{}{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return model.Category{}, NewHTTPError(http.StatusBadRequest, "name required")
		}
		attrs["name"] = name
	}
	if len(attrs) == 0 {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "nothing to update")
	}

	err := u.categoryRepo.UpdateAttrs(ctx, categoryID, attrs)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Category{}, NewHTTPError(http.StatusNotFound, msgCategoryNotFound)
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := u.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return updated, nil
}

// カテゴリ削除。所属商品の参照は同一Tx内でNULLへ戻す（商品自体は消さない）。
func (u *CategoryUsecase) Delete(ctx context.Context, categoryID int64) error {
	if categoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid category id")
	}

	err := u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Products().DetachCategory(ctx, categoryID); err != nil {
			return err
		}
		return r.Categories().Delete(ctx, categoryID)
	})
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, msgCategoryNotFound)
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return nil
}
