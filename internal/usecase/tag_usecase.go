package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"catalog/internal/domain/model"
	repo "catalog/internal/repository"
)

const msgTagNotFound = "No tag found with this id!"

// タグのCRUD。差分計算はここには無い（商品更新側の仕事）。
type TagUsecase struct {
	tagRepo repo.TagRepository
}

// DI
func NewTagUsecase(tagRepo repo.TagRepository) *TagUsecase {
	return &TagUsecase{tagRepo: tagRepo}
}

type TagCreateInput struct {
	Name string
}

type TagUpdateInput struct {
	Name *string
}

func (u *TagUsecase) List(ctx context.Context) ([]model.Tag, error) {
	tags, err := u.tagRepo.ListWithProducts(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return tags, nil
}

func (u *TagUsecase) Get(ctx context.Context, tagID int64) (model.Tag, error) {
	if tagID <= 0 {
		return model.Tag{}, NewHTTPError(http.StatusBadRequest, "invalid tag id")
	}

	t, err := u.tagRepo.FindByID(ctx, tagID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Tag{}, NewHTTPError(http.StatusNotFound, msgTagNotFound)
	}
	if err != nil {
		return model.Tag{}, NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return t, nil
}

func (u *TagUsecase) Create(ctx context.Context, in TagCreateInput) (model.Tag, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Tag{}, NewHTTPError(http.StatusBadRequest, "name required")
	}

	t, err := u.tagRepo.Create(ctx, model.Tag{
		Name: strings.TrimSpace(in.Name),
	})
	if err != nil {
		return model.Tag{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return t, nil
}

func (u *TagUsecase) Update(ctx context.Context, tagID int64, in TagUpdateInput) (model.Tag, error) {
	if tagID <= 0 {
		return model.Tag{}, NewHTTPError(http.StatusBadRequest, "invalid tag id")
	}

	attrs := map[string]interface{}{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return model.Tag{}, NewHTTPError(http.StatusBadRequest, "name required")
		}
		attrs["name"] = name
	}
	if len(attrs) == 0 {
		return model.Tag{}, NewHTTPError(http.StatusBadRequest, "nothing to update")
	}

	err := u.tagRepo.UpdateAttrs(ctx, tagID, attrs)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Tag{}, NewHTTPError(http.StatusNotFound, msgTagNotFound)
	}
	if err != nil {
		return model.Tag{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := u.tagRepo.FindByID(ctx, tagID)
	if err != nil {
		return model.Tag{}, NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return updated, nil
}

// タグ削除。紐付け行は消さない（孤児は許容）。
func (u *TagUsecase) Delete(ctx context.Context, tagID int64) error {
	if tagID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid tag id")
	}

	err := u.tagRepo.Delete(ctx, tagID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, msgTagNotFound)
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return nil
}
