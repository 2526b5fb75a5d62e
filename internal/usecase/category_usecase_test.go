package usecase_test

import (
	"context"
	"errors"
	"testing"

	"catalog/internal/domain/model"
	repo "catalog/internal/repository"
	"catalog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) ListWithProducts(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Category)
	return items, args.Error(1)
}

func (m *CategoryRepoMock) FindByID(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *CategoryRepoMock) Create(ctx context.Context, c model.Category) (model.Category, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Category)
	return created, args.Error(1)
}

func (m *CategoryRepoMock) UpdateAttrs(ctx context.Context, id int64, attrs map[string]interface{}) error {
	args := m.Called(ctx, id, attrs)
	return args.Error(0)
}

func (m *CategoryRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCategoryUsecase_Get_NotFound(t *testing.T) {
	cRepo := new(CategoryRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo, &txManagerStub{})

	cRepo.On("FindByID", mock.Anything, int64(5)).Return(model.Category{}, repo.ErrNotFound)

	_, err := uc.Get(context.Background(), 5)
	assertHTTPStatus(t, err, 404, "No category found with this id!")
}

func TestCategoryUsecase_Create_Validation(t *testing.T) {
	uc := usecase.NewCategoryUsecase(new(CategoryRepoMock), &txManagerStub{})

	_, err := uc.Create(context.Background(), usecase.CategoryCreateInput{Name: "  "})
	assertHTTPStatus(t, err, 400, "name required")
}

func TestCategoryUsecase_Create_Success(t *testing.T) {
	cRepo := new(CategoryRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo, &txManagerStub{})

	cRepo.On("Create", mock.Anything, mock.MatchedBy(func(c model.Category) bool {
		return c.Name == "Shoes"
	})).Return(model.Category{ID: 3, Name: "Shoes"}, nil)

	c, err := uc.Create(context.Background(), usecase.CategoryCreateInput{Name: " Shoes "})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), c.ID)

	cRepo.AssertExpectations(t)
}

// 更新後に再取得した内容を返す
func TestCategoryUsecase_Update_RefetchesAfterUpdate(t *testing.T) {
	cRepo := new(CategoryRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo, &txManagerStub{})

	name := "Sale"
	cRepo.On("UpdateAttrs", mock.Anything, int64(3), map[string]interface{}{"name": "Sale"}).Return(nil)
	cRepo.On("FindByID", mock.Anything, int64(3)).Return(model.Category{ID: 3, Name: "Sale"}, nil)

	c, err := uc.Update(context.Background(), 3, usecase.CategoryUpdateInput{Name: &name})
	assert.NoError(t, err)
	assert.Equal(t, "Sale", c.Name)

	cRepo.AssertExpectations(t)
}

func TestCategoryUsecase_Update_NotFound(t *testing.T) {
	cRepo := new(CategoryRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo, &txManagerStub{})

	name := "X"
	cRepo.On("UpdateAttrs", mock.Anything, int64(99), mock.Anything).Return(repo.ErrNotFound)

	_, err := uc.Update(context.Background(), 99, usecase.CategoryUpdateInput{Name: &name})
	assertHTTPStatus(t, err, 404, "No category found with this id!")
}

// 削除は同一Tx内で商品の参照NULL化→カテゴリ削除の順
func TestCategoryUsecase_Delete_DetachesProducts(t *testing.T) {
	cRepo := new(CategoryRepoMock)
	pRepo := new(ProductRepoMock)
	txm := &txManagerStub{repos: txReposStub{categories: cRepo, products: pRepo}}
	uc := usecase.NewCategoryUsecase(cRepo, txm)

	pRepo.On("DetachCategory", mock.Anything, int64(3)).Return(nil)
	cRepo.On("Delete", mock.Anything, int64(3)).Return(nil)

	err := uc.Delete(context.Background(), 3)
	assert.NoError(t, err)
	assert.True(t, txm.called)

	pRepo.AssertExpectations(t)
	cRepo.AssertExpectations(t)
}

// 2回目の削除はNotFound
func TestCategoryUsecase_Delete_SecondDeleteNotFound(t *testing.T) {
	cRepo := new(CategoryRepoMock)
	pRepo := new(ProductRepoMock)
	txm := &txManagerStub{repos: txReposStub{categories: cRepo, products: pRepo}}
	uc := usecase.NewCategoryUsecase(cRepo, txm)

	pRepo.On("DetachCategory", mock.Anything, int64(3)).Return(nil)
	cRepo.On("Delete", mock.Anything, int64(3)).Return(repo.ErrNotFound)

	err := uc.Delete(context.Background(), 3)
	assertHTTPStatus(t, err, 404, "No category found with this id!")
}

func TestCategoryUsecase_List_DBError(t *testing.T) {
	cRepo := new(CategoryRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo, &txManagerStub{})

	cRepo.On("ListWithProducts", mock.Anything).Return([]model.Category(nil), errors.New("db down"))

	_, err := uc.List(context.Background())
	assertHTTPStatus(t, err, 500, "db down")
}
