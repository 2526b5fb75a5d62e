package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"catalog/internal/domain/model"
	repo "catalog/internal/repository"

	"github.com/rs/zerolog"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

const msgProductNotFound = "No product found with this id!"

type ProductUsecase struct {
	productRepo    repo.ProductRepository
	productTagRepo repo.ProductTagRepository
	txm            repo.TransactionManager
	log            zerolog.Logger
}

// DI
func NewProductUsecase(
	productRepo repo.ProductRepository,
	productTagRepo repo.ProductTagRepository,
	txm repo.TransactionManager,
	log zerolog.Logger,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo:    productRepo,
		productTagRepo: productTagRepo,
		txm:            txm,
		log:            log,
	}
}

// POST /productsの入力DTO
type ProductCreateInput struct {
	Name       string
	Price      float64
	Stock      int64
	CategoryID *int64
	TagIDs     []int64
}

// PUT /products/:id の入力DTO。nilのフィールドは「変更なし」。
// TagIDsはnil＝紐付けに触らない、空スライス＝全て外す。
type ProductUpdateInput struct {
	Name       *string
	Price      *float64
	Stock      *int64
	CategoryID *int64
	TagIDs     *[]int64
}

// 全商品（カテゴリ・タグ付き）
func (u *ProductUsecase) List(ctx context.Context) ([]model.Product, error) {
	products, err := u.productRepo.ListWithRelations(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return products, nil
}

func (u *ProductUsecase) Get(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, msgProductNotFound)
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return p, nil
}

// 商品を作成し、タグ指定があれば紐付け行も作る。
// 応答は常に再取得した商品（関連付き）に統一する。
func (u *ProductUsecase) Create(ctx context.Context, in ProductCreateInput) (model.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.Stock < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		Name:       strings.TrimSpace(in.Name),
		Price:      in.Price,
		Stock:      in.Stock,
		CategoryID: in.CategoryID,
	})
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if len(in.TagIDs) > 0 {
		// 新規作成なので現在の紐付けは空。差分＝全希望タグ。
		delta := ReconcileTags(p.ID, nil, in.TagIDs)
		if _, err := u.productTagRepo.BulkCreate(ctx, delta.ToCreate); err != nil {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	created, err := u.productRepo.FindByID(ctx, p.ID)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return created, nil
}

// 属性更新→タグ差分の適用→再取得、の順。
// 差分の適用は1トランザクションで行い、commitを待ってから応答を組む。
func (u *ProductUsecase) Update(ctx context.Context, productID int64, in ProductUpdateInput) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	attrs := map[string]interface{}{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "name required")
		}
		attrs["name"] = name
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
		}
		attrs["price"] = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
		}
		attrs["stock"] = *in.Stock
	}
	if in.CategoryID != nil {
		attrs["category_id"] = *in.CategoryID
	}

	if len(attrs) > 0 {
		err := u.productRepo.UpdateAttrs(ctx, productID, attrs)
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, NewHTTPError(http.StatusNotFound, msgProductNotFound)
		}
		if err != nil {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	if in.TagIDs != nil {
		err := u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
			current, err := r.ProductTags().ListByProduct(ctx, productID)
			if err != nil {
				return err
			}

			delta := ReconcileTags(productID, current, *in.TagIDs)
			u.log.Debug().
				Int64("product_id", productID).
				Int("to_create", len(delta.ToCreate)).
				Int("to_remove", len(delta.ToRemove)).
				Msg("reconcile product tags")

			if len(delta.ToCreate) > 0 {
				if _, err := r.ProductTags().BulkCreate(ctx, delta.ToCreate); err != nil {
					return err
				}
			}
			if len(delta.ToRemove) > 0 {
				if _, err := r.ProductTags().BulkDelete(ctx, delta.ToRemove); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	updated, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, msgProductNotFound)
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return updated, nil
}

// 商品削除。紐付け行のカスケード削除はしない。
func (u *ProductUsecase) Delete(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	err := u.productRepo.Delete(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, msgProductNotFound)
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return nil
}
