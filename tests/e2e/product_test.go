package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"
)

type ProductCreateRequest struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Stock      int64   `json:"stock"`
	CategoryID *int64  `json:"categoryId,omitempty"`
	TagIDs     []int64 `json:"tagIds,omitempty"`
}

type ProductUpdateRequest struct {
	Name   *string  `json:"name,omitempty"`
	Price  *float64 `json:"price,omitempty"`
	Stock  *int64   `json:"stock,omitempty"`
	TagIDs *[]int64 `json:"tagIds,omitempty"`
}

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Stock      int64     `json:"stock"`
	CategoryID *int64    `json:"category_id"`
	Category   *Category `json:"category"`
	Tags       []Tag     `json:"tags"`
}

func mustDecodeProduct(t *testing.T, body []byte) Product {
	t.Helper()
	var v Product
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(Product) failed: %v body=%s", err, string(body))
	}
	return v
}

func createTag(ctx context.Context, t *testing.T, c *TestClient, name string) Tag {
	t.Helper()
	resp, body := c.doJSON(ctx, t, http.MethodPost, "/tags", mustMarshal(t, map[string]string{"name": name}))
	requireStatus(t, resp, http.StatusOK, body)

	var tag Tag
	if err := json.Unmarshal(body, &tag); err != nil {
		t.Fatalf("json.Unmarshal(Tag) failed: %v body=%s", err, string(body))
	}
	return tag
}

func tagIDSet(p Product) map[int64]bool {
	set := map[int64]bool{}
	for _, tag := range p.Tags {
		set[tag.ID] = true
	}
	return set
}

func Test_Product_CRUD_WithTagReconciliation(t *testing.T) {
	c := NewTestClient(t)
	ctx := context.Background()

	stamp := time.Now().Format("20060102-150405.000000000")

	//タグを3つ用意
	t1 := createTag(ctx, t, c, "e2e-a-"+stamp)
	t2 := createTag(ctx, t, c, "e2e-b-"+stamp)
	t3 := createTag(ctx, t, c, "e2e-c-"+stamp)

	//タグ2つ付きで商品作成。応答は関連付きの商品。
	uniqueName := "E2E-Mug-" + stamp
	create := ProductCreateRequest{
		Name:   uniqueName,
		Price:  1000,
		Stock:  5,
		TagIDs: []int64{t1.ID, t2.ID},
	}

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/products", mustMarshal(t, create))
	requireStatus(t, resp, http.StatusOK, body)

	created := mustDecodeProduct(t, body)
	if created.Name != uniqueName {
		t.Fatalf("name mismatch want=%s got=%s", uniqueName, created.Name)
	}
	if len(created.Tags) != 2 {
		t.Fatalf("tags mismatch want=2 got=%d body=%s", len(created.Tags), string(body))
	}
	productID := created.ID

	//詳細取得
	resp, body = c.doJSON(ctx, t, http.MethodGet, "/products/"+toStr(productID), nil)
	requireStatus(t, resp, http.StatusOK, body)

	//希望 {t2,t3}へ更新 → t1が外れt3が付く
	desired := []int64{t2.ID, t3.ID}
	newPrice := 1200.0
	update := ProductUpdateRequest{Price: &newPrice, TagIDs: &desired}

	resp, body = c.doJSON(ctx, t, http.MethodPut, "/products/"+toStr(productID), mustMarshal(t, update))
	requireStatus(t, resp, http.StatusOK, body)

	updated := mustDecodeProduct(t, body)
	set := tagIDSet(updated)
	if set[t1.ID] || !set[t2.ID] || !set[t3.ID] || len(set) != 2 {
		t.Fatalf("tag reconciliation mismatch: body=%s", string(body))
	}
	if updated.Price != 1200 {
		t.Fatalf("price mismatch want=1200 got=%v", updated.Price)
	}

	//tagIds省略の更新では紐付けが変わらない
	stock := int64(7)
	resp, body = c.doJSON(ctx, t, http.MethodPut, "/products/"+toStr(productID), mustMarshal(t, ProductUpdateRequest{Stock: &stock}))
	requireStatus(t, resp, http.StatusOK, body)
	if got := tagIDSet(mustDecodeProduct(t, body)); len(got) != 2 {
		t.Fatalf("tags changed on omitted tagIds: body=%s", string(body))
	}

	//空配列で全て外す
	empty := []int64{}
	resp, body = c.doJSON(ctx, t, http.MethodPut, "/products/"+toStr(productID), mustMarshal(t, ProductUpdateRequest{TagIDs: &empty}))
	requireStatus(t, resp, http.StatusOK, body)
	if got := mustDecodeProduct(t, body); len(got.Tags) != 0 {
		t.Fatalf("tags not cleared: body=%s", string(body))
	}

	//削除は204
	resp, body = c.doJSON(ctx, t, http.MethodDelete, "/products/"+toStr(productID), nil)
	requireStatus(t, resp, http.StatusNoContent, body)

	//削除後の詳細は404 + 決まったメッセージ
	resp, body = c.doJSON(ctx, t, http.MethodGet, "/products/"+toStr(productID), nil)
	requireStatus(t, resp, http.StatusNotFound, body)

	er := mustDecodeError(t, body)
	if strings.TrimSpace(er.Error) != "No product found with this id!" {
		t.Fatalf("error message mismatch: body=%s", string(body))
	}
}
