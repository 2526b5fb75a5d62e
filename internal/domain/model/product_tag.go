package model

// ProductTag は商品とタグの紐付け1件（中間テーブルの行）。
// 行自体のIDで削除対象を特定するため、サロゲートキーを持たせる。
// (product_id, tag_id) の一意性はストレージでは強制しない。
type ProductTag struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64 `gorm:"not null;index" json:"product_id"`
	TagID     int64 `gorm:"not null;index" json:"tag_id"`
}
