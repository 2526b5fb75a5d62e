package model

import "time"

type Product struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Price     float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock     int64     `gorm:"not null;default:0" json:"stock"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`

	// カテゴリ参照（NULL可）
	CategoryID *int64    `gorm:"index" json:"category_id"`
	Category   *Category `json:"category,omitempty"`

	// 商品に付いたタグ（多対多、product_tags経由）
	Tags []Tag `gorm:"many2many:product_tags" json:"tags,omitempty"`
}
