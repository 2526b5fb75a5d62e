package model

import "time"

type Tag struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255)" json:"name"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`

	// タグが付いた商品（多対多、product_tags経由）
	Products []Product `gorm:"many2many:product_tags" json:"products,omitempty"`
}
