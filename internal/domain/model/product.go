package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 商品（ジュエリー）
// priceは注文確定の瞬間だけ参照される。注文側は後から読み直さない。
type Product struct {
	ID          string          `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(120);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric;not null" json:"price"`
	Category    string          `gorm:"type:varchar(60);not null;index" json:"category"`
	ImageURL    string          `gorm:"type:text" json:"image_url"`
	InStock     bool            `gorm:"not null;default:true" json:"in_stock"`
	CreatedAt   time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}
