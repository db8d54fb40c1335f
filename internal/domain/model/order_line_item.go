package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文明細。価格・名前・画像は注文時点の商品スナップショット。
// 商品側をあとで変更・削除しても明細は変わらない。
// IDの昇順＝カート送信順。
type OrderLineItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID   string          `gorm:"type:uuid;not null;index" json:"-"`
	ProductID string          `gorm:"type:uuid;not null;index" json:"product_id"`
	Name      string          `gorm:"type:varchar(120);not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:numeric;not null" json:"price"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	ImageURL  string          `gorm:"type:text" json:"image_url"`
	CreatedAt time.Time       `gorm:"not null" json:"-"`
}
