package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
	OrderStatusShipped OrderStatus = "shipped"
)

// 注文。statusとupdated_at以外は作成後に変更しない。
// total_amountは常にサーバー側で再計算した値（クライアントの金額は信用しない）。
type Order struct {
	ID            string          `gorm:"type:uuid;primaryKey" json:"id"`
	Items         []OrderLineItem `gorm:"foreignKey:OrderID" json:"items"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric;not null" json:"total_amount"`
	Status        OrderStatus     `gorm:"type:varchar(20);not null;index" json:"status"`
	PaymentMethod string          `gorm:"type:varchar(50);not null" json:"payment_method"`
	Customer      CustomerInfo    `gorm:"embedded;embeddedPrefix:customer_" json:"customer"`
	CreatedAt     time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}
