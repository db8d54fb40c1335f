package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

type OrderRepository interface {
	// 注文＋明細を1回のinsertで保存する
	Create(ctx context.Context, order model.Order) (model.Order, error)

	FindByID(ctx context.Context, orderID string) (model.Order, error)

	// 新しい順
	ListRecent(ctx context.Context, limit int) ([]model.Order, error)

	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus, updatedAt time.Time) error
}
