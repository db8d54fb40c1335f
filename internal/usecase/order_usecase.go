package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

// カート・配送先の形チェックを約束（実装はvalidatorパッケージ）
type OrderValidator interface {
	ValidateCart(items []CartItemInput) error
	ValidateCustomer(c model.CustomerInfo) error
}

type OrderUsecase struct {
	orderRepo   repo.OrderRepository
	productRepo repo.ProductRepository
	validate    OrderValidator
	idGen       IDGenerator
	clock       Clock
}

func NewOrderUsecase(
	orderRepo repo.OrderRepository,
	productRepo repo.ProductRepository,
	validate OrderValidator,
	idGen IDGenerator,
	clock Clock,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		validate:    validate,
		idGen:       idGen,
		clock:       clock,
	}
}

// カート行。価格フィールドは持たない（クライアントの価格は一切受け取らない）。
type CartItemInput struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type PlaceOrderInput struct {
	Items         []CartItemInput
	Customer      model.CustomerInfo
	PaymentMethod string
}

// 注文確定。
// カート全行を1回のバッチ読みで価格解決し、明細スナップショットと合計を作って保存する。
// 1行でも不正ならDBには何も書かない。
// 合計の丸めは小数2桁の四捨五入（0.5は0から遠い方へ）。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (model.Order, error) {
	// ストアに触る前に空カートを弾く
	if len(in.Items) == 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}

	if err := u.validate.ValidateCart(in.Items); err != nil {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := u.validate.ValidateCustomer(in.Customer); err != nil {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	paymentMethod := strings.TrimSpace(in.PaymentMethod)
	if paymentMethod == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "payment_method required")
	}

	// 重複を除いたID集合で一括取得（行ごとのN+1にしない）
	seen := make(map[string]bool, len(in.Items))
	ids := make([]string, 0, len(in.Items))
	for _, it := range in.Items {
		if !seen[it.ProductID] {
			seen[it.ProductID] = true
			ids = append(ids, it.ProductID)
		}
	}

	products, err := u.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	// created_at/updated_atは同一時刻にする（明細も同じ瞬間）
	now := u.clock.Now().UTC()

	items := make([]model.OrderLineItem, 0, len(in.Items))
	total := decimal.Zero

	// カート送信順のまま明細を組む
	for _, it := range in.Items {
		p, ok := byID[it.ProductID]
		if !ok {
			// 1行でも不正なら注文全体を拒否
			return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid product "+it.ProductID)
		}

		// 価格は解決した商品から読む（スナップショット）
		items = append(items, model.OrderLineItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  it.Quantity,
			ImageURL:  p.ImageURL,
			CreatedAt: now,
		})

		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	order := model.Order{
		ID:            u.idGen.NewID(),
		Items:         items,
		TotalAmount:   total.Round(2),
		Status:        model.OrderStatusPending,
		PaymentMethod: paymentMethod,
		Customer:      in.Customer,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.orderRepo.Create(ctx, order)
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *OrderUsecase) GetOrder(ctx context.Context, orderID string) (model.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	o, err := u.orderRepo.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return o, nil
}

// 管理者用の注文一覧（新しい順）
func (u *OrderUsecase) ListOrders(ctx context.Context, limit int) ([]model.Order, error) {
	if limit < 1 || limit > 100 {
		return []model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	items, err := u.orderRepo.ListRecent(ctx, limit)
	if err != nil {
		return []model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if items == nil {
		// JSONでnullではなく[]を返す
		items = []model.Order{}
	}
	return items, nil
}

func (u *OrderUsecase) MarkPaid(ctx context.Context, orderID string) (model.Order, error) {
	return u.transition(ctx, orderID, model.OrderStatusPaid)
}

func (u *OrderUsecase) MarkShipped(ctx context.Context, orderID string) (model.Order, error) {
	return u.transition(ctx, orderID, model.OrderStatusShipped)
}

// ステータス遷移。pending → paid → shipped のみ。飛ばし遷移はしない。
func (u *OrderUsecase) transition(ctx context.Context, orderID string, target model.OrderStatus) (model.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	o, err := u.orderRepo.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// すでに目標ステータスなら何もしない（200）
	if o.Status == target {
		return o, nil
	}

	allowed := (o.Status == model.OrderStatusPending && target == model.OrderStatusPaid) ||
		(o.Status == model.OrderStatusPaid && target == model.OrderStatusShipped)
	if !allowed {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid status transition")
	}

	now := u.clock.Now().UTC()
	if err := u.orderRepo.UpdateStatus(ctx, orderID, target, now); err != nil {
		if err == repo.ErrNotFound {
			return model.Order{}, NewHTTPError(http.StatusNotFound, "order not found")
		}
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	o.Status = target
	o.UpdatedAt = now
	return o, nil
}
