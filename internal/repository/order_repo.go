package repository

import (
	"context"
	"log"

	"github.com/hyerinam29-hash/my-face-landing/external/supabase"
	"github.com/hyerinam29-hash/my-face-landing/internal/apperr"
	"github.com/hyerinam29-hash/my-face-landing/internal/model"
)

type OrderRepository struct {
	Store *supabase.Client
}

func NewOrderRepository(store *supabase.Client) *OrderRepository {
	return &OrderRepository{Store: store}
}

// Save persists the final order. Append-only: nothing updates an order
// after this write.
func (r *OrderRepository) Save(ctx context.Context, order model.Order) error {
	if order.UserID == "" || order.OrderID == "" || order.PaymentKey == "" {
		return apperr.Validation("주문 저장 정보가 올바르지 않습니다.")
	}
	if order.TotalAmount <= 0 {
		return apperr.Validation("주문 금액이 올바르지 않습니다.")
	}

	var rows []model.Order
	if err := r.Store.Insert(ctx, "orders", order, &rows); err != nil {
		return err
	}

	log.Printf("[order] saved orderId=%s totalAmount=%d", order.OrderID, order.TotalAmount)
	return nil
}

// GetByUser returns the user's order history, newest first.
func (r *OrderRepository) GetByUser(ctx context.Context, userID string) ([]model.Order, error) {
	if userID == "" {
		return nil, apperr.Validation("user id가 필요합니다.")
	}

	q := supabase.NewQuery().Eq("user_id", userID).OrderDesc("created_at")

	orders := []model.Order{}
	if err := r.Store.Select(ctx, "orders", q, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetByOrderID returns a single order or apperr.ErrNotFound.
func (r *OrderRepository) GetByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	q := supabase.NewQuery().Eq("order_id", orderID).Limit(1)

	var rows []model.Order
	if err := r.Store.Select(ctx, "orders", q, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperr.ErrNotFound
	}
	return &rows[0], nil
}
