package repository

import (
	"context"

	"github.com/hyerinam29-hash/my-face-landing/external/supabase"
	"github.com/hyerinam29-hash/my-face-landing/internal/apperr"
	"github.com/hyerinam29-hash/my-face-landing/internal/model"
)

// PendingOrderRepository manages the staging records written at
// checkout. The record's amount is the trusted reference for the
// integrity check during confirmation.
type PendingOrderRepository struct {
	Store *supabase.Client
}

func NewPendingOrderRepository(store *supabase.Client) *PendingOrderRepository {
	return &PendingOrderRepository{Store: store}
}

// Create writes a new pending order in status PENDING.
func (r *PendingOrderRepository) Create(ctx context.Context, userID, orderID string, amount int64, items []model.CartItem) error {
	if userID == "" || orderID == "" {
		return apperr.Validation("주문 정보가 올바르지 않습니다.")
	}
	if amount <= 0 {
		return apperr.Validation("결제 금액이 올바르지 않습니다.")
	}
	if len(items) == 0 {
		return apperr.Validation("장바구니가 비어있습니다.")
	}

	po := model.PendingOrder{
		UserID:    userID,
		OrderID:   orderID,
		Amount:    amount,
		CartItems: items,
		Status:    model.PendingStatusPending,
	}
	return r.Store.Insert(ctx, "pending_orders", po, nil)
}

// Get returns the most recent pending order for orderID, or
// apperr.ErrNotFound when none exists. Transport failures propagate
// as-is so callers can tell absence from outage.
func (r *PendingOrderRepository) Get(ctx context.Context, orderID string) (*model.PendingOrder, error) {
	if orderID == "" {
		return nil, apperr.Validation("order id가 필요합니다.")
	}

	q := supabase.NewQuery().Eq("order_id", orderID).OrderDesc("created_at").Limit(1)

	var rows []model.PendingOrder
	if err := r.Store.Select(ctx, "pending_orders", q, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperr.ErrNotFound
	}
	return &rows[0], nil
}

// Claim atomically transitions the record from PENDING to CONFIRMING
// and returns it. A conditional update that matches zero rows means a
// concurrent finalization run already owns the record; that surfaces
// as apperr.ErrNotFound.
func (r *PendingOrderRepository) Claim(ctx context.Context, orderID string) (*model.PendingOrder, error) {
	if orderID == "" {
		return nil, apperr.Validation("order id가 필요합니다.")
	}

	q := supabase.NewQuery().
		Eq("order_id", orderID).
		Eq("status", model.PendingStatusPending)

	var rows []model.PendingOrder
	patch := map[string]string{"status": model.PendingStatusConfirming}
	if err := r.Store.Update(ctx, "pending_orders", q, patch, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperr.ErrNotFound
	}
	return &rows[0], nil
}

// Release undoes a claim after a failed gateway confirmation so the
// user can retry the same orderId.
func (r *PendingOrderRepository) Release(ctx context.Context, orderID string) error {
	q := supabase.NewQuery().
		Eq("order_id", orderID).
		Eq("status", model.PendingStatusConfirming)

	patch := map[string]string{"status": model.PendingStatusPending}
	return r.Store.Update(ctx, "pending_orders", q, patch, nil)
}

// Delete retires the record after a successful confirmation.
// Idempotent: deleting an already-deleted orderId is not an error.
func (r *PendingOrderRepository) Delete(ctx context.Context, orderID string) error {
	if orderID == "" {
		return apperr.Validation("order id가 필요합니다.")
	}

	q := supabase.NewQuery().Eq("order_id", orderID)
	return r.Store.Delete(ctx, "pending_orders", q, nil)
}
