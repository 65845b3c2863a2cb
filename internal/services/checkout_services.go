package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/google/uuid"

	"github.com/hyerinam29-hash/my-face-landing/internal/apperr"
	"github.com/hyerinam29-hash/my-face-landing/internal/model"
	"github.com/hyerinam29-hash/my-face-landing/internal/repository"
)

// CheckoutService owns the cart → pending order → gateway confirm →
// final order sequence.
type CheckoutService struct {
	PendingRepo *repository.PendingOrderRepository
	OrderRepo   *repository.OrderRepository
	CartRepo    *repository.CartRepository
	Gateway     PaymentGateway
}

func NewCheckoutService(
	pr *repository.PendingOrderRepository,
	or *repository.OrderRepository,
	cr *repository.CartRepository,
	gw PaymentGateway,
) *CheckoutService {
	return &CheckoutService{
		PendingRepo: pr,
		OrderRepo:   or,
		CartRepo:    cr,
		Gateway:     gw,
	}
}

// CheckoutResult is what the hosted checkout UI needs to open.
type CheckoutResult struct {
	OrderID   string `json:"orderId"`
	Amount    int64  `json:"amount"`
	OrderName string `json:"orderName"`
}

// Begin snapshots the user's cart into a pending order. The amount
// fixed here is what the confirmation callback must match.
func (s *CheckoutService) Begin(ctx context.Context, userID string) (*CheckoutResult, error) {
	items, err := s.CartRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperr.Validation("장바구니가 비어있습니다.")
	}

	var amount int64
	for _, it := range items {
		amount += ParsePrice(it.Price)
	}
	if amount <= 0 {
		return nil, apperr.Validation("결제 금액이 올바르지 않습니다.")
	}

	orderID := "FACE-" + uuid.NewString()

	orderName := items[0].Name
	if len(items) > 1 {
		orderName = fmt.Sprintf("%s 외 %d건", items[0].Name, len(items)-1)
	}

	if err := s.PendingRepo.Create(ctx, userID, orderID, amount, items); err != nil {
		return nil, err
	}

	log.Printf("[checkout] pending order created orderId=%s amount=%d items=%d", orderID, amount, len(items))

	return &CheckoutResult{OrderID: orderID, Amount: amount, OrderName: orderName}, nil
}

// Finalize runs the confirmation state machine for one gateway
// redirect. paymentKey/orderID/amountParam come straight off the
// redirect query string and are untrusted until checked against the
// pending order.
func (s *CheckoutService) Finalize(ctx context.Context, userID, paymentKey, orderID, amountParam string) (*model.Order, error) {
	// 1. Parse callback parameters.
	if paymentKey == "" || orderID == "" || amountParam == "" {
		return nil, apperr.Validation("결제 정보가 올바르지 않습니다.")
	}
	amount, err := strconv.ParseInt(amountParam, 10, 64)
	if err != nil || amount <= 0 {
		return nil, apperr.Validation("결제 금액이 올바르지 않습니다.")
	}

	// 2. Look up the staging record.
	pending, err := s.PendingRepo.Get(ctx, orderID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, &apperr.UnknownOrderError{OrderID: orderID}
		}
		return nil, err
	}

	if userID != "" && pending.UserID != userID {
		return nil, apperr.Validation("다른 사용자의 주문입니다.")
	}

	// 3. Amount integrity. The stored amount is the reference value;
	// mismatch means tampered redirect parameters, and the gateway is
	// never contacted.
	if pending.Amount != amount {
		log.Printf("[payment] amount mismatch orderId=%s saved=%d received=%d", orderID, pending.Amount, amount)
		return nil, &apperr.AmountMismatchError{Expected: pending.Amount, Received: amount}
	}

	// 4. Claim the record so a duplicate redirect cannot confirm the
	// same charge twice. The loser of the race stops here.
	claimed, err := s.PendingRepo.Claim(ctx, orderID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, &apperr.UnknownOrderError{OrderID: orderID}
		}
		return nil, err
	}

	// 5. Confirm the charge. On failure the claim is released so the
	// user can retry; the pending order stays put for reconciliation.
	approval, err := s.Gateway.ApprovePayment(ctx, paymentKey, orderID, amount)
	if err != nil {
		if relErr := s.PendingRepo.Release(ctx, orderID); relErr != nil {
			log.Printf("[payment] failed to release claim orderId=%s: %v", orderID, relErr)
		}
		return nil, err
	}

	// 6. Persist the final order with the gateway's authoritative
	// amount. If this write fails the charge exists without an order
	// record; the claim is kept in CONFIRMING to flag the orderId for
	// manual reconciliation.
	order := model.Order{
		UserID:      claimed.UserID,
		OrderID:     orderID,
		PaymentKey:  approval.PaymentKey,
		TotalAmount: approval.TotalAmount,
		Status:      "DONE",
		Items:       claimed.CartItems,
	}
	if err := s.OrderRepo.Save(ctx, order); err != nil {
		log.Printf("[payment] CHARGE WITHOUT ORDER: orderId=%s paymentKey=%s: %v", orderID, approval.PaymentKey, err)
		return nil, err
	}

	// 7. Retire the staging record. The order is already durable, so a
	// failed delete is logged, not escalated.
	if err := s.PendingRepo.Delete(ctx, orderID); err != nil {
		log.Printf("[payment] pending order cleanup failed orderId=%s: %v", orderID, err)
	}

	// 8. Drain the cart. Per-item failures never undo a completed
	// order.
	for _, it := range claimed.CartItems {
		if it.ID == "" {
			continue
		}
		if err := s.CartRepo.Remove(ctx, it.ID); err != nil {
			log.Printf("[payment] cart item cleanup failed id=%s: %v", it.ID, err)
		}
	}

	log.Printf("[payment] order finalized orderId=%s totalAmount=%d", orderID, approval.TotalAmount)

	return &order, nil
}
