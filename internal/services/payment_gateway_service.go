package services

import (
	"context"

	"github.com/hyerinam29-hash/my-face-landing/internal/model"
)

// PaymentGateway confirms charges with the external payment processor.
// Implemented by external/toss.
type PaymentGateway interface {
	ApprovePayment(ctx context.Context, paymentKey, orderID string, amount int64) (*model.PaymentApproval, error)
}
