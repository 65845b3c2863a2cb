package model

// Pending order statuses. A pending order is claimed (PENDING →
// CONFIRMING) before the gateway is called so that only one
// finalization run per orderId can proceed.
const (
	PendingStatusPending    = "PENDING"
	PendingStatusConfirming = "CONFIRMING"
)

// PendingOrder is the staging record written at checkout. Amount is
// fixed here and is the trusted reference for the integrity check —
// it is never recomputed from the live cart during confirmation.
type PendingOrder struct {
	UserID    string     `json:"user_id"`
	OrderID   string     `json:"order_id"`
	Amount    int64      `json:"amount"`
	CartItems []CartItem `json:"cart_items"`
	Status    string     `json:"status,omitempty"`
	CreatedAt string     `json:"created_at,omitempty"`
}

// Order is written exactly once per successful payment and never
// mutated afterwards. TotalAmount comes from the gateway's response,
// not from the redirect parameters.
type Order struct {
	UserID      string     `json:"user_id"`
	OrderID     string     `json:"order_id"`
	PaymentKey  string     `json:"payment_key"`
	TotalAmount int64      `json:"total_amount"`
	Status      string     `json:"status"`
	Items       []CartItem `json:"items"`
	CreatedAt   string     `json:"created_at,omitempty"`
}
