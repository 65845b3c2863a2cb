package model

// PaymentApproval is the gateway's answer to a confirmation request.
// Status and TotalAmount are authoritative; the finalizer must persist
// these, not the locally remembered values.
type PaymentApproval struct {
	PaymentKey  string `json:"paymentKey"`
	OrderID     string `json:"orderId"`
	Status      string `json:"status"`
	TotalAmount int64  `json:"totalAmount"`
	ApprovedAt  string `json:"approvedAt"`
}
