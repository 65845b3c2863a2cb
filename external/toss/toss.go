package toss

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/hyerinam29-hash/my-face-landing/internal/apperr"
	"github.com/hyerinam29-hash/my-face-landing/internal/model"
)

const defaultBaseURL = "https://api.tosspayments.com"

// Client submits charge confirmations to the payment processor. The
// secret key stays server-side; the browser only ever sees the client
// key used by the hosted checkout UI.
type Client struct {
	secretKey string
	baseURL   string
	client    *http.Client
}

func NewClient(secretKey string) (*Client, error) {
	if secretKey == "" {
		return nil, &apperr.ConfigurationError{Key: "TOSS_SECRET_KEY"}
	}

	return &Client{
		secretKey: secretKey,
		baseURL:   defaultBaseURL,
		client:    &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// NewClientWithBaseURL points the adapter at a non-production endpoint.
func NewClientWithBaseURL(secretKey, baseURL string) (*Client, error) {
	c, err := NewClient(secretKey)
	if err != nil {
		return nil, err
	}
	c.baseURL = baseURL
	return c, nil
}

type confirmRequest struct {
	PaymentKey string `json:"paymentKey"`
	OrderID    string `json:"orderId"`
	Amount     int64  `json:"amount"`
}

type confirmError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ApprovePayment confirms a charge. The returned status and totalAmount
// are the processor's ground truth and supersede whatever the redirect
// parameters claimed.
func (c *Client) ApprovePayment(ctx context.Context, paymentKey, orderID string, amount int64) (*model.PaymentApproval, error) {
	if paymentKey == "" || orderID == "" || amount <= 0 {
		return nil, apperr.Validation("결제 승인 정보가 올바르지 않습니다.")
	}

	// Basic auth: base64 of the secret key with a trailing colon.
	encoded := base64.StdEncoding.EncodeToString([]byte(c.secretKey + ":"))

	b, _ := json.Marshal(confirmRequest{
		PaymentKey: paymentKey,
		OrderID:    orderID,
		Amount:     amount,
	})

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/v1/payments/confirm",
		bytes.NewBuffer(b),
	)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Basic "+encoded)
	req.Header.Set("Content-Type", "application/json")

	log.Printf("[toss] approving payment orderId=%s amount=%d", orderID, amount)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &apperr.NetworkError{Op: "toss confirm", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var ce confirmError
		if err := json.NewDecoder(resp.Body).Decode(&ce); err != nil || ce.Code == "" {
			ce.Code = "UNKNOWN_ERROR"
		}
		if ce.Message == "" {
			ce.Message = "결제 승인 중 오류가 발생했습니다."
		}
		log.Printf("[toss] approval rejected status=%d code=%s", resp.StatusCode, ce.Code)
		return nil, &apperr.GatewayError{Code: ce.Code, Message: ce.Message}
	}

	var approval model.PaymentApproval
	if err := json.NewDecoder(resp.Body).Decode(&approval); err != nil {
		return nil, &apperr.NetworkError{Op: "toss confirm decode", Err: err}
	}
	if approval.ApprovedAt == "" {
		approval.ApprovedAt = time.Now().Format(time.RFC3339)
	}

	log.Printf("[toss] payment approved orderId=%s status=%s totalAmount=%d",
		approval.OrderID, approval.Status, approval.TotalAmount)

	return &approval, nil
}
