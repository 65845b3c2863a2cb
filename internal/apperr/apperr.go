package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a lookup that found no row. Callers must be able to
// tell absence apart from transport trouble, so repositories return this
// instead of a silent nil.
var ErrNotFound = errors.New("not found")

// ValidationError: caller input is missing or malformed. Raised before
// any network call is made.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func Validation(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ConfigurationError: a required environment value is absent.
type ConfigurationError struct {
	Key string
}

func (e *ConfigurationError) Error() string {
	return "환경변수 " + e.Key + " 가 설정되어 있지 않습니다."
}

// NetworkError wraps a transport-level failure reaching an external
// service (DNS, dial, timeout). Retryable in principle.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: 네트워크 오류가 발생했습니다: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// StorageError: the remote data store answered but did not report
// success for a write or delete.
type StorageError struct {
	Op     string
	Status int
	Body   string
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: storage error (status %d): %s", e.Op, e.Status, e.Body)
}

// GatewayError: the payment processor explicitly rejected or cancelled
// the charge. Code is the processor's machine-readable error code so
// callers can branch on cancellation vs. rejection.
type GatewayError struct {
	Code    string
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s (코드: %s)", e.Message, e.Code)
}

// AmountMismatchError: the amount on the gateway redirect does not match
// the amount fixed at checkout. Security control, never retried.
type AmountMismatchError struct {
	Expected int64
	Received int64
}

func (e *AmountMismatchError) Error() string {
	return fmt.Sprintf("결제 금액이 일치하지 않습니다. 결제가 취소되었습니다. (저장: %d, 수신: %d)", e.Expected, e.Received)
}

// UnknownOrderError: no pending order matches the callback's orderId.
// The charge may still be valid at the processor; flagged for manual
// reconciliation.
type UnknownOrderError struct {
	OrderID string
}

func (e *UnknownOrderError) Error() string {
	return "주문 정보를 찾을 수 없습니다: " + e.OrderID
}
