package services

import (
	"context"

	"github.com/hyerinam29-hash/my-face-landing/internal/model"
)

// mockGateway implements PaymentGateway and counts confirmation calls
// so tests can assert the adapter was never reached.
type mockGateway struct {
	calls    int
	approval *model.PaymentApproval
	err      error
}

func (m *mockGateway) ApprovePayment(_ context.Context, paymentKey, orderID string, amount int64) (*model.PaymentApproval, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if m.approval != nil {
		return m.approval, nil
	}
	return &model.PaymentApproval{
		PaymentKey:  paymentKey,
		OrderID:     orderID,
		Status:      "DONE",
		TotalAmount: amount,
		ApprovedAt:  "2026-01-01T00:00:00Z",
	}, nil
}

type mockChatModel struct {
	reply      string
	err        error
	lastPrompt string
	lastMsgs   []model.ChatMessage
}

func (m *mockChatModel) Generate(_ context.Context, systemPrompt string, messages []model.ChatMessage) (string, error) {
	m.lastPrompt = systemPrompt
	m.lastMsgs = messages
	return m.reply, m.err
}

type mockSearcher struct {
	results []model.SearchResult
	err     error
	calls   int
}

func (m *mockSearcher) Search(_ context.Context, query string, maxResults int) ([]model.SearchResult, error) {
	m.calls++
	return m.results, m.err
}

type mockChatLogger struct {
	entries []string
	err     error
}

func (m *mockChatLogger) LogChatMessage(_ context.Context, role, content string) error {
	m.entries = append(m.entries, role+": "+content)
	return m.err
}

type mockLeadSink struct {
	calls int
	err   error
}

func (m *mockLeadSink) CreateLead(_ context.Context, name, email, phone string) error {
	m.calls++
	return m.err
}
