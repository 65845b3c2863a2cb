package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyerinam29-hash/my-face-landing/internal/apperr"
	"github.com/hyerinam29-hash/my-face-landing/internal/model"
)

func TestChatReply_Basic(t *testing.T) {
	m := &mockChatModel{reply: "수분 크림을 추천드려요."}
	logger := &mockChatLogger{}
	svc := NewChatService(m, nil, logger)

	reply, sources, err := svc.Reply(context.Background(), []model.ChatMessage{
		{Role: "user", Content: "건성 피부에 맞는 크림 추천해줘"},
	}, false)

	require.NoError(t, err)
	assert.Equal(t, "수분 크림을 추천드려요.", reply)
	assert.Empty(t, sources)
	assert.Contains(t, m.lastPrompt, "페이스 캘린더의 상담 챗봇")
	require.Len(t, logger.entries, 2)
	assert.Contains(t, logger.entries[0], "user:")
	assert.Contains(t, logger.entries[1], "assistant:")
}

func TestChatReply_WebSearchAugmentsPrompt(t *testing.T) {
	m := &mockChatModel{reply: "답변"}
	searcher := &mockSearcher{results: []model.SearchResult{
		{Title: "BHA 가이드", URL: "https://example.com/bha", Snippet: "BHA는 지용성 각질 제거 성분"},
	}}
	svc := NewChatService(m, searcher, nil)

	_, sources, err := svc.Reply(context.Background(), []model.ChatMessage{
		{Role: "user", Content: "BHA 토너는 어떤 피부에 좋아?"},
	}, true)

	require.NoError(t, err)
	assert.Equal(t, 1, searcher.calls)
	require.Len(t, sources, 1)

	assert.Contains(t, m.lastPrompt, "웹 검색 결과를 근거로")
	require.NotEmpty(t, m.lastMsgs)
	last := m.lastMsgs[len(m.lastMsgs)-1]
	assert.Contains(t, last.Content, "example.com/bha")
	assert.Contains(t, last.Content, "사용자 질문:")
}

func TestChatReply_SearchFailureAnswersWithoutSources(t *testing.T) {
	m := &mockChatModel{reply: "답변"}
	searcher := &mockSearcher{err: errors.New("search down")}
	svc := NewChatService(m, searcher, nil)

	reply, sources, err := svc.Reply(context.Background(), []model.ChatMessage{
		{Role: "user", Content: "질문"},
	}, true)

	require.NoError(t, err)
	assert.Equal(t, "답변", reply)
	assert.Empty(t, sources)
	assert.NotContains(t, m.lastPrompt, "웹 검색 결과를 근거로")
}

func TestChatReply_NoUserMessage(t *testing.T) {
	svc := NewChatService(&mockChatModel{reply: "x"}, nil, nil)

	_, _, err := svc.Reply(context.Background(), []model.ChatMessage{
		{Role: "model", Content: "안녕하세요"},
	}, false)

	var v *apperr.ValidationError
	require.ErrorAs(t, err, &v)
}

func TestChatReply_LoggerFailureIsSwallowed(t *testing.T) {
	m := &mockChatModel{reply: "답변"}
	logger := &mockChatLogger{err: errors.New("notion down")}
	svc := NewChatService(m, nil, logger)

	reply, _, err := svc.Reply(context.Background(), []model.ChatMessage{
		{Role: "user", Content: "질문"},
	}, false)

	require.NoError(t, err)
	assert.Equal(t, "답변", reply)
}

func TestChatReply_ModelError(t *testing.T) {
	m := &mockChatModel{err: errors.New("model unavailable")}
	svc := NewChatService(m, nil, nil)

	_, _, err := svc.Reply(context.Background(), []model.ChatMessage{
		{Role: "user", Content: "질문"},
	}, false)

	require.Error(t, err)
}
