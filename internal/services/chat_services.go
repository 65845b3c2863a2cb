package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/hyerinam29-hash/my-face-landing/internal/apperr"
	"github.com/hyerinam29-hash/my-face-landing/internal/model"
)

// ChatModel produces a completion over the conversation history.
// Implemented by external/gemini.
type ChatModel interface {
	Generate(ctx context.Context, systemPrompt string, messages []model.ChatMessage) (string, error)
}

// WebSearcher grounds an answer in web results. Implemented by
// external/tavily; nil when search is not configured.
type WebSearcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]model.SearchResult, error)
}

// ChatLogger records the exchange in the CRM. Implemented by
// external/notion; nil when not configured.
type ChatLogger interface {
	LogChatMessage(ctx context.Context, role, content string) error
}

// Consultation persona. Fixed server-side so the client cannot
// override it.
const chatSystemPrompt = `너는 페이스 캘린더의 상담 챗봇이야.
역할: 사용자의 피부 고민을 친절하고 명확하게 파악하고, 사진 없이도 질문을 통해 정보를 수집해 적절한 루틴/제품/다음 단계 안내를 제공한다.
원칙:
- 모르면 솔직히 모른다고 말하고, 필요한 정보를 질문으로 수집한다.
- 과도한 의학적 진단/치료 주장 금지. 전문 상담이 필요한 경우는 적절히 안내한다.
- 답변은 간결한 문장과 불릿을 섞어 체계적으로 제공한다.`

const webGuidePrompt = `아래 웹 검색 결과를 근거로 한국어로 간결하고 체계적으로 답하세요.
- 과도한 의학적 단정 금지, 불확실하면 추가 질문.
- 마지막에 출처 링크를 [1] 형식으로 나열.`

type ChatService struct {
	Model    ChatModel
	Searcher WebSearcher
	Logger   ChatLogger
}

func NewChatService(m ChatModel, s WebSearcher, l ChatLogger) *ChatService {
	return &ChatService{Model: m, Searcher: s, Logger: l}
}

// Reply answers the last user message, optionally grounded in web
// search results. Search and CRM logging failures never fail the chat.
func (s *ChatService) Reply(ctx context.Context, messages []model.ChatMessage, webSearch bool) (string, []model.SearchResult, error) {
	lastUser := ""
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" && strings.TrimSpace(messages[i].Content) != "" {
			lastUser = messages[i].Content
			break
		}
	}
	if lastUser == "" {
		return "", nil, apperr.Validation("질문 내용이 없습니다.")
	}

	var sources []model.SearchResult
	if webSearch && s.Searcher != nil {
		results, err := s.Searcher.Search(ctx, lastUser, 5)
		if err != nil {
			log.Printf("[chat] web search failed, answering without sources: %v", err)
		} else {
			sources = results
		}
	}

	prompt := chatSystemPrompt
	history := messages
	if len(sources) > 0 {
		var block strings.Builder
		for i, r := range sources {
			fmt.Fprintf(&block, "[%d] %s\n%s\n%s\n\n", i+1, r.Title, r.URL, r.Snippet)
		}

		prompt = chatSystemPrompt + "\n\n" + webGuidePrompt

		augmented := model.ChatMessage{
			Role:    "user",
			Content: fmt.Sprintf("사용자 질문:\n%s\n\n웹 검색 결과:\n%s", lastUser, block.String()),
		}
		history = append(append([]model.ChatMessage{}, messages[:len(messages)-1]...), augmented)
	}

	reply, err := s.Model.Generate(ctx, prompt, history)
	if err != nil {
		return "", nil, err
	}

	if s.Logger != nil {
		if err := s.Logger.LogChatMessage(ctx, "user", lastUser); err != nil {
			log.Printf("[chat] transcript log failed: %v", err)
		}
		if err := s.Logger.LogChatMessage(ctx, "assistant", reply); err != nil {
			log.Printf("[chat] transcript log failed: %v", err)
		}
	}

	return reply, sources, nil
}
