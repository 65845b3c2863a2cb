package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hyerinam29-hash/my-face-landing/internal/model"
)

// Client calls the generative language API for the consultation chat.
type Client struct {
	apiKey  string
	modelID string
	baseURL string
	client  *http.Client
}

func NewClient(apiKey, modelID string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY not set")
	}
	if modelID == "" {
		modelID = "gemini-2.5-flash"
	}

	return &Client{
		apiKey:  apiKey,
		modelID: modelID,
		baseURL: "https://generativelanguage.googleapis.com",
		client:  &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// NewClientWithBaseURL points the client at a test endpoint.
func NewClientWithBaseURL(apiKey, modelID, baseURL string) (*Client, error) {
	c, err := NewClient(apiKey, modelID)
	if err != nil {
		return nil, err
	}
	c.baseURL = baseURL
	return c, nil
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	SystemInstruction *content  `json:"system_instruction,omitempty"`
	Contents          []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate runs one completion over the conversation history. System
// messages in the history are dropped; systemPrompt travels in the
// dedicated instruction field.
func (c *Client) Generate(ctx context.Context, systemPrompt string, messages []model.ChatMessage) (string, error) {
	contents := make([]content, 0, len(messages))
	for _, m := range messages {
		if strings.TrimSpace(m.Content) == "" || m.Role == "system" {
			continue
		}
		role := "user"
		if m.Role == "model" {
			role = "model"
		}
		contents = append(contents, content{Role: role, Parts: []part{{Text: m.Content}}})
	}
	if len(contents) == 0 {
		return "", errors.New("no chat content to send")
	}

	reqBody := generateRequest{Contents: contents}
	if systemPrompt != "" {
		reqBody.SystemInstruction = &content{Parts: []part{{Text: systemPrompt}}}
	}

	b, _ := json.Marshal(reqBody)

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.modelID, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		return "", fmt.Errorf("gemini error: %s: %s", resp.Status, buf.String())
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 {
		return "", errors.New("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}
