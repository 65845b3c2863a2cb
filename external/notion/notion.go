package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"
)

const notionVersion = "2022-06-28"

// Client appends leads and chat transcripts to a workspace database.
// Best-effort CRM logging: callers decide whether a failure here is
// fatal (lead signup) or noise (chat transcript).
type Client struct {
	apiKey     string
	databaseID string
	baseURL    string
	client     *http.Client
}

func NewClient(apiKey, databaseID string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("NOTION_API_KEY not set")
	}
	if databaseID == "" {
		return nil, errors.New("NOTION_DATABASE_ID not set")
	}

	return &Client{
		apiKey:     apiKey,
		databaseID: databaseID,
		baseURL:    "https://api.notion.com",
		client:     &http.Client{Timeout: 8 * time.Second},
	}, nil
}

// NewClientWithBaseURL points the client at a test endpoint.
func NewClientWithBaseURL(apiKey, databaseID, baseURL string) (*Client, error) {
	c, err := NewClient(apiKey, databaseID)
	if err != nil {
		return nil, err
	}
	c.baseURL = baseURL
	return c, nil
}

func title(content string) map[string]interface{} {
	return map[string]interface{}{
		"title": []interface{}{
			map[string]interface{}{"text": map[string]string{"content": content}},
		},
	}
}

func richText(content string) map[string]interface{} {
	return map[string]interface{}{
		"rich_text": []interface{}{
			map[string]interface{}{"text": map[string]string{"content": content}},
		},
	}
}

// CreateLead records a signup in the CRM database.
func (c *Client) CreateLead(ctx context.Context, name, email, phone string) error {
	return c.createPage(ctx, map[string]interface{}{
		"name":         title(name),
		"email":        map[string]string{"email": email},
		"phone number": map[string]string{"phone_number": phone},
	})
}

// LogChatMessage appends one side of a consultation exchange.
func (c *Client) LogChatMessage(ctx context.Context, role, content string) error {
	return c.createPage(ctx, map[string]interface{}{
		"name":    title(strings.ToUpper(role) + " 메시지"),
		"message": richText(content),
		"role":    richText(role),
	})
}

func (c *Client) createPage(ctx context.Context, properties map[string]interface{}) error {
	body := map[string]interface{}{
		"parent":     map[string]string{"database_id": c.databaseID},
		"properties": properties,
	}

	b, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/pages", bytes.NewBuffer(b))
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", notionVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		return errors.New("notion error: " + resp.Status + ": " + buf.String())
	}

	return nil
}
