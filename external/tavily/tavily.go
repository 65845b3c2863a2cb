package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/hyerinam29-hash/my-face-landing/internal/model"
)

// Client runs web searches used to ground chat answers.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewClient(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("TAVILY_API_KEY not set")
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: "https://api.tavily.com",
		client:  &http.Client{Timeout: 8 * time.Second},
	}, nil
}

// NewClientWithBaseURL points the client at a test endpoint.
func NewClientWithBaseURL(apiKey, baseURL string) (*Client, error) {
	c, err := NewClient(apiKey)
	if err != nil {
		return nil, err
	}
	c.baseURL = baseURL
	return c, nil
}

type searchRequest struct {
	Query         string `json:"query"`
	MaxResults    int    `json:"max_results"`
	IncludeAnswer bool   `json:"include_answer"`
	SearchDepth   string `json:"search_depth"`
}

type searchResponse struct {
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
		Snippet string `json:"snippet"`
	} `json:"results"`
}

func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]model.SearchResult, error) {
	if maxResults <= 0 {
		maxResults = 5
	}

	b, _ := json.Marshal(searchRequest{
		Query:         query,
		MaxResults:    maxResults,
		IncludeAnswer: false,
		SearchDepth:   "basic",
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewBuffer(b))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily search failed: %s", resp.Status)
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	items := make([]model.SearchResult, 0, maxResults)
	for _, r := range out.Results {
		if len(items) == maxResults {
			break
		}
		snippet := r.Content
		if snippet == "" {
			snippet = r.Snippet
		}
		items = append(items, model.SearchResult{Title: r.Title, URL: r.URL, Snippet: snippet})
	}

	log.Printf("[tavily] query=%q results=%d", query, len(items))
	return items, nil
}
