package tavily

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	var auth string
	var body map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		auth = req.Header.Get("Authorization")
		json.NewDecoder(req.Body).Decode(&body)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []interface{}{
				map[string]string{"title": "BHA 가이드", "url": "https://example.com/1", "content": "각질 제거"},
				map[string]string{"title": "토너 비교", "url": "https://example.com/2", "snippet": "스니펫만 있음"},
				map[string]string{"title": "셋째", "url": "https://example.com/3", "content": "잘림"},
			},
		})
	}))
	defer srv.Close()

	client, err := NewClientWithBaseURL("tvly-key", srv.URL)
	require.NoError(t, err)

	results, err := client.Search(context.Background(), "BHA 토너", 2)

	require.NoError(t, err)
	assert.Equal(t, "Bearer tvly-key", auth)
	assert.Equal(t, "BHA 토너", body["query"])
	assert.Equal(t, float64(2), body["max_results"])
	assert.Equal(t, "basic", body["search_depth"])

	require.Len(t, results, 2, "capped at maxResults")
	assert.Equal(t, "각질 제거", results[0].Snippet)
	assert.Equal(t, "스니펫만 있음", results[1].Snippet, "falls back to snippet field")
}

func TestSearch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client, err := NewClientWithBaseURL("tvly-key", srv.URL)
	require.NoError(t, err)

	_, err = client.Search(context.Background(), "q", 5)
	require.Error(t, err)
}

func TestNewClient_MissingKey(t *testing.T) {
	_, err := NewClient("")
	require.Error(t, err)
}
