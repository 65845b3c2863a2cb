package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hyerinam29-hash/my-face-landing/internal/apperr"
)

// Client talks to the data store's REST interface. Every repository
// goes through here; the store is not reachable any other way.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	debug   bool
}

func NewClient(baseURL, apiKey string, debug bool) (*Client, error) {
	if baseURL == "" {
		return nil, &apperr.ConfigurationError{Key: "SUPABASE_URL"}
	}
	if apiKey == "" {
		return nil, &apperr.ConfigurationError{Key: "SUPABASE_ANON_KEY"}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		debug:   debug,
	}, nil
}

// Query builds the filter part of a REST call. Filters use the store's
// operator syntax: ?field=eq.value&order=field.desc&limit=n
type Query url.Values

func NewQuery() Query {
	return Query(url.Values{})
}

func (q Query) Eq(field, value string) Query {
	url.Values(q).Set(field, "eq."+value)
	return q
}

func (q Query) OrderDesc(field string) Query {
	url.Values(q).Set("order", field+".desc")
	return q
}

func (q Query) Limit(n int) Query {
	url.Values(q).Set("limit", strconv.Itoa(n))
	return q
}

func (q Query) encode() string {
	return url.Values(q).Encode()
}

// Insert POSTs one row and decodes the returned representation into out
// (a slice pointer) when out is non-nil, so callers can log the
// assigned id.
func (c *Client) Insert(ctx context.Context, table string, payload interface{}, out interface{}) error {
	return c.do(ctx, http.MethodPost, table, nil, payload, out)
}

// Select GETs rows matching q into out (a slice pointer).
func (c *Client) Select(ctx context.Context, table string, q Query, out interface{}) error {
	return c.do(ctx, http.MethodGet, table, q, nil, out)
}

// Update PATCHes rows matching q. With out non-nil the store returns
// the updated rows, which makes the call usable as an atomic
// compare-and-set: zero rows back means the condition matched nothing.
func (c *Client) Update(ctx context.Context, table string, q Query, payload interface{}, out interface{}) error {
	return c.do(ctx, http.MethodPatch, table, q, payload, out)
}

// Delete removes rows matching q; with out non-nil the deleted rows
// come back in the response.
func (c *Client) Delete(ctx context.Context, table string, q Query, out interface{}) error {
	return c.do(ctx, http.MethodDelete, table, q, nil, out)
}

func (c *Client) do(ctx context.Context, method, table string, q Query, payload, out interface{}) error {
	op := "supabase " + method + " " + table

	endpoint := c.baseURL + "/rest/v1/" + table
	if q != nil {
		if enc := q.encode(); enc != "" {
			endpoint += "?" + enc
		}
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return apperr.Validation("%s: invalid payload: %v", op, err)
		}
		body = bytes.NewBuffer(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return apperr.Validation("%s: %v", op, err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if out != nil {
		req.Header.Set("Prefer", "return=representation")
	}

	if c.debug {
		log.Printf("[supabase] %s %s", method, endpoint)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &apperr.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		return &apperr.StorageError{Op: op, Status: resp.StatusCode, Body: buf.String()}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &apperr.StorageError{Op: op, Status: resp.StatusCode, Body: "malformed response: " + err.Error()}
		}
	}

	return nil
}
