package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyerinam29-hash/my-face-landing/external/supabase"
)

// fakeStore is an in-memory stand-in for the REST data store. It
// understands the subset of the filter syntax the repositories use:
// ?field=eq.value, order=field.desc, limit=n.
type fakeStore struct {
	mu     sync.Mutex
	tables map[string][]map[string]interface{}
	nextID int
	srv    *httptest.Server
}

func newFakeStore(t *testing.T) (*fakeStore, *supabase.Client) {
	t.Helper()

	fs := &fakeStore{tables: map[string][]map[string]interface{}{}}
	fs.srv = httptest.NewServer(http.HandlerFunc(fs.handle))
	t.Cleanup(fs.srv.Close)

	client, err := supabase.NewClient(fs.srv.URL, "test-key", false)
	require.NoError(t, err)

	return fs, client
}

func (fs *fakeStore) rows(table string) []map[string]interface{} {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	out := make([]map[string]interface{}, len(fs.tables[table]))
	copy(out, fs.tables[table])
	return out
}

func (fs *fakeStore) count(table string) int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return len(fs.tables[table])
}

func (fs *fakeStore) seed(table string, row map[string]interface{}) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.tables[table] = append(fs.tables[table], row)
}

type filter struct {
	field string
	value string
}

func parseFilters(r *http.Request) (filters []filter, limit int) {
	limit = -1
	for field, vals := range r.URL.Query() {
		if len(vals) == 0 {
			continue
		}
		v := vals[0]
		switch {
		case field == "order":
		case field == "limit":
			limit, _ = strconv.Atoi(v)
		case strings.HasPrefix(v, "eq."):
			filters = append(filters, filter{field: field, value: strings.TrimPrefix(v, "eq.")})
		}
	}
	return filters, limit
}

func matches(row map[string]interface{}, filters []filter) bool {
	for _, f := range filters {
		if fmt.Sprint(row[f.field]) != f.value {
			return false
		}
	}
	return true
}

func (fs *fakeStore) handle(w http.ResponseWriter, r *http.Request) {
	table := strings.TrimPrefix(r.URL.Path, "/rest/v1/")

	fs.mu.Lock()
	defer fs.mu.Unlock()

	writeJSON := func(v interface{}) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(v)
	}

	switch r.Method {
	case http.MethodPost:
		var row map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		fs.nextID++
		if table == "leads" {
			row["id"] = fs.nextID
		} else if row["id"] == nil || row["id"] == "" {
			row["id"] = fmt.Sprintf("row-%d", fs.nextID)
		}
		row["created_at"] = fmt.Sprintf("2026-01-01T00:00:%02dZ", fs.nextID%60)
		fs.tables[table] = append(fs.tables[table], row)
		w.WriteHeader(http.StatusCreated)
		writeJSON([]interface{}{row})

	case http.MethodGet:
		filters, limit := parseFilters(r)
		out := []map[string]interface{}{}
		// newest first: rows are appended in order, walk backwards
		rows := fs.tables[table]
		for i := len(rows) - 1; i >= 0; i-- {
			if matches(rows[i], filters) {
				out = append(out, rows[i])
				if limit >= 0 && len(out) == limit {
					break
				}
			}
		}
		writeJSON(out)

	case http.MethodPatch:
		filters, _ := parseFilters(r)
		var patch map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		updated := []map[string]interface{}{}
		for _, row := range fs.tables[table] {
			if matches(row, filters) {
				for k, v := range patch {
					row[k] = v
				}
				updated = append(updated, row)
			}
		}
		writeJSON(updated)

	case http.MethodDelete:
		filters, _ := parseFilters(r)
		kept := fs.tables[table][:0]
		deleted := []map[string]interface{}{}
		for _, row := range fs.tables[table] {
			if matches(row, filters) {
				deleted = append(deleted, row)
			} else {
				kept = append(kept, row)
			}
		}
		fs.tables[table] = kept
		writeJSON(deleted)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
