package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyerinam29-hash/my-face-landing/external/supabase"
	"github.com/hyerinam29-hash/my-face-landing/internal/apperr"
	"github.com/hyerinam29-hash/my-face-landing/internal/model"
)

func newStoreClient(t *testing.T, handler http.HandlerFunc) *supabase.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := supabase.NewClient(srv.URL, "test-key", false)
	require.NoError(t, err)
	return client
}

func TestPendingOrderCreate_WireFormat(t *testing.T) {
	var got model.PendingOrder
	var path, prefer string

	client := newStoreClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		prefer = r.Header.Get("Prefer")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	})
	repo := NewPendingOrderRepository(client)

	items := []model.CartItem{{ID: "c1", UserID: "u1", Name: "수분 크림", Price: "28,000원"}}
	err := repo.Create(context.Background(), "u1", "o1", 28000, items)

	require.NoError(t, err)
	assert.Equal(t, "/rest/v1/pending_orders", path)
	assert.Empty(t, prefer, "create does not need the representation back")
	assert.Equal(t, "o1", got.OrderID)
	assert.Equal(t, int64(28000), got.Amount)
	assert.Equal(t, model.PendingStatusPending, got.Status)
	require.Len(t, got.CartItems, 1)
	assert.Equal(t, "c1", got.CartItems[0].ID)
}

func TestPendingOrderCreate_Validation(t *testing.T) {
	repo := NewPendingOrderRepository(nil)
	items := []model.CartItem{{ID: "c1"}}

	var v *apperr.ValidationError
	require.ErrorAs(t, repo.Create(context.Background(), "", "o1", 1, items), &v)
	require.ErrorAs(t, repo.Create(context.Background(), "u1", "", 1, items), &v)
	require.ErrorAs(t, repo.Create(context.Background(), "u1", "o1", 0, items), &v)
	require.ErrorAs(t, repo.Create(context.Background(), "u1", "o1", -5, items), &v)
	require.ErrorAs(t, repo.Create(context.Background(), "u1", "o1", 1, nil), &v)
}

func TestPendingOrderGet_MostRecentFirst(t *testing.T) {
	var query string
	client := newStoreClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		json.NewEncoder(w).Encode([]model.PendingOrder{
			{UserID: "u1", OrderID: "o1", Amount: 50000, Status: model.PendingStatusPending},
		})
	})
	repo := NewPendingOrderRepository(client)

	po, err := repo.Get(context.Background(), "o1")

	require.NoError(t, err)
	assert.Equal(t, int64(50000), po.Amount)
	assert.Contains(t, query, "order_id=eq.o1")
	assert.Contains(t, query, "order=created_at.desc")
	assert.Contains(t, query, "limit=1")
}

func TestPendingOrderGet_NotFoundVsTransportFailure(t *testing.T) {
	// absence
	client := newStoreClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]model.PendingOrder{})
	})
	repo := NewPendingOrderRepository(client)

	_, err := repo.Get(context.Background(), "o1")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// outage: a closed server is a NetworkError, not a silent null
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	downClient, cerr := supabase.NewClient(srv.URL, "test-key", false)
	require.NoError(t, cerr)
	srv.Close()
	downRepo := NewPendingOrderRepository(downClient)

	_, err = downRepo.Get(context.Background(), "o1")
	var netErr *apperr.NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestPendingOrderClaim_ConditionalUpdate(t *testing.T) {
	var method, query string
	var patch map[string]string

	client := newStoreClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		query = r.URL.RawQuery
		json.NewDecoder(r.Body).Decode(&patch)
		json.NewEncoder(w).Encode([]model.PendingOrder{
			{UserID: "u1", OrderID: "o1", Amount: 50000, Status: model.PendingStatusConfirming},
		})
	})
	repo := NewPendingOrderRepository(client)

	claimed, err := repo.Claim(context.Background(), "o1")

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, method)
	assert.Contains(t, query, "order_id=eq.o1")
	assert.Contains(t, query, "status=eq.PENDING")
	assert.Equal(t, model.PendingStatusConfirming, patch["status"])
	assert.Equal(t, model.PendingStatusConfirming, claimed.Status)
}

func TestPendingOrderClaim_AlreadyClaimed(t *testing.T) {
	// zero rows back from the conditional update: someone else owns it
	client := newStoreClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]model.PendingOrder{})
	})
	repo := NewPendingOrderRepository(client)

	_, err := repo.Claim(context.Background(), "o1")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPendingOrderDelete_StorageError(t *testing.T) {
	client := newStoreClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"permission denied"}`, http.StatusForbidden)
	})
	repo := NewPendingOrderRepository(client)

	err := repo.Delete(context.Background(), "o1")

	var storage *apperr.StorageError
	require.ErrorAs(t, err, &storage)
	assert.Equal(t, http.StatusForbidden, storage.Status)
}
