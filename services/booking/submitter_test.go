package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"weddingplanner/models"
	"weddingplanner/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayload() models.BookingPayload {
	summary := BuildSummary(selectionOf(map[models.Category]string{
		models.CategoryCatering: "c1",
		models.CategoryMusic:    "m1",
	}), weddingCatalog())
	return summary.Payload()
}

func TestHTTPSubmitter_PostsPayload(t *testing.T) {
	var (
		mu   sync.Mutex
		got  map[string]any
		meth string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		meth = r.Method
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 42}`))
	}))
	defer srv.Close()

	s := &HTTPSubmitter{URL: srv.URL, HTTP: srv.Client()}
	receipt, err := s.SubmitBooking(context.Background(), samplePayload())
	require.NoError(t, err)
	assert.Equal(t, "42", receipt.BookingID)
	assert.Equal(t, "accepted", receipt.Status)
	assert.False(t, receipt.ReceivedAt.IsZero())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, http.MethodPost, meth)
	customer, ok := got["customer"].(map[string]any)
	require.True(t, ok, "payload: %v", got)
	assert.Equal(t, "Ana", customer["name"])
	items, ok := got["lineItems"].([]any)
	require.True(t, ok)
	assert.Len(t, items, 2)
}

func TestHTTPSubmitter_EmptyBodyIsAccepted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	s := &HTTPSubmitter{URL: srv.URL, HTTP: srv.Client()}
	receipt, err := s.SubmitBooking(context.Background(), samplePayload())
	require.NoError(t, err)
	assert.Empty(t, receipt.BookingID)
	assert.Equal(t, "accepted", receipt.Status)
}

func TestHTTPSubmitter_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	s := &HTTPSubmitter{URL: srv.URL, HTTP: srv.Client()}
	_, err := s.SubmitBooking(context.Background(), samplePayload())

	var statusErr *utils.HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
}

func TestDisabledSubmitter(t *testing.T) {
	_, err := DisabledSubmitter{}.SubmitBooking(context.Background(), models.BookingPayload{Total: decimal.Zero})
	assert.ErrorIs(t, err, ErrSubmissionDisabled)
}
