package offline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// One platform instance serves /healthz at the router root and the
// verification endpoints under /api/v1. A single base URL has to
// satisfy both, or the station can't stay online and verify.
func newPlatformStub(t *testing.T, hits *[]string, headers *http.Header) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		*hits = append(*hits, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/v1/checkins/verify-pin", func(w http.ResponseWriter, r *http.Request) {
		*hits = append(*hits, r.URL.Path)
		*headers = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	})
	mux.HandleFunc("/api/v1/checkins/verify-ticket", func(w http.ResponseWriter, r *http.Request) {
		*hits = append(*hits, r.URL.Path)
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"ok":false}`))
	})
	return httptest.NewServer(mux)
}

func TestForwarderSharesOneBaseURL(t *testing.T) {
	var hits []string
	var headers http.Header
	server := newPlatformStub(t, &hits, &headers)
	defer server.Close()

	f := NewForwarder(server.URL, "station-token")

	assert.True(t, f.Healthz(context.Background()))

	resp, err := f.Verify(context.Background(), MethodPin, "123456", "attempt-1")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, []string{"/healthz", "/api/v1/checkins/verify-pin"}, hits)
	assert.Equal(t, "Bearer station-token", headers.Get("Authorization"))
	assert.Equal(t, "attempt-1", headers.Get("Idempotency-Key"))
}

func TestForwarderRelaysVerificationFailures(t *testing.T) {
	var hits []string
	var headers http.Header
	server := newPlatformStub(t, &hits, &headers)
	defer server.Close()

	f := NewForwarder(server.URL, "station-token")

	resp, err := f.Verify(context.Background(), MethodTicket, "HCS-2026-K7M2P9QA", "attempt-2")
	assert.NoError(t, err, "an answered request is not unreachable")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.JSONEq(t, `{"ok":false}`, string(resp.Body))
	assert.Equal(t, []string{"/api/v1/checkins/verify-ticket"}, hits)
}

func TestForwarderReportsUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	f := NewForwarder(addr, "station-token")

	assert.False(t, f.Healthz(context.Background()))
	_, err := f.Verify(context.Background(), MethodPin, "123456", "attempt-3")
	assert.ErrorIs(t, err, ErrUnreachable)
}
