package offline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUnreachable means the API could not be reached at all, as opposed
// to the API answering with a verification failure.
var ErrUnreachable = errors.New("verification api unreachable")

// apiPrefix is where the platform mounts its versioned routes. Healthz
// lives at the router root, outside the version group.
const apiPrefix = "/api/v1"

// Forwarder sends verifications to the platform API on behalf of the
// station's logged-in security officer.
type Forwarder struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewForwarder(baseURL, token string) *Forwarder {
	return &Forwarder{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// APIResponse is the platform's response envelope, kept loose so the
// station can relay it to the gate screen untouched.
type APIResponse struct {
	StatusCode int             `json:"status_code"`
	Body       json.RawMessage `json:"body"`
}

// Verify posts to the platform's verify-pin or verify-ticket endpoint.
// Transport failures return ErrUnreachable; HTTP-level failures are
// returned as a response for the caller to relay. The attempt ID rides
// along as the idempotency key so a retried forward cannot double-insert
// a record server-side.
func (f *Forwarder) Verify(ctx context.Context, method, value, attemptID string) (*APIResponse, error) {
	var path string
	var payload map[string]string
	switch method {
	case MethodPin:
		path = apiPrefix + "/checkins/verify-pin"
		payload = map[string]string{"pin": value}
	case MethodTicket:
		path = apiPrefix + "/checkins/verify-ticket"
		payload = map[string]string{"ticket_number": value}
	default:
		return nil, fmt.Errorf("unknown verification method %q", method)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.token)
	req.Header.Set("Idempotency-Key", attemptID)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	return &APIResponse{StatusCode: resp.StatusCode, Body: data}, nil
}

// Healthz probes the API health endpoint. Used by the Monitor.
func (f *Forwarder) Healthz(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/healthz", nil)
	if err != nil {
		return false
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
