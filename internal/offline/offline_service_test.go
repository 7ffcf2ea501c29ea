package offline

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	checkinErrors "github.com/IdrisKulubi/huaweievent/internal/checkin/errors"
)

type fakeForwarder struct {
	fn func(ctx context.Context, method, value, attemptID string) (*APIResponse, error)
}

func (f *fakeForwarder) Verify(ctx context.Context, method, value, attemptID string) (*APIResponse, error) {
	return f.fn(ctx, method, value, attemptID)
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "queue"))
	assert.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestService(t *testing.T, store *Store, forwarder Verifier) *Service {
	t.Helper()
	monitor := NewMonitor(func(ctx context.Context) bool { return true }, time.Minute, zap.NewNop())
	return NewService(store, monitor, forwarder, "SEC-001", "5f2d3a9e-0000-4000-8000-000000000001", t.TempDir(), zap.NewNop())
}

func TestVerifyForwardsWhenOnline(t *testing.T) {
	store := newTestStore(t)
	forwarder := &fakeForwarder{
		fn: func(ctx context.Context, method, value, attemptID string) (*APIResponse, error) {
			assert.Equal(t, MethodPin, method)
			assert.Equal(t, "123456", value)
			return &APIResponse{StatusCode: 200, Body: json.RawMessage(`{"ok":true}`)}, nil
		},
	}

	svc := newTestService(t, store, forwarder)
	outcome, err := svc.Verify(context.Background(), MethodPin, "123456")

	assert.NoError(t, err)
	assert.True(t, outcome.Forwarded)
	assert.False(t, outcome.Queued)
	assert.Equal(t, 0, outcome.PendingCount)
}

func TestVerifyRejectsMalformedInputEvenOffline(t *testing.T) {
	store := newTestStore(t)
	forwarder := &fakeForwarder{
		fn: func(ctx context.Context, method, value, attemptID string) (*APIResponse, error) {
			t.Fatal("malformed input must not reach the forwarder")
			return nil, nil
		},
	}

	svc := newTestService(t, store, forwarder)

	_, err := svc.Verify(context.Background(), MethodPin, "12ab56")
	assert.ErrorIs(t, err, checkinErrors.ErrInvalidPinFormat)
	_, err = svc.Verify(context.Background(), MethodTicket, "HCS-26-SHORT")
	assert.ErrorIs(t, err, checkinErrors.ErrInvalidTicketFormat)

	pending, err := svc.Pending()
	assert.NoError(t, err)
	assert.Empty(t, pending, "rejected input must not be queued")
}

func TestVerifyQueuesWhenUnreachable(t *testing.T) {
	store := newTestStore(t)
	var sentAttemptID string
	forwarder := &fakeForwarder{
		fn: func(ctx context.Context, method, value, attemptID string) (*APIResponse, error) {
			sentAttemptID = attemptID
			return nil, ErrUnreachable
		},
	}

	svc := newTestService(t, store, forwarder)

	outcome, err := svc.Verify(context.Background(), MethodTicket, "HCS-2026-K7M2P9QA")
	assert.NoError(t, err)
	assert.True(t, outcome.Queued)
	assert.Equal(t, 1, outcome.PendingCount)
	assert.Equal(t, StatusPendingSync, outcome.Record.Status)
	assert.Equal(t, sentAttemptID, outcome.Record.ID,
		"a queued attempt keeps the ID it was forwarded under")

	// the failed forward flips the station offline; the next attempt
	// queues without touching the API
	assert.False(t, svc.monitor.Online())
	outcome, err = svc.Verify(context.Background(), MethodPin, "123456")
	assert.NoError(t, err)
	assert.True(t, outcome.Queued)
	assert.Equal(t, 2, outcome.PendingCount)

	pending, err := svc.Pending()
	assert.NoError(t, err)
	assert.Len(t, pending, 2)
	assert.Equal(t, "HCS-2026-K7M2P9QA", pending[0].Value)
}

func TestExportLeavesQueueIntact(t *testing.T) {
	store := newTestStore(t)
	forwarder := &fakeForwarder{
		fn: func(ctx context.Context, method, value, attemptID string) (*APIResponse, error) {
			return nil, ErrUnreachable
		},
	}
	svc := newTestService(t, store, forwarder)
	svc.now = func() time.Time { return time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC) }

	_, err := svc.Verify(context.Background(), MethodPin, "123456")
	assert.NoError(t, err)

	result, err := svc.Export()
	assert.NoError(t, err)
	assert.Equal(t, 1, result.RecordCount)
	assert.Equal(t, "offline_verifications_SEC-001_2026-09-14.json", filepath.Base(result.Path))

	data, err := os.ReadFile(result.Path)
	assert.NoError(t, err)
	var manifest ExportManifest
	assert.NoError(t, json.Unmarshal(data, &manifest))
	assert.Equal(t, "SEC-001", manifest.BadgeNumber)
	assert.Len(t, manifest.Records, 1)

	// exporting does not drain the queue
	pending, err := svc.Pending()
	assert.NoError(t, err)
	assert.Len(t, pending, 1)

	removed, err := svc.Clear()
	assert.NoError(t, err)
	assert.Equal(t, 1, removed)

	pending, err = svc.Pending()
	assert.NoError(t, err)
	assert.Empty(t, pending)
}

func TestMonitorTransitions(t *testing.T) {
	m := NewMonitor(func(ctx context.Context) bool { return false }, time.Minute, zap.NewNop())
	assert.True(t, m.Online())

	m.Observe(false)
	assert.False(t, m.Online())
	m.Observe(true)
	assert.True(t, m.Online())
}
