package checkin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	checkinErrors "github.com/IdrisKulubi/huaweievent/internal/checkin/errors"
)

type fakeService struct {
	verifyPinFn    func(ctx context.Context, pin, verifiedBy string) (*VerificationResult, error)
	verifyTicketFn func(ctx context.Context, ticket, verifiedBy string) (*VerificationResult, error)
}

func (f *fakeService) VerifyByPin(ctx context.Context, pin, verifiedBy string) (*VerificationResult, error) {
	return f.verifyPinFn(ctx, pin, verifiedBy)
}
func (f *fakeService) VerifyByTicket(ctx context.Context, ticket, verifiedBy string) (*VerificationResult, error) {
	return f.verifyTicketFn(ctx, ticket, verifiedBy)
}
func (f *fakeService) GetByEvent(ctx context.Context, eventID string) ([]AttendanceRecordResponse, error) {
	return nil, nil
}
func (f *fakeService) GetByAttendee(ctx context.Context, jobSeekerID string) ([]AttendanceRecordResponse, error) {
	return nil, nil
}

func performVerifyPin(t *testing.T, svc Service, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", "5f2d3a9e-0000-4000-8000-000000000001")
	c.Request = httptest.NewRequest(http.MethodPost, "/checkins/verify-pin", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	NewHandler(svc).VerifyByPin(c)
	return w
}

func TestVerifyByPinHandler(t *testing.T) {
	t.Run("returns 400 for a malformed pin", func(t *testing.T) {
		svc := &fakeService{
			verifyPinFn: func(ctx context.Context, pin, verifiedBy string) (*VerificationResult, error) {
				return nil, checkinErrors.ErrInvalidPinFormat
			},
		}

		w := performVerifyPin(t, svc, `{"pin":"12ab"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["ok"])
	})

	t.Run("returns the verification result on success", func(t *testing.T) {
		svc := &fakeService{
			verifyPinFn: func(ctx context.Context, pin, verifiedBy string) (*VerificationResult, error) {
				assert.Equal(t, "123456", pin)
				assert.NotEmpty(t, verifiedBy)
				return &VerificationResult{
					Success: true,
					Message: "Check-in successful",
					Attendee: AttendeeSummary{
						Name:         "Amina Wanjiru",
						TicketNumber: "HCS-2026-K7M2P9QA",
					},
				}, nil
			},
		}

		w := performVerifyPin(t, svc, `{"pin":"123456"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Check-in successful")
		assert.Contains(t, w.Body.String(), "Amina Wanjiru")
	})

	t.Run("returns 409 when no event is active", func(t *testing.T) {
		svc := &fakeService{
			verifyPinFn: func(ctx context.Context, pin, verifiedBy string) (*VerificationResult, error) {
				return nil, checkinErrors.ErrNoActiveEvent
			},
		}

		w := performVerifyPin(t, svc, `{"pin":"123456"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestVerifyByPinHandlerIdempotency(t *testing.T) {
	gin.SetMode(gin.TestMode)

	const (
		cacheKey = "idemp:/api/v1/checkins/verify-pin:staff-1:attempt-1"
		lockKey  = cacheKey + ":lock"
	)

	performKeyed := func(t *testing.T, svc Service, rdb *redis.Client) *httptest.ResponseRecorder {
		t.Helper()
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("user_id", "5f2d3a9e-0000-4000-8000-000000000001")
		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)
		c.Request = httptest.NewRequest(http.MethodPost, "/checkins/verify-pin", bytes.NewBufferString(`{"pin":"123456"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		NewHandlerWithRedis(svc, rdb).VerifyByPin(c)
		return w
	}

	t.Run("caches the result and releases the lock on success", func(t *testing.T) {
		result := &VerificationResult{Success: true, Message: "Check-in successful"}
		svc := &fakeService{
			verifyPinFn: func(ctx context.Context, pin, verifiedBy string) (*VerificationResult, error) {
				return result, nil
			},
		}

		rdb, mock := redismock.NewClientMock()
		payload, err := json.Marshal(result)
		assert.NoError(t, err)
		mock.ExpectSet(cacheKey, payload, 24*time.Hour).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		w := performKeyed(t, svc, rdb)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet(),
			"a keyed retry must replay from cache, not re-verify")
	})

	t.Run("releases the lock without caching on failure", func(t *testing.T) {
		svc := &fakeService{
			verifyPinFn: func(ctx context.Context, pin, verifiedBy string) (*VerificationResult, error) {
				return nil, checkinErrors.ErrNoActiveEvent
			},
		}

		rdb, mock := redismock.NewClientMock()
		mock.ExpectDel(lockKey).SetVal(1)

		w := performKeyed(t, svc, rdb)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
