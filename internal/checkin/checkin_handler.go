package checkin

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/IdrisKulubi/huaweievent/internal/shared/apperror"
	"github.com/IdrisKulubi/huaweievent/internal/shared/response"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// releaseIdempotencyLock frees the in-flight lock the idempotency
// middleware took, win or lose, so a retry is not stuck behind a
// request that already finished.
func (h *Handler) releaseIdempotencyLock(c *gin.Context) {
	if h.rdb == nil {
		return
	}
	lockKey, _ := c.Get("idempotency_lock_key")
	if lk, ok := lockKey.(string); ok && lk != "" {
		h.rdb.Del(c.Request.Context(), lk)
	}
}

// cacheIdempotentResult stores the successful result under the key the
// middleware replays from, so a station retrying the same attempt gets
// the original record back instead of inserting a second one.
func (h *Handler) cacheIdempotentResult(c *gin.Context, result *VerificationResult) {
	if h.rdb == nil {
		return
	}
	cacheKey, _ := c.Get("idempotency_cache_key")
	if ck, ok := cacheKey.(string); ok && ck != "" {
		if payload, marshalErr := json.Marshal(result); marshalErr == nil {
			_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
		}
	}
}

func (h *Handler) VerifyByPin(c *gin.Context) {
	defer h.releaseIdempotencyLock(c)

	var req VerifyPinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	result, err := h.service.VerifyByPin(c.Request.Context(), req.Pin, c.GetString("user_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.cacheIdempotentResult(c, result)
	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) VerifyByTicket(c *gin.Context) {
	defer h.releaseIdempotencyLock(c)

	var req VerifyTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	result, err := h.service.VerifyByTicket(c.Request.Context(), req.TicketNumber, c.GetString("user_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.cacheIdempotentResult(c, result)
	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) GetByEvent(c *gin.Context) {
	resp, err := h.service.GetByEvent(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByAttendee(c *gin.Context) {
	resp, err := h.service.GetByAttendee(c.Request.Context(), c.Param("attendeeId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
