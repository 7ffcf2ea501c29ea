package offline

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IdrisKulubi/huaweievent/internal/shared/apperror"
	"github.com/IdrisKulubi/huaweievent/internal/shared/response"
)

// Handler is the station's local HTTP surface, consumed by the gate
// screen on the same device. It has no auth of its own; the station
// binds to loopback.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/verify-pin", h.VerifyPin)
	r.POST("/verify-ticket", h.VerifyTicket)
	r.GET("/status", h.Status)
	r.GET("/pending", h.Pending)
	r.POST("/export", h.Export)
	r.POST("/clear", h.Clear)
}

func (h *Handler) VerifyPin(c *gin.Context) {
	var req struct {
		Pin string `json:"pin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}
	h.verify(c, MethodPin, req.Pin)
}

func (h *Handler) VerifyTicket(c *gin.Context) {
	var req struct {
		TicketNumber string `json:"ticket_number" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}
	h.verify(c, MethodTicket, req.TicketNumber)
}

func (h *Handler) verify(c *gin.Context, method, value string) {
	outcome, err := h.service.Verify(c.Request.Context(), method, value)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	// Forwarded attempts relay the platform's own status and body, so a
	// rejected verification shows up on the gate screen as the failure
	// it is, not as a station success.
	if outcome.Forwarded && outcome.Response != nil {
		c.Data(outcome.Response.StatusCode, "application/json", outcome.Response.Body)
		return
	}
	response.Success(c, http.StatusOK, outcome, nil)
}

func (h *Handler) Status(c *gin.Context) {
	info, err := h.service.Status()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STATION_ERROR", "Status unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, info, nil)
}

func (h *Handler) Pending(c *gin.Context) {
	records, err := h.service.Pending()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STATION_ERROR", "Queue unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, records, nil)
}

func (h *Handler) Export(c *gin.Context) {
	result, err := h.service.Export()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STATION_ERROR", "Export failed", nil)
		return
	}
	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) Clear(c *gin.Context) {
	removed, err := h.service.Clear()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STATION_ERROR", "Clear failed", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"removed": removed}, nil)
}
