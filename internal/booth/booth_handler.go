package booth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/IdrisKulubi/huaweievent/internal/shared/apperror"
	"github.com/IdrisKulubi/huaweievent/internal/shared/response"
)

type Handler struct {
	service  Service
	validate *validator.Validate
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service, validate: validator.New()}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) UpsertMyBooth(c *gin.Context) {
	var req UpsertBoothRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpsertMyBooth(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetBoothsByEvent(c *gin.Context) {
	resp, err := h.service.GetBoothsByEvent(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetBoothByID(c *gin.Context) {
	resp, err := h.service.GetBoothByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CreateSlots(c *gin.Context) {
	var req CreateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CreateSlots(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetSlotsByBooth(c *gin.Context) {
	resp, err := h.service.GetSlotsByBooth(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetMyBookings(c *gin.Context) {
	resp, err := h.service.GetMyBookings(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) BookSlot(c *gin.Context) {
	resp, err := h.service.BookSlot(c.Request.Context(), c.GetString("user_id"), c.Param("slotId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CancelBooking(c *gin.Context) {
	if err := h.service.CancelBooking(c.Request.Context(), c.GetString("user_id"), c.Param("slotId")); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": SlotAvailable}, nil)
}
