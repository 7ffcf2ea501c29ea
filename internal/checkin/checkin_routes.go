package checkin

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/IdrisKulubi/huaweievent/internal/middleware"
	"github.com/IdrisKulubi/huaweievent/internal/rbac"
)

// RegisterRoutes wires the gate endpoints. Verification posts carry an
// idempotency key so a station retrying over a flaky link does not
// double-insert records.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, rdb *redis.Client) {
	checkins := r.Group("/checkins")
	checkins.Use(middleware.AuthMiddleware())
	{
		checkins.POST("/verify-pin", middleware.RBACAuthorize(rbacService, "checkin", "create"), middleware.Idempotency(rdb), h.VerifyByPin)
		checkins.POST("/verify-ticket", middleware.RBACAuthorize(rbacService, "checkin", "create"), middleware.Idempotency(rdb), h.VerifyByTicket)
		checkins.GET("/event/:eventId", middleware.RBACAuthorize(rbacService, "checkin", "read"), h.GetByEvent)
		checkins.GET("/attendee/:attendeeId", middleware.RBACAuthorize(rbacService, "checkin", "read"), h.GetByAttendee)
	}
}
