package attendee

import (
	"github.com/gin-gonic/gin"

	"github.com/IdrisKulubi/huaweievent/internal/middleware"
	"github.com/IdrisKulubi/huaweievent/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	attendees := r.Group("/attendees")
	attendees.Use(middleware.AuthMiddleware())
	{
		attendees.POST("/profile", middleware.RBACAuthorize(rbacService, "attendee", "self"), h.CreateProfile)
		attendees.GET("/me", middleware.RBACAuthorize(rbacService, "attendee", "self"), h.MyProfile)
		attendees.POST("/me/pin", middleware.RBACAuthorize(rbacService, "attendee", "self"), h.RegeneratePin)

		attendees.GET("", middleware.RBACAuthorize(rbacService, "attendee", "read"), h.GetAll)
		attendees.GET("/:id", middleware.RBACAuthorize(rbacService, "attendee", "read"), h.GetByID)
		attendees.PATCH("/:id/status", middleware.RBACAuthorize(rbacService, "attendee", "manage"), h.UpdateStatus)
	}
}
