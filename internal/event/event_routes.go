package event

import (
	"github.com/gin-gonic/gin"

	"github.com/IdrisKulubi/huaweievent/internal/middleware"
	"github.com/IdrisKulubi/huaweievent/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	events := r.Group("/events")
	events.Use(middleware.AuthMiddleware())
	{
		events.GET("", middleware.RBACAuthorize(rbacService, "event", "read"), h.GetAll)
		events.GET("/active", middleware.RBACAuthorize(rbacService, "event", "read"), h.GetActive)
		events.GET("/:id", middleware.RBACAuthorize(rbacService, "event", "read"), h.GetByID)
		events.POST("", middleware.RBACAuthorize(rbacService, "event", "manage"), h.Create)
		events.PATCH("/:id", middleware.RBACAuthorize(rbacService, "event", "manage"), h.Update)
		events.POST("/:id/activate", middleware.RBACAuthorize(rbacService, "event", "manage"), h.Activate)
		events.POST("/:id/deactivate", middleware.RBACAuthorize(rbacService, "event", "manage"), h.Deactivate)
	}
}
