package incident

import (
	"github.com/gin-gonic/gin"

	"github.com/IdrisKulubi/huaweievent/internal/middleware"
	"github.com/IdrisKulubi/huaweievent/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	incidents := r.Group("/incidents")
	incidents.Use(middleware.AuthMiddleware())
	{
		incidents.POST("", middleware.RBACAuthorize(rbacService, "incident", "create"), h.Report)
		incidents.GET("", middleware.RBACAuthorize(rbacService, "incident", "read"), h.GetAll)
		incidents.GET("/:id", middleware.RBACAuthorize(rbacService, "incident", "read"), h.GetByID)
		incidents.PATCH("/:id", middleware.RBACAuthorize(rbacService, "incident", "manage"), h.UpdateStatus)
	}
}
