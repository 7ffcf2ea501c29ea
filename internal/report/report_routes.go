package report

import (
	"github.com/gin-gonic/gin"

	"github.com/IdrisKulubi/huaweievent/internal/middleware"
	"github.com/IdrisKulubi/huaweievent/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.GET("/dashboard/:eventId", middleware.RBACAuthorize(rbacService, "report", "read"), h.Dashboard)
		reports.GET("/attendance/:eventId", middleware.RBACAuthorize(rbacService, "report", "read"), h.Attendance)
	}
}
