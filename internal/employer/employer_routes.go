package employer

import (
	"github.com/gin-gonic/gin"

	"github.com/IdrisKulubi/huaweievent/internal/middleware"
	"github.com/IdrisKulubi/huaweievent/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	employers := r.Group("/employers")
	employers.Use(middleware.AuthMiddleware())
	{
		employers.PUT("/me", middleware.RBACAuthorize(rbacService, "employer", "manage"), h.UpsertMine)
		employers.GET("/me", middleware.RBACAuthorize(rbacService, "employer", "read"), h.GetMine)

		employers.GET("", middleware.RBACAuthorize(rbacService, "employer", "read"), h.GetAll)
		employers.GET("/:id", middleware.RBACAuthorize(rbacService, "employer", "read"), h.GetByID)
		employers.PATCH("/:id/verify", middleware.RBACAuthorize(rbacService, "employer", "verify"), h.SetVerified)
	}
}
