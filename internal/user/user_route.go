package user

import (
	"github.com/gin-gonic/gin"

	"github.com/IdrisKulubi/huaweievent/internal/middleware"
	"github.com/IdrisKulubi/huaweievent/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("", middleware.RBACAuthorize(rbacService, "user", "read"), h.GetAll)
		users.GET("/:id", middleware.RBACAuthorize(rbacService, "user", "read"), h.GetByID)
		users.PATCH("/:id/role", middleware.RBACAuthorize(rbacService, "user", "manage"), h.UpdateRole)
		users.PATCH("/:id/status", middleware.RBACAuthorize(rbacService, "user", "manage"), h.ToggleStatus)
		users.POST("/:id/reset-password", middleware.RBACAuthorize(rbacService, "user", "manage"), h.ForceResetPassword)
		users.PUT("/:id/security-profile", middleware.RBACAuthorize(rbacService, "user", "manage"), h.UpsertSecurityProfile)
	}

	security := r.Group("/security")
	security.Use(middleware.AuthMiddleware())
	{
		security.GET("/profile", middleware.RoleMiddleware(rbac.RoleSecurity, rbac.RoleAdmin), h.MySecurityProfile)
	}
}
