package booth

import (
	"github.com/gin-gonic/gin"

	"github.com/IdrisKulubi/huaweievent/internal/middleware"
	"github.com/IdrisKulubi/huaweievent/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	booths := r.Group("/booths")
	booths.Use(middleware.AuthMiddleware())
	{
		booths.PUT("/me", middleware.RBACAuthorize(rbacService, "booth", "manage"), h.UpsertMyBooth)
		booths.GET("/event/:eventId", middleware.RBACAuthorize(rbacService, "booth", "read"), h.GetBoothsByEvent)
		booths.GET("/:id", middleware.RBACAuthorize(rbacService, "booth", "read"), h.GetBoothByID)
		booths.POST("/:id/slots", middleware.RBACAuthorize(rbacService, "interview", "manage"), h.CreateSlots)
		booths.GET("/:id/slots", middleware.RBACAuthorize(rbacService, "interview", "read"), h.GetSlotsByBooth)
	}

	interviews := r.Group("/interviews")
	interviews.Use(middleware.AuthMiddleware())
	{
		interviews.GET("/mine", middleware.RBACAuthorize(rbacService, "interview", "read"), h.GetMyBookings)
		interviews.POST("/:slotId/book", middleware.RBACAuthorize(rbacService, "interview", "book"), h.BookSlot)
		interviews.POST("/:slotId/cancel", middleware.RBACAuthorize(rbacService, "interview", "book"), h.CancelBooking)
	}
}
