// File: studiobook/devserver/routes.go
package devserver

import (
	"net/http"

	"studiobook/models"

	"github.com/gin-gonic/gin"
)

func (s *Server) registerRoutes(engine *gin.Engine) {
	engine.GET("/health", s.handleHealth)

	auth := engine.Group("/auth")
	{
		auth.POST("/register", s.handleRegister)
		auth.POST("/login", s.handleLogin)
		auth.GET("/me", s.requireAuth(), s.handleGetMe)
		auth.PUT("/me", s.requireAuth(), s.handleUpdateMe)
		auth.POST("/promote-to-studio-owner", s.requireAuth(), s.handlePromote)
		auth.POST("/verify-email", s.requireAuth(), s.handleVerifyEmail)
		auth.POST("/logout", s.requireAuth(), s.handleLogout)
	}

	studios := engine.Group("/studios", s.requireAuth(), s.requireStudioOwner())
	{
		studios.POST("/", s.handleCreateStudio)
		studios.GET("/", s.handleListStudios)
		studios.GET("/:studio_id", s.handleGetStudio)
		studios.PUT("/:studio_id", s.handleUpdateStudio)
		studios.DELETE("/:studio_id", s.handleDeleteStudio)

		studios.POST("/:studio_id/time-slots", s.handleCreateTimeSlots)
		studios.GET("/:studio_id/time-slots", s.handleListTimeSlots)
		studios.PUT("/:studio_id/time-slots/:slot_id", s.handleUpdateTimeSlot)
		studios.DELETE("/:studio_id/time-slots/:slot_id", s.handleDeleteTimeSlot)

		studios.POST("/:studio_id/equipment", s.handleCreateEquipment)
		studios.GET("/:studio_id/equipment", s.handleListEquipment)
		studios.PUT("/:studio_id/equipment/:equipment_id", s.handleUpdateEquipment)
		studios.DELETE("/:studio_id/equipment/:equipment_id", s.handleDeleteEquipment)
	}

	packages := engine.Group("/packages")
	{
		// Booking pages read packages without a token.
		packages.GET("/public/:package_id", s.handleGetPublicPackage)

		owner := packages.Group("", s.requireAuth(), s.requireStudioOwner())
		owner.POST("/", s.handleCreatePackage)
		owner.GET("/studio/:studio_id", s.handleListStudioPackages)
		owner.GET("/:package_id", s.handleGetPackage)
		owner.PUT("/:package_id", s.handleUpdatePackage)
		owner.DELETE("/:package_id", s.handleDeletePackage)
		owner.POST("/:package_id/duplicate", s.handleDuplicatePackage)
	}

	appointments := engine.Group("/appointments", s.requireAuth(), s.requireStudioOwner())
	{
		appointments.GET("/", s.handleListAppointments)
		appointments.GET("/:appointment_id", s.handleGetAppointment)
		appointments.PUT("/:appointment_id", s.handleUpdateAppointment)
		appointments.POST("/:appointment_id/confirm", s.handleConfirmAppointment)
		appointments.POST("/:appointment_id/cancel", s.handleCancelAppointment)
	}

	public := engine.Group("/public")
	{
		// :studio carries the slug on profile and package reads and the
		// studio id on the availability search, matching the backend.
		public.GET("/studios/:studio", s.handlePublicStudio)
		public.GET("/studios/:studio/packages", s.handlePublicStudioPackages)
		public.GET("/studios/:studio/available-slots", s.handleAvailableSlots)

		public.POST("/bookings", s.handleCreateBooking)
		public.GET("/bookings/:booking_id", s.handleGetBooking)
		public.POST("/bookings/:booking_id/cancel", s.handleCancelBooking)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "healthy",
		Version: Version,
	})
}
