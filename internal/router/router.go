// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/navidh/exam-center-scheduling/internal/config"
	"github.com/navidh/exam-center-scheduling/internal/handler"
	"github.com/navidh/exam-center-scheduling/internal/middleware"
	"github.com/navidh/exam-center-scheduling/internal/model"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only a health check for load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAPI registers the authenticated scheduling API.  Every route
// sits behind JWT verification; role middleware splits the surface
// between system admins (catalog management) and center admins
// (booking and shift scheduling).  The rate limiter applies to the
// whole group and degrades to a pass-through without Redis.
func RegisterAPI(e *echo.Echo, h *handler.AdminHandler, jwtSecret string, rdb *redis.Client) {
	api := e.Group("/v1")
	api.Use(middleware.JWTAuth(jwtSecret))
	api.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	// Catalog management: centers, subjects, exam dates.
	sys := api.Group("", middleware.RequireRole(model.RoleSystemAdmin))
	sys.POST("/centers", h.CreateCenter)
	sys.PUT("/centers/:id", h.UpdateCenter)
	sys.DELETE("/centers/:id", h.DeleteCenter)
	sys.POST("/subjects", h.CreateSubject)
	sys.POST("/exam-dates", h.CreateExamDate)

	// Read endpoints are open to both roles.
	both := api.Group("", middleware.RequireRole(model.RoleSystemAdmin, model.RoleCenterAdmin))
	both.GET("/centers", h.ListCenters)
	both.GET("/centers/:id", h.GetCenter)
	both.GET("/centers/:id/shifts", h.ListCenterShifts)
	both.GET("/centers/:id/bookings", h.ListCenterBookings)
	both.GET("/subjects", h.ListSubjects)
	both.GET("/exam-dates", h.ListExamDates)
	both.GET("/exam-dates/:id", h.GetExamDate)

	// Scheduling operations performed by a center admin.
	adm := api.Group("", middleware.RequireRole(model.RoleCenterAdmin))
	adm.POST("/shifts", h.CreateShift)
	adm.PUT("/shifts/:id", h.UpdateShift)
	adm.PATCH("/shifts/:id/capacity", h.UpdateShiftCapacity)
	adm.DELETE("/shifts/:id", h.RemoveShift)
	adm.POST("/exam-dates/:id/book", h.BookExamDate)

	// Batch maintenance stays with the system admin.
	sys.POST("/shifts/bulk-time-update", h.BulkUpdateShiftTimes)
}
