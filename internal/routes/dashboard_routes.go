package routes

import (
	"clinic-hr-backend/internal/handler"
	"clinic-hr-backend/internal/middleware"
	"clinic-hr-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	dashboardRepo := repository.NewDashboardRepository(db)
	hdl := handler.NewDashboardHandler(dashboardRepo)

	api := app.Group("/api/dashboard", middleware.Auth, middleware.Role("Admin"))

	api.Get("/stats", hdl.GetStats)
}
