package routes

import (
	"clinic-hr-backend/internal/handler"
	"clinic-hr-backend/internal/middleware"
	"clinic-hr-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	employeeRepo := repository.NewEmployeeRepository(db)
	hdl := handler.NewAuthHandler(employeeRepo)

	api := app.Group("/api/auth")

	api.Post("/login", hdl.Login)
	api.Post("/register", middleware.Auth, middleware.Role("Admin"), hdl.Register)
	api.Get("/profile", middleware.Auth, hdl.GetProfile)
}
