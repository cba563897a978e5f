package routes

import (
	"clinic-hr-backend/internal/handler"
	"clinic-hr-backend/internal/middleware"
	"clinic-hr-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupEmployeeRoutes(app *fiber.App, db *gorm.DB) {
	employeeRepo := repository.NewEmployeeRepository(db)
	hdl := handler.NewEmployeeHandler(employeeRepo)

	api := app.Group("/api/employees", middleware.Auth, middleware.Role("Admin"))

	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
