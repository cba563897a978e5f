package routes

import (
	"clinic-hr-backend/internal/handler"
	"clinic-hr-backend/internal/middleware"
	"clinic-hr-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPayrollRoutes(app *fiber.App, db *gorm.DB) {
	employeeRepo := repository.NewEmployeeRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	hdl := handler.NewPayrollHandler(employeeRepo, attendanceRepo)

	api := app.Group("/api/payroll", middleware.Auth, middleware.Role("Admin"))

	api.Get("/estimate", hdl.Estimate)
}
