package routes

import (
	"clinic-hr-backend/internal/handler"
	"clinic-hr-backend/internal/middleware"
	"clinic-hr-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLeaveRoutes(app *fiber.App, db *gorm.DB) {
	leaveRepo := repository.NewLeaveRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	hdl := handler.NewLeaveHandler(leaveRepo, employeeRepo, attendanceRepo)

	api := app.Group("/api/leave", middleware.Auth)

	api.Post("/", hdl.Apply)
	api.Get("/mine", hdl.GetMine)
	api.Get("/pending", middleware.Role("Admin"), hdl.GetPending)
	api.Post("/:id/approve", middleware.Role("Admin"), hdl.Approve)
	api.Post("/:id/reject", middleware.Role("Admin"), hdl.Reject)
}
