package routes

import (
	"clinic-hr-backend/internal/handler"
	"clinic-hr-backend/internal/middleware"
	"clinic-hr-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupScheduleRoutes(app *fiber.App, db *gorm.DB) {
	scheduleRepo := repository.NewScheduleRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	hdl := handler.NewScheduleHandler(scheduleRepo, shiftRepo)

	api := app.Group("/api/schedules", middleware.Auth)

	api.Post("/", middleware.Role("Admin"), hdl.Assign)
	api.Get("/", middleware.Role("Admin"), hdl.GetByDate)
	api.Get("/mine", hdl.GetMine)
	api.Delete("/:id", middleware.Role("Admin"), hdl.Delete)

	shifts := app.Group("/api/shifts", middleware.Auth)
	shifts.Get("/", hdl.GetShifts)
	shifts.Post("/", middleware.Role("Admin"), hdl.CreateShift)
	shifts.Delete("/:id", middleware.Role("Admin"), hdl.DeleteShift)
}
