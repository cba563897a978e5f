package routes

import (
	"clinic-hr-backend/config"
	"clinic-hr-backend/internal/handler"
	"clinic-hr-backend/internal/mailer"
	"clinic-hr-backend/internal/middleware"
	"clinic-hr-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB) {
	punchRepo := repository.NewPunchRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)

	mail := mailer.New(
		config.GetEnv("SMTP_HOST", ""),
		config.GetEnvAsInt("SMTP_PORT", 587),
		config.GetEnv("SMTP_USER", ""),
		config.GetEnv("SMTP_PASSWORD", ""),
		config.GetEnv("SMTP_FROM", "noreply@clinic.local"),
		config.GetEnv("HR_SUMMARY_EMAIL", ""),
	)

	punchHdl := handler.NewPunchHandler(punchRepo)
	hdl := handler.NewAttendanceHandler(punchRepo, employeeRepo, attendanceRepo, mail)

	api := app.Group("/api/attendance", middleware.Auth)

	api.Post("/aggregate", middleware.Role("Admin"), hdl.Aggregate)
	api.Get("/history", hdl.GetHistory)
	api.Get("/monthly", middleware.Role("Admin"), hdl.GetMonthly)
	api.Get("/daily", middleware.Role("Admin"), hdl.GetDaily)

	punches := app.Group("/api/punches", middleware.Auth, middleware.Role("Admin"))
	punches.Post("/import", punchHdl.Import)
}
