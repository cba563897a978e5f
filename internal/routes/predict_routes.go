package routes

import (
	"clinic-hr-backend/config"
	"clinic-hr-backend/internal/handler"
	"clinic-hr-backend/internal/middleware"
	"clinic-hr-backend/internal/repository"
	"clinic-hr-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPredictRoutes(app *fiber.App, db *gorm.DB) {
	employeeRepo := repository.NewEmployeeRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)

	predictor := usecase.NewPredictor(
		config.GetEnv("AI_ENDPOINT", ""),
		config.GetEnv("AI_API_KEY", ""),
	)
	hdl := handler.NewPredictHandler(employeeRepo, attendanceRepo, predictor)

	api := app.Group("/api/predict", middleware.Auth, middleware.Role("Admin"))

	api.Get("/lateness/:id", hdl.PredictLateness)
}
