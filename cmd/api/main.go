package main

import (
	"fmt"

	"clinic-hr-backend/config"
	"clinic-hr-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Starting up... loading .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: no .env file found, using system environment variables.")
	}

	fmt.Println("2. Connecting to database...")
	config.ConnectDB()
	fmt.Println("3. Database connected! Setting up routes...")

	app := fiber.New()

	// Global middleware
	app.Use(cors.New())
	app.Use(logger.New())

	// Serve avatar images
	app.Static("/avatars", "./avatars")

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupEmployeeRoutes(app, config.DB)
	routes.SetupAttendanceRoutes(app, config.DB)
	routes.SetupLeaveRoutes(app, config.DB)
	routes.SetupScheduleRoutes(app, config.DB)
	routes.SetupPayrollRoutes(app, config.DB)
	routes.SetupPredictRoutes(app, config.DB)
	routes.SetupDashboardRoutes(app, config.DB)

	port := config.GetEnv("PORT", "3000")
	fmt.Println("4. Server ready! Listening on port :" + port)
	app.Listen(":" + port)
}
