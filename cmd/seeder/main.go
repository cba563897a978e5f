package main

import (
	"fmt"

	"clinic-hr-backend/config"
	"clinic-hr-backend/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: no .env file found, using system environment variables.")
	}

	config.ConnectDB()
	database.SeedAll(config.DB)
}
