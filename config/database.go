package config

import (
	"fmt"

	"clinic-hr-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	// Format: user:password@tcp(host:port)/dbname?charset=utf8mb4&parseTime=True&loc=Local
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "clinic_hr"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Failed to connect to database: " + err.Error())
	}

	fmt.Println("Database connection established!")

	// Auto Migration: create tables from the structs in internal/model
	db.AutoMigrate(&model.Employee{})
	db.AutoMigrate(&model.Department{})
	db.AutoMigrate(&model.RawPunch{})
	db.AutoMigrate(&model.DailyAttendance{})
	db.AutoMigrate(&model.Shift{})
	db.AutoMigrate(&model.Schedule{})
	db.AutoMigrate(&model.LeaveRequest{})

	DB = db
}
