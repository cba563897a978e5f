package database

import (
	"log"

	"clinic-hr-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	// 1. Seed departments
	departments := []model.Department{
		{Name: "General Medicine"},
		{Name: "Emergency"},
		{Name: "Laboratory"},
		{Name: "Radiology"},
		{Name: "Pharmacy"},
		{Name: "Administration"},
	}
	for _, d := range departments {
		db.FirstOrCreate(&d, model.Department{Name: d.Name})
	}

	// 2. Seed default shifts
	shifts := []model.Shift{
		{Name: "Morning", StartTime: "08:00", EndTime: "16:00"},
		{Name: "Evening", StartTime: "14:00", EndTime: "22:00"},
		{Name: "Night", StartTime: "22:00", EndTime: "06:00"},
	}
	for _, s := range shifts {
		db.FirstOrCreate(&s, model.Shift{Name: s.Name})
	}

	// 3. Seed first admin account
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash admin password:", err)
	}

	admin := model.Employee{
		DeviceID:   "0",
		Name:       "HR Administrator",
		Email:      "admin@clinic.local",
		Password:   string(hashedPassword),
		Department: "Administration",
		Position:   "HR Manager",
		Role:       "Admin",
		IsActive:   true,
	}
	db.FirstOrCreate(&admin, model.Employee{Email: admin.Email})

	log.Println("Seeding finished.")
}
