package model

import "gorm.io/gorm"

type Shift struct {
	gorm.Model
	Name      string `json:"name" gorm:"unique;not null"`
	StartTime string `json:"start_time"` // HH:MM
	EndTime   string `json:"end_time"`
}

type Schedule struct {
	gorm.Model
	EmployeeID uint   `json:"employee_id"`
	ShiftID    uint   `json:"shift_id"`
	Date       string `json:"date"` // YYYY-MM-DD
	Task       string `json:"task"` // ward/room assignment, free text

	// Relasi
	Shift Shift `gorm:"foreignKey:ShiftID" json:"shift"`
}
