package model

import "gorm.io/gorm"

type LeaveRequest struct {
	gorm.Model
	EmployeeID uint   `json:"employee_id"`
	LeaveType  string `json:"leave_type"` // Sick, Annual, Maternity, etc.
	StartDate  string `json:"start_date"` // YYYY-MM-DD
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
	Status     string `json:"status" gorm:"default:PENDING"` // PENDING / APPROVED / REJECTED

	// Relasi untuk Preload data pemohon
	Employee Employee `gorm:"foreignKey:EmployeeID" json:"employee"`
}
