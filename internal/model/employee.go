package model

import "gorm.io/gorm"

type Employee struct {
	gorm.Model
	DeviceID   string `json:"device_id" gorm:"column:device_id;unique;not null"` // ID on the fingerprint machine
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"-"`
	Department string `json:"department" gorm:"default:Unassigned"`
	Position   string `json:"position"`
	Avatar     string `json:"avatar"`
	Role       string `json:"role" gorm:"default:Staff"` // Admin / Staff
	BaseRate   int    `json:"base_rate"`                 // hourly rate, smallest currency unit
	IsActive   bool   `json:"is_active" gorm:"default:true"`

	// Relasi
	Schedules     []Schedule     `json:"schedules"`
	LeaveRequests []LeaveRequest `json:"leave_requests"`
}

type Department struct {
	gorm.Model
	Name string `json:"name" gorm:"unique;not null"`
}
