package model

import "gorm.io/gorm"

type DailyAttendance struct {
	gorm.Model
	RecordKey string `json:"record_key" gorm:"unique;not null"` // deviceID-date
	DeviceID  string `json:"device_id" gorm:"index"`
	Date      string `json:"date"` // YYYY-MM-DD

	MorningIn    string `json:"morning_in"` // HH:MM, empty when absent
	MorningOut   string `json:"morning_out"`
	AfternoonIn  string `json:"afternoon_in"`
	AfternoonOut string `json:"afternoon_out"`

	TotalWorkedHours     float64 `json:"total_worked_hours"`
	TotalLateMinutes     int     `json:"total_late_minutes"`
	TotalOvertimeMinutes int     `json:"total_overtime_minutes"`

	// Owned by the leave module, never written by the aggregator merge.
	IsOnLeave bool   `json:"is_on_leave" gorm:"default:false"`
	LeaveType string `json:"leave_type"`
}
