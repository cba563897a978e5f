package repository

import (
	"clinic-hr-backend/internal/model"

	"gorm.io/gorm"
)

type DashboardRepository interface {
	GetDashboardStats(date string, monthPrefix string) (map[string]interface{}, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db}
}

func (r *dashboardRepository) GetDashboardStats(date string, monthPrefix string) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	// 1. Active headcount
	var totalEmployees int64
	r.db.Model(&model.Employee{}).Where("is_active = ?", true).Count(&totalEmployees)
	stats["total_employees"] = totalEmployees

	// 2. Today's attendance split
	var present, late, onLeave int64
	r.db.Model(&model.DailyAttendance{}).
		Where("date = ? AND is_on_leave = ? AND total_late_minutes = 0", date, false).Count(&present)
	r.db.Model(&model.DailyAttendance{}).
		Where("date = ? AND is_on_leave = ? AND total_late_minutes > 0", date, false).Count(&late)
	r.db.Model(&model.DailyAttendance{}).
		Where("date = ? AND is_on_leave = ?", date, true).Count(&onLeave)

	absent := totalEmployees - present - late - onLeave
	if absent < 0 {
		absent = 0 // aggregated devices without a profile can exceed headcount
	}
	stats["today"] = map[string]int64{
		"present":  present,
		"late":     late,
		"on_leave": onLeave,
		"absent":   absent,
	}

	// 3. Monthly totals for the charts
	var monthly struct {
		WorkedHours     float64
		LateMinutes     int64
		OvertimeMinutes int64
	}
	r.db.Model(&model.DailyAttendance{}).
		Where("date LIKE ?", monthPrefix+"%").
		Select("COALESCE(SUM(total_worked_hours),0) as worked_hours, COALESCE(SUM(total_late_minutes),0) as late_minutes, COALESCE(SUM(total_overtime_minutes),0) as overtime_minutes").
		Scan(&monthly)
	stats["this_month"] = map[string]interface{}{
		"worked_hours":     monthly.WorkedHours,
		"late_minutes":     monthly.LateMinutes,
		"overtime_minutes": monthly.OvertimeMinutes,
	}

	return stats, nil
}
