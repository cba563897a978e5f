package usecase_test

import (
	"testing"

	"clinic-hr-backend/internal/model"
	"clinic-hr-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func day(deviceID, date string, worked float64, late, overtime int) model.DailyAttendance {
	return model.DailyAttendance{
		RecordKey:            deviceID + "-" + date,
		DeviceID:             deviceID,
		Date:                 date,
		TotalWorkedHours:     worked,
		TotalLateMinutes:     late,
		TotalOvertimeMinutes: overtime,
	}
}

func TestEstimatePayroll(t *testing.T) {
	employees := []model.Employee{
		{DeviceID: "101", Name: "Ana Wijaya", BaseRate: 30000},
	}
	employees[0].ID = 7

	records := []model.DailyAttendance{
		day("101", "2026-03-02", 8.0, 0, 0),
		day("101", "2026-03-03", 9.0, 30, 60),
	}

	estimates := usecase.EstimatePayroll(employees, records)

	assert.Len(t, estimates, 1)
	est := estimates[0]
	assert.Equal(t, uint(7), est.EmployeeID)
	assert.InDelta(t, 17.0, est.WorkedHours, 0.001)
	assert.Equal(t, 60, est.OvertimeMinutes)
	assert.Equal(t, 30, est.LateMinutes)

	// 16 regular hours at 30000, 1 overtime hour at 1.5x, half an hour docked
	assert.Equal(t, 480000, est.BasePay)
	assert.Equal(t, 45000, est.OvertimePay)
	assert.Equal(t, 15000, est.LateDeduction)
	assert.Equal(t, 510000, est.EstimatedTotal)
}

func TestEstimatePayrollLeaveDaysExcluded(t *testing.T) {
	employees := []model.Employee{{DeviceID: "101", Name: "Ana Wijaya", BaseRate: 30000}}

	onLeave := day("101", "2026-03-04", 0, 0, 0)
	onLeave.IsOnLeave = true
	onLeave.LeaveType = "Sick"

	records := []model.DailyAttendance{
		day("101", "2026-03-02", 8.0, 0, 0),
		onLeave,
	}

	estimates := usecase.EstimatePayroll(employees, records)

	assert.Equal(t, 1, estimates[0].DaysOnLeave)
	assert.InDelta(t, 8.0, estimates[0].WorkedHours, 0.001)
}

func TestEstimatePayrollDefaultRate(t *testing.T) {
	employees := []model.Employee{{DeviceID: "101", Name: "Ana Wijaya"}} // no rate set

	records := []model.DailyAttendance{day("101", "2026-03-02", 8.0, 0, 0)}

	estimates := usecase.EstimatePayroll(employees, records)

	assert.Equal(t, 8*25000, estimates[0].BasePay)
}

func TestEstimatePayrollSkipsUnclaimedDevices(t *testing.T) {
	employees := []model.Employee{{DeviceID: "101", Name: "Ana Wijaya", BaseRate: 30000}}

	records := []model.DailyAttendance{
		day("999", "2026-03-02", 8.0, 0, 0), // stub profile nobody claimed
	}

	estimates := usecase.EstimatePayroll(employees, records)

	assert.Len(t, estimates, 1)
	assert.Equal(t, float64(0), estimates[0].WorkedHours)
	assert.Equal(t, 0, estimates[0].EstimatedTotal)
}
