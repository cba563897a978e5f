package usecase

import (
	"clinic-hr-backend/internal/model"
)

const (
	overtimeMultiplier    = 1.5
	lateDeductionDivisor  = 60 // one base-rate hour docked per 60 late minutes
	defaultHourlyBaseRate = 25000
)

// PayrollEstimate is a rough monthly pay figure derived from aggregated
// attendance. It is an estimate for the HR screen, not a payslip: tax,
// allowances and night differential live in the payroll system proper.
type PayrollEstimate struct {
	EmployeeID      uint    `json:"employee_id"`
	DeviceID        string  `json:"device_id"`
	Name            string  `json:"name"`
	WorkedHours     float64 `json:"worked_hours"`
	OvertimeMinutes int     `json:"overtime_minutes"`
	LateMinutes     int     `json:"late_minutes"`
	DaysOnLeave     int     `json:"days_on_leave"`
	BasePay         int     `json:"base_pay"`
	OvertimePay     int     `json:"overtime_pay"`
	LateDeduction   int     `json:"late_deduction"`
	EstimatedTotal  int     `json:"estimated_total"`
}

// EstimatePayroll folds one month of attendance into a per-employee
// estimate. Records for device IDs without a matching employee are skipped;
// they belong to stub profiles HR has not claimed yet.
func EstimatePayroll(employees []model.Employee, records []model.DailyAttendance) []PayrollEstimate {
	byDevice := make(map[string][]model.DailyAttendance)
	for _, rec := range records {
		byDevice[rec.DeviceID] = append(byDevice[rec.DeviceID], rec)
	}

	estimates := make([]PayrollEstimate, 0, len(employees))
	for _, emp := range employees {
		est := PayrollEstimate{
			EmployeeID: emp.ID,
			DeviceID:   emp.DeviceID,
			Name:       emp.Name,
		}

		for _, rec := range byDevice[emp.DeviceID] {
			if rec.IsOnLeave {
				est.DaysOnLeave++
				continue
			}
			est.WorkedHours += rec.TotalWorkedHours
			est.OvertimeMinutes += rec.TotalOvertimeMinutes
			est.LateMinutes += rec.TotalLateMinutes
		}

		rate := emp.BaseRate
		if rate == 0 {
			rate = defaultHourlyBaseRate
		}

		// Overtime hours are paid at the multiplier on top of base, so the
		// base component only counts regular hours.
		overtimeHours := float64(est.OvertimeMinutes) / 60
		regularHours := est.WorkedHours - overtimeHours
		if regularHours < 0 {
			regularHours = 0
		}

		est.BasePay = roundHalfUp(regularHours * float64(rate))
		est.OvertimePay = roundHalfUp(overtimeHours * float64(rate) * overtimeMultiplier)
		est.LateDeduction = roundHalfUp(float64(est.LateMinutes) / lateDeductionDivisor * float64(rate))
		est.EstimatedTotal = est.BasePay + est.OvertimePay - est.LateDeduction
		if est.EstimatedTotal < 0 {
			est.EstimatedTotal = 0
		}

		estimates = append(estimates, est)
	}
	return estimates
}
