package repository

import (
	"clinic-hr-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceRepository interface {
	SaveAggregateRun(records []model.DailyAttendance, stubs []model.Employee) error
	MergeLeave(deviceID string, date string, leaveType string) error
	ClearLeave(deviceID string, date string) error
	GetHistory(deviceID string) ([]model.DailyAttendance, error)
	GetByDeviceAndMonth(deviceID string, monthPrefix string) ([]model.DailyAttendance, error)
	GetByMonth(monthPrefix string) ([]model.DailyAttendance, error)
	GetByDate(date string) ([]model.DailyAttendance, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

// aggregatorColumns are the only fields an aggregation run may overwrite on
// an existing row. Leave flags belong to the leave module and must survive
// a re-run that lands on the same record_key.
var aggregatorColumns = []string{
	"device_id", "date",
	"morning_in", "morning_out", "afternoon_in", "afternoon_out",
	"total_worked_hours", "total_late_minutes", "total_overtime_minutes",
	"updated_at",
}

// SaveAggregateRun commits one aggregation pass in a single transaction:
// either every record and stub lands, or none do.
func (r *attendanceRepository) SaveAggregateRun(records []model.DailyAttendance, stubs []model.Employee) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(records) > 0 {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "record_key"}},
				DoUpdates: clause.AssignmentColumns(aggregatorColumns),
			}).Create(&records).Error
			if err != nil {
				return err
			}
		}

		if len(stubs) > 0 {
			// Profiles are insert-only; an existing device_id wins.
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "device_id"}},
				DoNothing: true,
			}).Create(&stubs).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// MergeLeave flags one day as leave without touching the punch-derived
// fields. Creates the row if the aggregator has not produced one yet.
func (r *attendanceRepository) MergeLeave(deviceID string, date string, leaveType string) error {
	rec := model.DailyAttendance{
		RecordKey: deviceID + "-" + date,
		DeviceID:  deviceID,
		Date:      date,
		IsOnLeave: true,
		LeaveType: leaveType,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_on_leave", "leave_type", "updated_at"}),
	}).Create(&rec).Error
}

func (r *attendanceRepository) ClearLeave(deviceID string, date string) error {
	return r.db.Model(&model.DailyAttendance{}).
		Where("record_key = ?", deviceID+"-"+date).
		Updates(map[string]interface{}{"is_on_leave": false, "leave_type": ""}).Error
}

func (r *attendanceRepository) GetHistory(deviceID string) ([]model.DailyAttendance, error) {
	var history []model.DailyAttendance
	err := r.db.Where("device_id = ?", deviceID).Order("date desc").Find(&history).Error
	return history, err
}

func (r *attendanceRepository) GetByDeviceAndMonth(deviceID string, monthPrefix string) ([]model.DailyAttendance, error) {
	var list []model.DailyAttendance
	err := r.db.Where("device_id = ? AND date LIKE ?", deviceID, monthPrefix+"%").
		Order("date asc").Find(&list).Error
	return list, err
}

func (r *attendanceRepository) GetByMonth(monthPrefix string) ([]model.DailyAttendance, error) {
	var list []model.DailyAttendance
	err := r.db.Where("date LIKE ?", monthPrefix+"%").Order("device_id asc, date asc").Find(&list).Error
	return list, err
}

func (r *attendanceRepository) GetByDate(date string) ([]model.DailyAttendance, error) {
	var list []model.DailyAttendance
	err := r.db.Where("date = ?", date).Find(&list).Error
	return list, err
}
