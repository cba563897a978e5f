package repository

import (
	"clinic-hr-backend/internal/model"

	"gorm.io/gorm"
)

type ShiftRepository interface {
	Create(shift *model.Shift) error
	Update(shift *model.Shift) error
	Delete(id uint) error
	GetAll() ([]model.Shift, error)
	GetByID(id uint) (*model.Shift, error)
}

type shiftRepository struct {
	db *gorm.DB
}

func NewShiftRepository(db *gorm.DB) ShiftRepository {
	return &shiftRepository{db}
}

func (r *shiftRepository) Create(shift *model.Shift) error {
	return r.db.Create(shift).Error
}

func (r *shiftRepository) Update(shift *model.Shift) error {
	return r.db.Save(shift).Error
}

func (r *shiftRepository) Delete(id uint) error {
	return r.db.Delete(&model.Shift{}, id).Error
}

func (r *shiftRepository) GetAll() ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepository) GetByID(id uint) (*model.Shift, error) {
	var shift model.Shift
	err := r.db.First(&shift, id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

type ScheduleRepository interface {
	Create(schedule *model.Schedule) error
	CreateMany(schedules []model.Schedule) error
	Update(schedule *model.Schedule) error
	Delete(id uint) error
	GetByEmployeeAndDate(employeeID uint, date string) (*model.Schedule, error)
	GetByEmployeeAndMonth(employeeID uint, monthPrefix string) ([]model.Schedule, error)
	GetByDate(date string) ([]model.Schedule, error)
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db}
}

func (r *scheduleRepository) Create(schedule *model.Schedule) error {
	return r.db.Create(schedule).Error
}

func (r *scheduleRepository) CreateMany(schedules []model.Schedule) error {
	return r.db.Create(&schedules).Error
}

func (r *scheduleRepository) Update(schedule *model.Schedule) error {
	return r.db.Save(schedule).Error
}

func (r *scheduleRepository) Delete(id uint) error {
	return r.db.Delete(&model.Schedule{}, id).Error
}

func (r *scheduleRepository) GetByEmployeeAndDate(employeeID uint, date string) (*model.Schedule, error) {
	var schedule model.Schedule
	err := r.db.Preload("Shift").
		Where("employee_id = ? AND date = ?", employeeID, date).First(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) GetByEmployeeAndMonth(employeeID uint, monthPrefix string) ([]model.Schedule, error) {
	var list []model.Schedule
	err := r.db.Preload("Shift").
		Where("employee_id = ? AND date LIKE ?", employeeID, monthPrefix+"%").
		Order("date asc").Find(&list).Error
	return list, err
}

func (r *scheduleRepository) GetByDate(date string) ([]model.Schedule, error) {
	var list []model.Schedule
	err := r.db.Preload("Shift").Where("date = ?", date).Find(&list).Error
	return list, err
}
