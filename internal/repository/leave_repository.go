package repository

import (
	"clinic-hr-backend/internal/model"

	"gorm.io/gorm"
)

type LeaveRepository interface {
	Create(req *model.LeaveRequest) error
	Update(req *model.LeaveRequest) error
	GetByID(id uint) (*model.LeaveRequest, error)
	GetByEmployee(employeeID uint) ([]model.LeaveRequest, error)
	GetPending() ([]model.LeaveRequest, error)
}

type leaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) LeaveRepository {
	return &leaveRepository{db}
}

func (r *leaveRepository) Create(req *model.LeaveRequest) error {
	return r.db.Create(req).Error
}

func (r *leaveRepository) Update(req *model.LeaveRequest) error {
	return r.db.Save(req).Error
}

func (r *leaveRepository) GetByID(id uint) (*model.LeaveRequest, error) {
	var req model.LeaveRequest
	err := r.db.Preload("Employee").First(&req, id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *leaveRepository) GetByEmployee(employeeID uint) ([]model.LeaveRequest, error) {
	var list []model.LeaveRequest
	err := r.db.Where("employee_id = ?", employeeID).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *leaveRepository) GetPending() ([]model.LeaveRequest, error) {
	var list []model.LeaveRequest
	err := r.db.Preload("Employee").Where("status = ?", "PENDING").Order("created_at asc").Find(&list).Error
	return list, err
}
