package repository

import (
	"clinic-hr-backend/internal/model"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(employee *model.Employee) error
	Update(employee *model.Employee) error
	Delete(id uint) error
	FindByID(id uint) (*model.Employee, error)
	FindByEmail(email string) (*model.Employee, error)
	FindByDeviceID(deviceID string) (*model.Employee, error)
	GetAll() ([]model.Employee, error)
	GetAllActive() ([]model.Employee, error)
	GetAllDeviceIDs() ([]string, error)
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db}
}

func (r *employeeRepository) Create(employee *model.Employee) error {
	return r.db.Create(employee).Error
}

func (r *employeeRepository) Update(employee *model.Employee) error {
	return r.db.Save(employee).Error
}

func (r *employeeRepository) Delete(id uint) error {
	return r.db.Delete(&model.Employee{}, id).Error
}

func (r *employeeRepository) FindByID(id uint) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.First(&employee, id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) FindByEmail(email string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.Where("email = ?", email).First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) FindByDeviceID(deviceID string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.Where("device_id = ?", deviceID).First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) GetAll() ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.Order("name asc").Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) GetAllActive() ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.Where("is_active = ?", true).Order("name asc").Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) GetAllDeviceIDs() ([]string, error) {
	var ids []string
	err := r.db.Model(&model.Employee{}).Pluck("device_id", &ids).Error
	return ids, err
}
