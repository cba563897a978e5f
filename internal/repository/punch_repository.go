package repository

import (
	"clinic-hr-backend/internal/model"

	"gorm.io/gorm"
)

type PunchRepository interface {
	CreateMany(punches []model.RawPunch) error
	GetAll() ([]model.RawPunch, error)
	CountByBatch(batchID string) (int64, error)
}

type punchRepository struct {
	db *gorm.DB
}

func NewPunchRepository(db *gorm.DB) PunchRepository {
	return &punchRepository{db}
}

func (r *punchRepository) CreateMany(punches []model.RawPunch) error {
	return r.db.Create(&punches).Error
}

func (r *punchRepository) GetAll() ([]model.RawPunch, error) {
	var punches []model.RawPunch
	err := r.db.Order("id asc").Find(&punches).Error
	return punches, err
}

func (r *punchRepository) CountByBatch(batchID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.RawPunch{}).Where("batch_id = ?", batchID).Count(&count).Error
	return count, err
}
