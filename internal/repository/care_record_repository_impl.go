package repository

import (
	"maternal-care-backend/internal/domain/entity"
	domainRepo "maternal-care-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type deliveryRecordRepository struct{}

func NewDeliveryRecordRepository() domainRepo.DeliveryRecordRepository {
	return &deliveryRecordRepository{}
}

func (r *deliveryRecordRepository) Create(db *gorm.DB, record *entity.DeliveryRecord) error {
	return db.Create(record).Error
}

func (r *deliveryRecordRepository) FindByMotherID(db *gorm.DB, motherID uuid.UUID) ([]entity.DeliveryRecord, error) {
	var records []entity.DeliveryRecord
	err := db.Where("mother_id = ?", motherID).Order("created_at DESC, id DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

type antenatalPlanRepository struct{}

func NewAntenatalPlanRepository() domainRepo.AntenatalPlanRepository {
	return &antenatalPlanRepository{}
}

func (r *antenatalPlanRepository) Create(db *gorm.DB, plan *entity.AntenatalPlan) error {
	return db.Create(plan).Error
}

func (r *antenatalPlanRepository) FindByMotherID(db *gorm.DB, motherID uuid.UUID) ([]entity.AntenatalPlan, error) {
	var plans []entity.AntenatalPlan
	err := db.Where("mother_id = ?", motherID).Order("created_at DESC, id DESC").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}
