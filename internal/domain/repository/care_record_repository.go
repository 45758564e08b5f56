package repository

import (
	"maternal-care-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeliveryRecordRepository interface {
	Create(db *gorm.DB, record *entity.DeliveryRecord) error
	FindByMotherID(db *gorm.DB, motherID uuid.UUID) ([]entity.DeliveryRecord, error)
}

type AntenatalPlanRepository interface {
	Create(db *gorm.DB, plan *entity.AntenatalPlan) error
	FindByMotherID(db *gorm.DB, motherID uuid.UUID) ([]entity.AntenatalPlan, error)
}
