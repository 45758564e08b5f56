package repository

import (
	"maternal-care-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MotherRepository interface {
	Create(db *gorm.DB, mother *entity.Mother) error
	Update(db *gorm.DB, mother *entity.Mother) error
	UpdatePassword(db *gorm.DB, id uuid.UUID, hashed string) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Mother, error)
	// FindByIDForUpdate locks the mother row until the transaction ends.
	FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Mother, error)
	FindByNIC(db *gorm.DB, nic string) (*entity.Mother, error)
	FindByMidwifeID(db *gorm.DB, midwifeID uuid.UUID, filter *entity.MotherFilter) ([]entity.Mother, int64, error)
	FindActiveCases(db *gorm.DB, midwifeID uuid.UUID) ([]entity.Mother, error)
	FindActiveCasesByRiskLevel(db *gorm.DB, midwifeID uuid.UUID, level entity.RiskLevel) ([]entity.Mother, error)
	FindActiveCasesByRiskFlag(db *gorm.DB, midwifeID uuid.UUID, column string) ([]entity.Mother, error)
	CountByMidwifeID(db *gorm.DB, midwifeID uuid.UUID) (int64, error)
}
