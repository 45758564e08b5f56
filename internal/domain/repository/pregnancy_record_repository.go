package repository

import (
	"maternal-care-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PregnancyRecordRepository interface {
	Create(db *gorm.DB, record *entity.PregnancyRecord) error
	Update(db *gorm.DB, record *entity.PregnancyRecord) error
	FindActiveByMotherID(db *gorm.DB, motherID uuid.UUID) (*entity.PregnancyRecord, error)
	FindActiveByMotherIDs(db *gorm.DB, motherIDs []uuid.UUID) (map[uuid.UUID]*entity.PregnancyRecord, error)
	FindByMotherID(db *gorm.DB, motherID uuid.UUID) ([]entity.PregnancyRecord, error)
	DeactivateByMotherID(db *gorm.DB, motherID uuid.UUID) error
}

type PastPregnancyRepository interface {
	FindByMotherID(db *gorm.DB, motherID uuid.UUID) ([]entity.PastPregnancy, error)
	// ReplaceByMotherID deletes every history row of the mother and inserts rows.
	ReplaceByMotherID(db *gorm.DB, motherID uuid.UUID, rows []entity.PastPregnancy) error
}
