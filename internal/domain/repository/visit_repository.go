package repository

import (
	"maternal-care-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ANCVisitRepository interface {
	Create(db *gorm.DB, visit *entity.ANCVisit) error
	FindByAppointmentID(db *gorm.DB, appointmentID int) (*entity.ANCVisit, error)
	FindByMotherID(db *gorm.DB, motherID uuid.UUID) ([]entity.ANCVisit, error)
}

type PNCVisitRepository interface {
	Create(db *gorm.DB, visit *entity.PNCVisit) error
	FindByAppointmentID(db *gorm.DB, appointmentID int) (*entity.PNCVisit, error)
	FindByMotherID(db *gorm.DB, motherID uuid.UUID) ([]entity.PNCVisit, error)
}
