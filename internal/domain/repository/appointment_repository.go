package repository

import (
	"time"

	"maternal-care-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	CreateBatch(db *gorm.DB, appointments []entity.Appointment) error
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id int) (int64, error)
	FindByID(db *gorm.DB, id int) (*entity.Appointment, error)
	FindByMotherID(db *gorm.DB, motherID uuid.UUID) ([]entity.Appointment, error)
	FindByMidwifeID(db *gorm.DB, midwifeID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	// DeleteScheduledByMother removes the mother's Scheduled appointments of the given visit types.
	DeleteScheduledByMother(db *gorm.DB, motherID uuid.UUID, visitTypes []entity.VisitType) (int64, error)
	CountByStatusBetween(db *gorm.DB, midwifeID uuid.UUID, status entity.AppointmentStatus, from, to time.Time) (int64, error)
}
