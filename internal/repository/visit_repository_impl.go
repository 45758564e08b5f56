package repository

import (
	"errors"

	"maternal-care-backend/internal/domain/entity"
	domainRepo "maternal-care-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ancVisitRepository struct{}

func NewANCVisitRepository() domainRepo.ANCVisitRepository {
	return &ancVisitRepository{}
}

func (r *ancVisitRepository) Create(db *gorm.DB, visit *entity.ANCVisit) error {
	return db.Create(visit).Error
}

func (r *ancVisitRepository) FindByAppointmentID(db *gorm.DB, appointmentID int) (*entity.ANCVisit, error) {
	var visit entity.ANCVisit
	err := db.Where("appointment_id = ?", appointmentID).First(&visit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &visit, nil
}

func (r *ancVisitRepository) FindByMotherID(db *gorm.DB, motherID uuid.UUID) ([]entity.ANCVisit, error) {
	var visits []entity.ANCVisit
	err := db.Where("mother_id = ?", motherID).Order("visit_date ASC").Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

type pncVisitRepository struct{}

func NewPNCVisitRepository() domainRepo.PNCVisitRepository {
	return &pncVisitRepository{}
}

func (r *pncVisitRepository) Create(db *gorm.DB, visit *entity.PNCVisit) error {
	return db.Create(visit).Error
}

func (r *pncVisitRepository) FindByAppointmentID(db *gorm.DB, appointmentID int) (*entity.PNCVisit, error) {
	var visit entity.PNCVisit
	err := db.Where("appointment_id = ?", appointmentID).First(&visit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &visit, nil
}

func (r *pncVisitRepository) FindByMotherID(db *gorm.DB, motherID uuid.UUID) ([]entity.PNCVisit, error) {
	var visits []entity.PNCVisit
	err := db.Where("mother_id = ?", motherID).Order("visit_date ASC").Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}
