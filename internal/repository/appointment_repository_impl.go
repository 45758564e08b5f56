package repository

import (
	"errors"
	"time"

	"maternal-care-backend/internal/domain/entity"
	domainRepo "maternal-care-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) CreateBatch(db *gorm.DB, appointments []entity.Appointment) error {
	if len(appointments) == 0 {
		return nil
	}
	return db.Create(&appointments).Error
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Mother").Save(appointment).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Mother").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByMotherID(db *gorm.DB, motherID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("mother_id = ?", motherID).Order("date_time ASC, id ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByMidwifeID(db *gorm.DB, midwifeID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := db.Preload("Mother").Where("midwife_id = ?", midwifeID)
	if filter != nil {
		if filter.From != nil {
			query = query.Where("date_time >= ?", *filter.From)
		}
		if filter.To != nil {
			query = query.Where("date_time < ?", *filter.To)
		}
	}
	err := query.Order("date_time ASC, id ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) DeleteScheduledByMother(db *gorm.DB, motherID uuid.UUID, visitTypes []entity.VisitType) (int64, error) {
	result := db.Where("mother_id = ? AND status = ? AND visit_type IN ?", motherID, entity.AppointmentStatusScheduled, visitTypes).
		Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) CountByStatusBetween(db *gorm.DB, midwifeID uuid.UUID, status entity.AppointmentStatus, from, to time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("midwife_id = ? AND status = ? AND date_time >= ? AND date_time < ?", midwifeID, status, from, to).
		Count(&count).Error
	return count, err
}
