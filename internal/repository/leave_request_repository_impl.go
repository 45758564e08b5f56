package repository

import (
	"errors"
	"time"

	"maternal-care-backend/internal/domain/entity"
	domainRepo "maternal-care-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type leaveRequestRepository struct{}

func NewLeaveRequestRepository() domainRepo.LeaveRequestRepository {
	return &leaveRequestRepository{}
}

func (r *leaveRequestRepository) Create(db *gorm.DB, leave *entity.LeaveRequest) error {
	return db.Create(leave).Error
}

func (r *leaveRequestRepository) Update(db *gorm.DB, leave *entity.LeaveRequest) error {
	return db.Omit("Midwife").Save(leave).Error
}

func (r *leaveRequestRepository) FindByID(db *gorm.DB, id int) (*entity.LeaveRequest, error) {
	var leave entity.LeaveRequest
	err := db.Preload("Midwife").Where("id = ?", id).First(&leave).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &leave, nil
}

func (r *leaveRequestRepository) FindByMidwifeID(db *gorm.DB, midwifeID uuid.UUID) ([]entity.LeaveRequest, error) {
	var leaves []entity.LeaveRequest
	err := db.Where("midwife_id = ?", midwifeID).Order("start_date DESC").Find(&leaves).Error
	if err != nil {
		return nil, err
	}
	return leaves, nil
}

func (r *leaveRequestRepository) FindAll(db *gorm.DB, status entity.LeaveStatus) ([]entity.LeaveRequest, error) {
	var leaves []entity.LeaveRequest
	query := db.Preload("Midwife")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Find(&leaves).Error
	if err != nil {
		return nil, err
	}
	return leaves, nil
}

func (r *leaveRequestRepository) FindOverlapping(db *gorm.DB, midwifeID uuid.UUID, start, end time.Time) (*entity.LeaveRequest, error) {
	var leave entity.LeaveRequest
	err := db.Where("midwife_id = ? AND status <> ? AND start_date <= ? AND end_date >= ?",
		midwifeID, entity.LeaveStatusRejected, end, start).
		First(&leave).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &leave, nil
}
