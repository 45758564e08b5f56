package repository

import (
	"time"

	"maternal-care-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeaveRequestRepository interface {
	Create(db *gorm.DB, leave *entity.LeaveRequest) error
	Update(db *gorm.DB, leave *entity.LeaveRequest) error
	FindByID(db *gorm.DB, id int) (*entity.LeaveRequest, error)
	FindByMidwifeID(db *gorm.DB, midwifeID uuid.UUID) ([]entity.LeaveRequest, error)
	FindAll(db *gorm.DB, status entity.LeaveStatus) ([]entity.LeaveRequest, error)
	// FindOverlapping returns a non-rejected request whose range intersects [start, end].
	FindOverlapping(db *gorm.DB, midwifeID uuid.UUID, start, end time.Time) (*entity.LeaveRequest, error)
}
