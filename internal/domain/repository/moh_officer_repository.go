package repository

import (
	"maternal-care-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MOHOfficerRepository interface {
	Create(db *gorm.DB, officer *entity.MOHOfficer) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.MOHOfficer, error)
	FindByUsername(db *gorm.DB, username string) (*entity.MOHOfficer, error)
	UpdatePassword(db *gorm.DB, id uuid.UUID, hashed string) error
}
