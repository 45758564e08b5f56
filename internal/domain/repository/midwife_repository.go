package repository

import (
	"maternal-care-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MidwifeRepository interface {
	Create(db *gorm.DB, midwife *entity.Midwife) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Midwife, error)
	FindByUsername(db *gorm.DB, username string) (*entity.Midwife, error)
	FindConflicting(db *gorm.DB, nic, email, phone string) (*entity.Midwife, error)
	FindAll(db *gorm.DB) ([]entity.Midwife, error)
	UpdateActive(db *gorm.DB, id uuid.UUID, active bool) (int64, error)
	UpdatePassword(db *gorm.DB, id uuid.UUID, hashed string) error
}
