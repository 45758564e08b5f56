package repository

import (
	"errors"

	"maternal-care-backend/internal/domain/entity"
	domainRepo "maternal-care-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type mohOfficerRepository struct{}

func NewMOHOfficerRepository() domainRepo.MOHOfficerRepository {
	return &mohOfficerRepository{}
}

func (r *mohOfficerRepository) Create(db *gorm.DB, officer *entity.MOHOfficer) error {
	return db.Create(officer).Error
}

func (r *mohOfficerRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.MOHOfficer, error) {
	var officer entity.MOHOfficer
	err := db.Where("id = ?", id).First(&officer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &officer, nil
}

func (r *mohOfficerRepository) FindByUsername(db *gorm.DB, username string) (*entity.MOHOfficer, error) {
	var officer entity.MOHOfficer
	err := db.Where("username = ?", username).First(&officer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &officer, nil
}

func (r *mohOfficerRepository) UpdatePassword(db *gorm.DB, id uuid.UUID, hashed string) error {
	return db.Model(&entity.MOHOfficer{}).Where("id = ?", id).Update("password", hashed).Error
}
