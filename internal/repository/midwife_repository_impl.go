package repository

import (
	"errors"

	"maternal-care-backend/internal/domain/entity"
	domainRepo "maternal-care-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type midwifeRepository struct{}

func NewMidwifeRepository() domainRepo.MidwifeRepository {
	return &midwifeRepository{}
}

func (r *midwifeRepository) Create(db *gorm.DB, midwife *entity.Midwife) error {
	return db.Create(midwife).Error
}

func (r *midwifeRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Midwife, error) {
	var midwife entity.Midwife
	err := db.Where("id = ?", id).First(&midwife).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &midwife, nil
}

func (r *midwifeRepository) FindByUsername(db *gorm.DB, username string) (*entity.Midwife, error) {
	var midwife entity.Midwife
	err := db.Where("username = ?", username).First(&midwife).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &midwife, nil
}

// FindConflicting returns any midwife already holding the NIC (also used as
// username), the email or the phone number.
func (r *midwifeRepository) FindConflicting(db *gorm.DB, nic, email, phone string) (*entity.Midwife, error) {
	var midwife entity.Midwife
	query := db.Where("nic = ? OR username = ?", nic, nic)
	if email != "" {
		query = query.Or("email = ?", email)
	}
	if phone != "" {
		query = query.Or("phone_number = ?", phone)
	}
	err := query.First(&midwife).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &midwife, nil
}

func (r *midwifeRepository) FindAll(db *gorm.DB) ([]entity.Midwife, error) {
	var midwives []entity.Midwife
	err := db.Order("full_name ASC").Find(&midwives).Error
	if err != nil {
		return nil, err
	}
	return midwives, nil
}

func (r *midwifeRepository) UpdateActive(db *gorm.DB, id uuid.UUID, active bool) (int64, error) {
	result := db.Model(&entity.Midwife{}).Where("id = ?", id).Update("is_active", active)
	return result.RowsAffected, result.Error
}

func (r *midwifeRepository) UpdatePassword(db *gorm.DB, id uuid.UUID, hashed string) error {
	return db.Model(&entity.Midwife{}).Where("id = ?", id).Update("password", hashed).Error
}
