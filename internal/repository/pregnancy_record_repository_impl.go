package repository

import (
	"errors"

	"maternal-care-backend/internal/domain/entity"
	domainRepo "maternal-care-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type pregnancyRecordRepository struct{}

func NewPregnancyRecordRepository() domainRepo.PregnancyRecordRepository {
	return &pregnancyRecordRepository{}
}

func (r *pregnancyRecordRepository) Create(db *gorm.DB, record *entity.PregnancyRecord) error {
	return db.Create(record).Error
}

func (r *pregnancyRecordRepository) Update(db *gorm.DB, record *entity.PregnancyRecord) error {
	return db.Save(record).Error
}

func (r *pregnancyRecordRepository) FindActiveByMotherID(db *gorm.DB, motherID uuid.UUID) (*entity.PregnancyRecord, error) {
	var record entity.PregnancyRecord
	err := db.Where("mother_id = ? AND is_active = ?", motherID, true).
		Order("created_at DESC, id DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *pregnancyRecordRepository) FindActiveByMotherIDs(db *gorm.DB, motherIDs []uuid.UUID) (map[uuid.UUID]*entity.PregnancyRecord, error) {
	result := make(map[uuid.UUID]*entity.PregnancyRecord, len(motherIDs))
	if len(motherIDs) == 0 {
		return result, nil
	}

	var records []entity.PregnancyRecord
	err := db.Where("mother_id IN ? AND is_active = ?", motherIDs, true).Find(&records).Error
	if err != nil {
		return nil, err
	}
	for i := range records {
		result[records[i].MotherID] = &records[i]
	}
	return result, nil
}

func (r *pregnancyRecordRepository) FindByMotherID(db *gorm.DB, motherID uuid.UUID) ([]entity.PregnancyRecord, error) {
	var records []entity.PregnancyRecord
	err := db.Where("mother_id = ?", motherID).Order("created_at DESC, id DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *pregnancyRecordRepository) DeactivateByMotherID(db *gorm.DB, motherID uuid.UUID) error {
	return db.Model(&entity.PregnancyRecord{}).
		Where("mother_id = ? AND is_active = ?", motherID, true).
		Update("is_active", false).Error
}

type pastPregnancyRepository struct{}

func NewPastPregnancyRepository() domainRepo.PastPregnancyRepository {
	return &pastPregnancyRepository{}
}

func (r *pastPregnancyRepository) FindByMotherID(db *gorm.DB, motherID uuid.UUID) ([]entity.PastPregnancy, error) {
	var rows []entity.PastPregnancy
	err := db.Where("mother_id = ?", motherID).Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *pastPregnancyRepository) ReplaceByMotherID(db *gorm.DB, motherID uuid.UUID, rows []entity.PastPregnancy) error {
	if err := db.Where("mother_id = ?", motherID).Delete(&entity.PastPregnancy{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		rows[i].MotherID = motherID
	}
	return db.Create(&rows).Error
}
