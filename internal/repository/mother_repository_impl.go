package repository

import (
	"errors"
	"strings"

	"maternal-care-backend/internal/domain/entity"
	domainRepo "maternal-care-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type motherRepository struct{}

func NewMotherRepository() domainRepo.MotherRepository {
	return &motherRepository{}
}

func (r *motherRepository) Create(db *gorm.DB, mother *entity.Mother) error {
	return db.Create(mother).Error
}

func (r *motherRepository) Update(db *gorm.DB, mother *entity.Mother) error {
	return db.Save(mother).Error
}

func (r *motherRepository) UpdatePassword(db *gorm.DB, id uuid.UUID, hashed string) error {
	return db.Model(&entity.Mother{}).Where("id = ?", id).Update("password", hashed).Error
}

func (r *motherRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Mother, error) {
	var mother entity.Mother
	err := db.Where("id = ?", id).First(&mother).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mother, nil
}

func (r *motherRepository) FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Mother, error) {
	var mother entity.Mother
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&mother).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mother, nil
}

func (r *motherRepository) FindByNIC(db *gorm.DB, nic string) (*entity.Mother, error) {
	var mother entity.Mother
	err := db.Where("nic = ?", nic).First(&mother).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mother, nil
}

// FindByMidwifeID lists the midwife's caseload. Search matches name or NIC
// case-insensitively; the total ignores paging.
func (r *motherRepository) FindByMidwifeID(db *gorm.DB, midwifeID uuid.UUID, filter *entity.MotherFilter) ([]entity.Mother, int64, error) {
	var mothers []entity.Mother
	var total int64

	query := db.Model(&entity.Mother{}).Where("midwife_id = ?", midwifeID)
	if filter != nil {
		if filter.Search != "" {
			pattern := "%" + strings.ToLower(filter.Search) + "%"
			query = query.Where("LOWER(full_name) LIKE ? OR LOWER(nic) LIKE ?", pattern, pattern)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter != nil && filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}
	if err := query.Order("created_at DESC").Find(&mothers).Error; err != nil {
		return nil, 0, err
	}
	return mothers, total, nil
}

func (r *motherRepository) FindActiveCases(db *gorm.DB, midwifeID uuid.UUID) ([]entity.Mother, error) {
	var mothers []entity.Mother
	err := db.Where("midwife_id = ? AND status IN ?", midwifeID, entity.ActiveCaseStatuses).
		Order("full_name ASC").
		Find(&mothers).Error
	if err != nil {
		return nil, err
	}
	return mothers, nil
}

func (r *motherRepository) FindActiveCasesByRiskLevel(db *gorm.DB, midwifeID uuid.UUID, level entity.RiskLevel) ([]entity.Mother, error) {
	var mothers []entity.Mother
	err := db.Where("midwife_id = ? AND status IN ? AND risk_level = ?", midwifeID, entity.ActiveCaseStatuses, level).
		Order("full_name ASC").
		Find(&mothers).Error
	if err != nil {
		return nil, err
	}
	return mothers, nil
}

// FindActiveCasesByRiskFlag returns active cases whose active pregnancy record
// has the given risk column set. column must come from the fixed risk table.
func (r *motherRepository) FindActiveCasesByRiskFlag(db *gorm.DB, midwifeID uuid.UUID, column string) ([]entity.Mother, error) {
	var mothers []entity.Mother
	err := db.
		Joins("JOIN pregnancy_records ON pregnancy_records.mother_id = mothers.id AND pregnancy_records.is_active = ?", true).
		Where("mothers.midwife_id = ? AND mothers.status IN ?", midwifeID, entity.ActiveCaseStatuses).
		Where(clause.Eq{Column: clause.Column{Table: "pregnancy_records", Name: column}, Value: true}).
		Order("mothers.full_name ASC").
		Find(&mothers).Error
	if err != nil {
		return nil, err
	}
	return mothers, nil
}

func (r *motherRepository) CountByMidwifeID(db *gorm.DB, midwifeID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Mother{}).Where("midwife_id = ?", midwifeID).Count(&count).Error
	return count, err
}
