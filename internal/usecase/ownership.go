package usecase

import (
	"maternal-care-backend/internal/domain/entity"
	"maternal-care-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// loadOwnedMother returns the mother if she exists and belongs to midwifeID.
// With forUpdate the row stays locked until db's transaction ends.
func loadOwnedMother(db *gorm.DB, motherRepo repository.MotherRepository, motherID, midwifeID uuid.UUID, forUpdate bool) (*entity.Mother, error) {
	var (
		mother *entity.Mother
		err    error
	)
	if forUpdate {
		mother, err = motherRepo.FindByIDForUpdate(db, motherID)
	} else {
		mother, err = motherRepo.FindByID(db, motherID)
	}
	if err != nil {
		return nil, err
	}
	if mother == nil {
		return nil, ErrMotherNotFound
	}
	if !mother.IsOwnedBy(midwifeID) {
		return nil, ErrMotherNotOwned
	}
	return mother, nil
}
