package usecase

import (
	"context"
	"errors"
	"testing"

	"maternal-care-backend/internal/delivery/dto"
	"maternal-care-backend/internal/domain/entity"
	"maternal-care-backend/internal/repository"

	"gorm.io/gorm"
)

// Only paths that fail before touching Redis are exercised here.
func newTestAuthUsecase(db *gorm.DB) AuthUsecase {
	log := newTestLogger()
	return NewAuthUsecase(
		db,
		log,
		repository.NewMidwifeRepository(),
		repository.NewMotherRepository(),
		repository.NewMOHOfficerRepository(),
		newTestAuditService(log),
		nil,
		nil,
	)
}

func TestLoginRejections(t *testing.T) {
	db := newTestDB(t)
	uc := newTestAuthUsecase(db)

	hashed, err := hashPassword("correct-horse")
	if err != nil {
		t.Fatalf("hashPassword() error = %v", err)
	}

	active := &entity.Midwife{Username: "900000001V", Password: hashed, FullName: "Active", NIC: "900000001V", PhoneNumber: "0711"}
	suspended := &entity.Midwife{Username: "900000002V", Password: hashed, FullName: "Suspended", NIC: "900000002V", PhoneNumber: "0712", IsActive: boolPtr(false)}
	for _, m := range []*entity.Midwife{active, suspended} {
		if err := db.Create(m).Error; err != nil {
			t.Fatalf("seed midwife: %v", err)
		}
	}

	tests := []struct {
		name     string
		role     string
		username string
		password string
		want     error
	}{
		{"unknown user", entity.RoleMidwife, "nobody", "correct-horse", ErrInvalidCredentials},
		{"wrong password", entity.RoleMidwife, "900000001V", "wrong", ErrInvalidCredentials},
		{"suspended", entity.RoleMidwife, "900000002V", "correct-horse", ErrAccountSuspended},
		{"wrong role table", entity.RoleMother, "900000001V", "correct-horse", ErrInvalidCredentials},
		{"unknown role", "admin", "900000001V", "correct-horse", ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Login(context.Background(), tt.role, &dto.LoginRequest{Username: tt.username, Password: tt.password})
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
		})
	}
}
