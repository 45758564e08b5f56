package usecase

import (
	"errors"
	"testing"

	"maternal-care-backend/internal/delivery/dto"
	"maternal-care-backend/internal/domain/entity"
	"maternal-care-backend/internal/repository"

	"gorm.io/gorm"
)

func newTestMotherUsecase(db *gorm.DB, cache *fakeRiskStatsCache) *motherUsecase {
	log := newTestLogger()
	uc := NewMotherUsecase(
		db,
		log,
		repository.NewMotherRepository(),
		newTestAuditService(log),
		cache,
	).(*motherUsecase)
	uc.now = fixedClock("2024-03-01")
	return uc
}

func TestCreateMother(t *testing.T) {
	db := newTestDB(t)
	uc := newTestMotherUsecase(db, newFakeRiskStatsCache())
	midwife := seedMidwife(t, db)
	ctx := midwifeCtx(midwife.ID)

	created, err := uc.CreateMother(ctx, &dto.CreateMotherRequest{
		FullName: "Kumari Perera",
		NIC:      " 199012345678 ",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("CreateMother() error = %v", err)
	}
	if created.Status != "Eligible" || created.RiskLevel != "Low" {
		t.Errorf("status/risk = %s/%s, want Eligible/Low", created.Status, created.RiskLevel)
	}
	if created.NIC != "199012345678" {
		t.Errorf("nic = %q, want trimmed", created.NIC)
	}
	if created.MidwifeID != midwife.ID {
		t.Errorf("midwife = %s, want %s", created.MidwifeID, midwife.ID)
	}

	stored := findMother(t, db, created.ID)
	if stored.Password == "secret123" {
		t.Error("password stored in plain text")
	}

	_, err = uc.CreateMother(ctx, &dto.CreateMotherRequest{
		FullName: "Someone Else",
		NIC:      "199012345678",
		Password: "secret123",
	})
	if !errors.Is(err, ErrNICAlreadyExists) {
		t.Fatalf("duplicate NIC error = %v, want ErrNICAlreadyExists", err)
	}

	// Mothers without a NIC never collide.
	for i := 0; i < 2; i++ {
		if _, err := uc.CreateMother(ctx, &dto.CreateMotherRequest{FullName: "No NIC", Password: "secret123"}); err != nil {
			t.Fatalf("CreateMother() without NIC error = %v", err)
		}
	}
}

func TestGetMyMothersSearch(t *testing.T) {
	db := newTestDB(t)
	uc := newTestMotherUsecase(db, newFakeRiskStatsCache())
	midwife := seedMidwife(t, db)
	other := seedMidwife(t, db)
	ctx := midwifeCtx(midwife.ID)

	for _, req := range []dto.CreateMotherRequest{
		{FullName: "Kumari Perera", NIC: "901234567V", Password: "secret123"},
		{FullName: "Nadeesha Silva", NIC: "917654321V", Password: "secret123"},
		{FullName: "Kumudu Fernando", Password: "secret123"},
	} {
		req := req
		if _, err := uc.CreateMother(ctx, &req); err != nil {
			t.Fatalf("CreateMother() error = %v", err)
		}
	}
	seedMother(t, db, other.ID, "Kumari Other")

	tests := []struct {
		name  string
		query dto.MotherQuery
		want  int64
	}{
		{"all", dto.MotherQuery{}, 3},
		{"name prefix any case", dto.MotherQuery{Search: "kUm"}, 2},
		{"nic", dto.MotherQuery{Search: "9176"}, 1},
		{"status", dto.MotherQuery{Status: "Pregnant"}, 0},
		{"page size", dto.MotherQuery{Limit: 2}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := uc.GetMyMothers(ctx, &tt.query)
			if err != nil {
				t.Fatalf("GetMyMothers() error = %v", err)
			}
			if result.Total != tt.want {
				t.Errorf("total = %d, want %d", result.Total, tt.want)
			}
			if tt.query.Limit > 0 && len(result.Mothers) > tt.query.Limit {
				t.Errorf("page returned %d mothers, limit %d", len(result.Mothers), tt.query.Limit)
			}
		})
	}
}

func TestGetMotherOwnership(t *testing.T) {
	db := newTestDB(t)
	uc := newTestMotherUsecase(db, newFakeRiskStatsCache())
	midwife := seedMidwife(t, db)
	other := seedMidwife(t, db)
	mother := seedMother(t, db, midwife.ID, "Owned")

	if _, err := uc.GetMother(midwifeCtx(midwife.ID), mother.ID); err != nil {
		t.Fatalf("GetMother() owner error = %v", err)
	}
	if _, err := uc.GetMother(midwifeCtx(other.ID), mother.ID); !errors.Is(err, ErrMotherNotOwned) {
		t.Fatalf("GetMother() other midwife error = %v, want ErrMotherNotOwned", err)
	}
}

func TestUpdateMother(t *testing.T) {
	db := newTestDB(t)
	cache := newFakeRiskStatsCache()
	uc := newTestMotherUsecase(db, cache)
	midwife := seedMidwife(t, db)
	ctx := midwifeCtx(midwife.ID)

	mother := seedMother(t, db, midwife.ID, "Before")
	taken := seedMother(t, db, midwife.ID, "Taken")
	nic := "881234567V"
	taken.NIC = &nic
	if err := db.Save(taken).Error; err != nil {
		t.Fatalf("set nic: %v", err)
	}

	updated, err := uc.UpdateMother(ctx, mother.ID, &dto.UpdateMotherRequest{
		FullName:           strPtr("After"),
		Status:             strPtr("Pregnant"),
		PregnancyStartDate: strPtr("2024-01-01"),
	})
	if err != nil {
		t.Fatalf("UpdateMother() error = %v", err)
	}
	if updated.FullName != "After" || updated.Status != "Pregnant" {
		t.Errorf("updated = %+v", updated)
	}
	if updated.POA != "8 Weeks" {
		t.Errorf("poa = %q, want 8 Weeks", updated.POA)
	}
	if len(cache.invalidated) != 1 {
		t.Errorf("cache invalidations = %d, want 1", len(cache.invalidated))
	}

	if _, err := uc.UpdateMother(ctx, mother.ID, &dto.UpdateMotherRequest{NIC: strPtr(nic)}); !errors.Is(err, ErrNICAlreadyExists) {
		t.Errorf("NIC clash error = %v, want ErrNICAlreadyExists", err)
	}
	if _, err := uc.UpdateMother(ctx, mother.ID, &dto.UpdateMotherRequest{DeliveryDate: strPtr("2024-02-30")}); !errors.Is(err, ErrInvalidDateFormat) {
		t.Errorf("bad date error = %v, want ErrInvalidDateFormat", err)
	}

	stored := findMother(t, db, mother.ID)
	if stored.Status != entity.MotherStatusPregnant || stored.NIC != nil {
		t.Errorf("stored = %+v", stored)
	}
}
