package converter

import (
	"testing"
	"time"

	"maternal-care-backend/internal/delivery/dto"
	"maternal-care-backend/internal/domain/careplan"
	"maternal-care-backend/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func ptr[T any](v T) *T {
	return &v
}

func TestApplyPregnancyRecordRequestPartial(t *testing.T) {
	lmp := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	record := &entity.PregnancyRecord{
		HusbandName: "Sunil",
		LRMP:        &lmp,
		BloodGroup:  "O+",
		RiskFlags:   entity.RiskFlags{Diabetes: true},
	}

	req := &dto.PregnancyRecordRequest{
		BloodGroup:   ptr("A+"),
		RiskCardiac:  ptr(true),
		RiskDiabetes: ptr(false),
		WeightKG:     ptr(decimal.RequireFromString("58.5")),
	}
	if err := ApplyPregnancyRecordRequest(record, req); err != nil {
		t.Fatalf("ApplyPregnancyRecordRequest() error = %v", err)
	}

	if record.HusbandName != "Sunil" {
		t.Errorf("HusbandName = %q, absent field should be kept", record.HusbandName)
	}
	if record.LRMP == nil || !record.LRMP.Equal(lmp) {
		t.Errorf("LRMP = %v, absent date should be kept", record.LRMP)
	}
	if record.BloodGroup != "A+" {
		t.Errorf("BloodGroup = %q, want A+", record.BloodGroup)
	}
	if !record.Cardiac || record.Diabetes {
		t.Errorf("RiskFlags = %+v, want cardiac only", record.RiskFlags)
	}
	if !record.WeightKG.Valid || record.WeightKG.Decimal.String() != "58.5" {
		t.Errorf("WeightKG = %v, want 58.5", record.WeightKG)
	}
}

func TestApplyPregnancyRecordRequestBadDate(t *testing.T) {
	record := &entity.PregnancyRecord{}
	err := ApplyPregnancyRecordRequest(record, &dto.PregnancyRecordRequest{EDD: ptr("07/10/2024")})
	if err != careplan.ErrInvalidDate {
		t.Errorf("error = %v, want ErrInvalidDate", err)
	}
}

func TestMotherToResponsePOA(t *testing.T) {
	lmp := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	mother := &entity.Mother{Status: entity.MotherStatusPregnant, PregnancyStartDate: &lmp}
	if got := MotherToResponse(mother, today).POA; got != "8 Weeks" {
		t.Errorf("POA = %q, want 8 Weeks", got)
	}

	mother.Status = entity.MotherStatusPostnatal
	if got := MotherToResponse(mother, today).POA; got != "" {
		t.Errorf("POA for postnatal mother = %q, want empty", got)
	}
	if got := *MotherToResponse(mother, today).PregnancyStartDate; got != "2024-01-01" {
		t.Errorf("PregnancyStartDate = %q", got)
	}
}

func TestRiskMotherToResponse(t *testing.T) {
	lmp := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	mother := &entity.Mother{Status: entity.MotherStatusPostnatal, PregnancyStartDate: &lmp}
	record := &entity.PregnancyRecord{MotherAge: ptr(38), RiskFlags: entity.RiskFlags{AgeUnder20Over35: true, Renal: true}}

	got := RiskMotherToResponse(mother, record, today)
	if got.Age == nil || *got.Age != 38 {
		t.Errorf("Age = %v, want 38", got.Age)
	}
	if got.POA != "8 Weeks" {
		t.Errorf("POA = %q, want 8 Weeks", got.POA)
	}
	if len(got.ActiveRisks) != 2 || got.ActiveRisks[0] != "Age Risk" || got.ActiveRisks[1] != "Renal Disease" {
		t.Errorf("ActiveRisks = %v", got.ActiveRisks)
	}

	noRecord := RiskMotherToResponse(mother, nil, today)
	if noRecord.ActiveRisks == nil || len(noRecord.ActiveRisks) != 0 {
		t.Errorf("ActiveRisks without record = %v, want empty slice", noRecord.ActiveRisks)
	}
}
