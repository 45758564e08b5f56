package usecase

import (
	"context"
	"errors"
	"testing"

	"maternal-care-backend/internal/delivery/dto"
	"maternal-care-backend/internal/delivery/http/middleware"
	"maternal-care-backend/internal/domain/entity"
	"maternal-care-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newTestCareRecordUsecase(db *gorm.DB) CareRecordUsecase {
	log := newTestLogger()
	return NewCareRecordUsecase(
		db,
		log,
		repository.NewDeliveryRecordRepository(),
		repository.NewAntenatalPlanRepository(),
		repository.NewMotherRepository(),
		newTestAuditService(log),
	)
}

func TestCreateDeliveryRecord(t *testing.T) {
	db := newTestDB(t)
	uc := newTestCareRecordUsecase(db)
	midwife := seedMidwife(t, db)
	other := seedMidwife(t, db)
	mother := seedMother(t, db, midwife.ID, "Kumari")

	req := &dto.DeliveryRecordRequest{
		DeliveryDate:  strPtr("2024-01-15"),
		DeliveryMode:  "NVD",
		ApgarScore:    intPtr(9),
		DischargeDate: strPtr("2024-01-17"),
		VitaminAGiven: true,
	}

	if _, err := uc.CreateDeliveryRecord(midwifeCtx(other.ID), mother.ID, req); !errors.Is(err, ErrMotherNotOwned) {
		t.Fatalf("other midwife error = %v, want ErrMotherNotOwned", err)
	}
	if _, err := uc.CreateDeliveryRecord(midwifeCtx(midwife.ID), uuid.New(), req); !errors.Is(err, ErrMotherNotFound) {
		t.Fatalf("unknown mother error = %v, want ErrMotherNotFound", err)
	}

	record, err := uc.CreateDeliveryRecord(midwifeCtx(midwife.ID), mother.ID, req)
	if err != nil {
		t.Fatalf("CreateDeliveryRecord() error = %v", err)
	}
	if record.ID == 0 || record.MotherID != mother.ID {
		t.Errorf("record = %+v", record)
	}
	if record.DischargeDate == nil || *record.DischargeDate != "2024-01-17" {
		t.Errorf("discharge date = %v", record.DischargeDate)
	}

	var audits int64
	db.Model(&entity.AuditLog{}).Where("action = ?", entity.AuditActionDeliveryRecord).Count(&audits)
	if audits != 1 {
		t.Errorf("audit entries = %d, want 1", audits)
	}

	mine, err := uc.GetMyDeliveryRecords(middleware.WithIdentity(context.Background(), mother.ID, entity.RoleMother))
	if err != nil {
		t.Fatalf("GetMyDeliveryRecords() error = %v", err)
	}
	if mine.Total != 1 || mine.Records[0].ApgarScore == nil || *mine.Records[0].ApgarScore != 9 {
		t.Errorf("my records = %+v", mine)
	}
}

func TestCreateDeliveryRecordRejectsBadDate(t *testing.T) {
	db := newTestDB(t)
	uc := newTestCareRecordUsecase(db)
	midwife := seedMidwife(t, db)
	mother := seedMother(t, db, midwife.ID, "Nadeesha")

	_, err := uc.CreateDeliveryRecord(midwifeCtx(midwife.ID), mother.ID, &dto.DeliveryRecordRequest{DeliveryDate: strPtr("2024-02-30")})
	if !errors.Is(err, ErrInvalidDateFormat) {
		t.Fatalf("error = %v, want ErrInvalidDateFormat", err)
	}

	list, err := uc.GetMotherDeliveryRecords(midwifeCtx(midwife.ID), mother.ID)
	if err != nil {
		t.Fatalf("GetMotherDeliveryRecords() error = %v", err)
	}
	if list.Total != 0 {
		t.Errorf("records = %d, want 0", list.Total)
	}
}

func TestAntenatalPlans(t *testing.T) {
	db := newTestDB(t)
	uc := newTestCareRecordUsecase(db)
	midwife := seedMidwife(t, db)
	other := seedMidwife(t, db)
	mother := seedMother(t, db, midwife.ID, "Chamari")
	ctx := midwifeCtx(midwife.ID)

	first := &dto.AntenatalPlanRequest{
		NextClinicDate: strPtr("2024-03-01"),
		FirstClass:     dto.ParentcraftClassRequest{Date: strPtr("2024-03-10"), Husband: true, Wife: true},
		BookAntenatal:  dto.HandoutLoanRequest{Issued: strPtr("2024-02-01")},
	}
	if _, err := uc.CreateAntenatalPlan(ctx, mother.ID, first); err != nil {
		t.Fatalf("CreateAntenatalPlan() error = %v", err)
	}
	second := &dto.AntenatalPlanRequest{EmergencyContactName: "Sunil", EmergencyContactPhone: "0711234567"}
	if _, err := uc.CreateAntenatalPlan(ctx, mother.ID, second); err != nil {
		t.Fatalf("second CreateAntenatalPlan() error = %v", err)
	}

	plans, err := uc.GetMotherAntenatalPlans(ctx, mother.ID)
	if err != nil {
		t.Fatalf("GetMotherAntenatalPlans() error = %v", err)
	}
	if plans.Total != 2 {
		t.Fatalf("plans = %d, want 2", plans.Total)
	}
	if plans.Plans[0].EmergencyContactName != "Sunil" {
		t.Errorf("newest plan first, got %+v", plans.Plans[0])
	}
	stored := plans.Plans[1]
	if stored.FirstClass.Date == nil || *stored.FirstClass.Date != "2024-03-10" || !stored.FirstClass.Husband {
		t.Errorf("class_1st = %+v", stored.FirstClass)
	}
	if stored.BookAntenatal.Issued == nil || *stored.BookAntenatal.Issued != "2024-02-01" || stored.BookAntenatal.Returned != nil {
		t.Errorf("book_antenatal = %+v", stored.BookAntenatal)
	}

	if _, err := uc.GetMotherAntenatalPlans(midwifeCtx(other.ID), mother.ID); !errors.Is(err, ErrMotherNotOwned) {
		t.Errorf("other midwife error = %v, want ErrMotherNotOwned", err)
	}

	mine, err := uc.GetMyAntenatalPlans(middleware.WithIdentity(context.Background(), mother.ID, entity.RoleMother))
	if err != nil {
		t.Fatalf("GetMyAntenatalPlans() error = %v", err)
	}
	if mine.Total != 2 {
		t.Errorf("my plans = %d, want 2", mine.Total)
	}
	if _, err := uc.GetMyAntenatalPlans(context.Background()); !errors.Is(err, ErrUserNotInContext) {
		t.Errorf("no identity error = %v, want ErrUserNotInContext", err)
	}
}
