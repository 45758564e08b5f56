package usecase

import (
	"errors"
	"testing"
	"time"

	"maternal-care-backend/internal/delivery/dto"
	"maternal-care-backend/internal/domain/entity"
	"maternal-care-backend/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newTestVisitUsecase(db *gorm.DB) VisitUsecase {
	log := newTestLogger()
	return NewVisitUsecase(
		db,
		log,
		repository.NewANCVisitRepository(),
		repository.NewPNCVisitRepository(),
		repository.NewAppointmentRepository(),
		repository.NewMotherRepository(),
		newTestAuditService(log),
	)
}

func TestRecordANCVisit(t *testing.T) {
	db := newTestDB(t)
	uc := newTestVisitUsecase(db)
	midwife := seedMidwife(t, db)
	other := seedMidwife(t, db)

	mother := seedMother(t, db, midwife.ID, "Kumari")
	start := mustDate(t, "2024-01-01")
	mother.PregnancyStartDate = &start
	mother.Status = entity.MotherStatusPregnant
	if err := db.Save(mother).Error; err != nil {
		t.Fatalf("update mother: %v", err)
	}
	appointment := seedAppointment(t, db, mother, mustDate(t, "2024-03-25"), entity.VisitTypeANC)

	weight := decimal.RequireFromString("61.50")
	req := &dto.CreateANCVisitRequest{
		AppointmentID: appointment.ID,
		VisitDate:     "2024-03-25",
		WeightKG:      &weight,
		BPSystolic:    intPtr(110),
		BPDiastolic:   intPtr(70),
	}

	if _, err := uc.RecordANCVisit(midwifeCtx(other.ID), req); !errors.Is(err, ErrAppointmentNotOwned) {
		t.Fatalf("other midwife error = %v, want ErrAppointmentNotOwned", err)
	}

	visit, err := uc.RecordANCVisit(midwifeCtx(midwife.ID), req)
	if err != nil {
		t.Fatalf("RecordANCVisit() error = %v", err)
	}
	if visit.POAWeeks != "12 Weeks" {
		t.Errorf("poa = %q, want 12 Weeks", visit.POAWeeks)
	}
	if visit.MotherID != mother.ID {
		t.Errorf("mother = %s, want %s", visit.MotherID, mother.ID)
	}
	if !visit.WeightKG.Valid || !visit.WeightKG.Decimal.Equal(weight) {
		t.Errorf("weight = %v, want 61.50", visit.WeightKG)
	}

	stored, err := repository.NewAppointmentRepository().FindByID(db, appointment.ID)
	if err != nil || stored == nil {
		t.Fatalf("find appointment: %v", err)
	}
	if stored.Status != entity.AppointmentStatusCompleted {
		t.Errorf("appointment status = %s, want Completed", stored.Status)
	}

	if _, err := uc.RecordANCVisit(midwifeCtx(midwife.ID), req); !errors.Is(err, ErrVisitAlreadyRecorded) {
		t.Fatalf("second visit error = %v, want ErrVisitAlreadyRecorded", err)
	}

	got, err := uc.GetANCVisit(midwifeCtx(midwife.ID), appointment.ID)
	if err != nil {
		t.Fatalf("GetANCVisit() error = %v", err)
	}
	if got.ID != visit.ID {
		t.Errorf("GetANCVisit() id = %d, want %d", got.ID, visit.ID)
	}

	list, err := uc.GetMotherANCVisits(midwifeCtx(midwife.ID), mother.ID)
	if err != nil {
		t.Fatalf("GetMotherANCVisits() error = %v", err)
	}
	if list.Total != 1 {
		t.Errorf("visits = %d, want 1", list.Total)
	}
}

func TestRecordANCVisitKeepsSuppliedPOA(t *testing.T) {
	db := newTestDB(t)
	uc := newTestVisitUsecase(db)
	midwife := seedMidwife(t, db)
	mother := seedMother(t, db, midwife.ID, "Nimali")
	appointment := seedAppointment(t, db, mother, mustDate(t, "2024-03-25"), entity.VisitTypeANC)

	visit, err := uc.RecordANCVisit(midwifeCtx(midwife.ID), &dto.CreateANCVisitRequest{
		AppointmentID: appointment.ID,
		VisitDate:     "2024-03-25",
		POAWeeks:      strPtr("13 Weeks"),
	})
	if err != nil {
		t.Fatalf("RecordANCVisit() error = %v", err)
	}
	if visit.POAWeeks != "13 Weeks" {
		t.Errorf("poa = %q, want 13 Weeks", visit.POAWeeks)
	}
}

func TestRecordPNCVisit(t *testing.T) {
	db := newTestDB(t)
	uc := newTestVisitUsecase(db)
	midwife := seedMidwife(t, db)
	mother := seedMother(t, db, midwife.ID, "Sewwandi")
	appointment := seedAppointment(t, db, mother, mustDate(t, "2024-01-18"), entity.VisitTypePNC)
	ctx := midwifeCtx(midwife.ID)

	if _, err := uc.RecordPNCVisit(ctx, &dto.CreatePNCVisitRequest{AppointmentID: 999, VisitDate: "2024-01-18"}); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("missing appointment error = %v, want ErrAppointmentNotFound", err)
	}

	temp := decimal.RequireFromString("36.8")
	visit, err := uc.RecordPNCVisit(ctx, &dto.CreatePNCVisitRequest{
		AppointmentID: appointment.ID,
		VisitDate:     "2024-01-18",
		Temperature:   &temp,
		VitaminAGiven: true,
	})
	if err != nil {
		t.Fatalf("RecordPNCVisit() error = %v", err)
	}
	if !visit.VitaminAGiven {
		t.Error("vitamin A flag lost")
	}

	if _, err := uc.GetPNCVisit(ctx, appointment.ID); err != nil {
		t.Fatalf("GetPNCVisit() error = %v", err)
	}
	if _, err := uc.RecordPNCVisit(ctx, &dto.CreatePNCVisitRequest{AppointmentID: appointment.ID, VisitDate: "2024-01-18"}); !errors.Is(err, ErrVisitAlreadyRecorded) {
		t.Fatalf("second visit error = %v, want ErrVisitAlreadyRecorded", err)
	}
}

func TestDashboardCountsTodaysCompletedVisits(t *testing.T) {
	db := newTestDB(t)
	log := newTestLogger()
	visits := newTestVisitUsecase(db)
	dashboard := NewMidwifeUsecase(
		db,
		log,
		repository.NewMidwifeRepository(),
		repository.NewMotherRepository(),
		repository.NewAppointmentRepository(),
		newTestAuditService(log),
		&fakeNotifier{},
	).(*midwifeUsecase)
	dashboard.now = fixedClock("2024-03-25")

	midwife := seedMidwife(t, db)
	ctx := midwifeCtx(midwife.ID)
	mother := seedMother(t, db, midwife.ID, "Kumari")
	seedMother(t, db, midwife.ID, "Nadeesha")

	today := seedAppointment(t, db, mother, mustDate(t, "2024-03-25").Add(10*time.Hour), entity.VisitTypeANC)
	seedAppointment(t, db, mother, mustDate(t, "2024-03-25"), entity.VisitTypeHomeVisit)
	yesterday := seedAppointment(t, db, mother, mustDate(t, "2024-03-24"), entity.VisitTypeANC)

	for _, a := range []*entity.Appointment{today, yesterday} {
		if _, err := visits.RecordANCVisit(ctx, &dto.CreateANCVisitRequest{AppointmentID: a.ID, VisitDate: "2024-03-25"}); err != nil {
			t.Fatalf("RecordANCVisit() error = %v", err)
		}
	}

	stats, err := dashboard.GetDashboardStats(ctx)
	if err != nil {
		t.Fatalf("GetDashboardStats() error = %v", err)
	}
	if stats.AssignedMothers != 2 {
		t.Errorf("assigned mothers = %d, want 2", stats.AssignedMothers)
	}
	if stats.TodaysVisits != 1 {
		t.Errorf("today's visits = %d, want 1", stats.TodaysVisits)
	}
}
