package converter

import (
	"testing"

	"maternal-care-backend/internal/delivery/dto"
	"maternal-care-backend/internal/domain/careplan"

	"github.com/google/uuid"
)

func TestAntenatalPlanRoundTripsNestedDates(t *testing.T) {
	motherID := uuid.New()
	req := &dto.AntenatalPlanRequest{
		NextClinicDate: ptr("2024-03-01"),
		SecondClass:    dto.ParentcraftClassRequest{Date: ptr("2024-04-10"), Husband: true},
		BookECCD:       dto.HandoutLoanRequest{Issued: ptr("2024-02-01")},
		PHMPhone:       "0771234567",
	}

	plan, err := AntenatalPlanFromRequest(req, motherID)
	if err != nil {
		t.Fatalf("AntenatalPlanFromRequest() error = %v", err)
	}
	if plan.MotherID != motherID {
		t.Errorf("MotherID = %s, want %s", plan.MotherID, motherID)
	}
	if plan.FirstClass.Date != nil || !plan.SecondClass.Husband || plan.SecondClass.Wife {
		t.Errorf("classes = %+v / %+v", plan.FirstClass, plan.SecondClass)
	}

	resp := AntenatalPlanToResponse(plan)
	if resp.SecondClass.Date == nil || *resp.SecondClass.Date != "2024-04-10" {
		t.Errorf("class_2nd date = %v", resp.SecondClass.Date)
	}
	if resp.BookECCD.Issued == nil || *resp.BookECCD.Issued != "2024-02-01" || resp.BookECCD.Returned != nil {
		t.Errorf("book_eccd = %+v", resp.BookECCD)
	}
	if resp.NextClinicDate == nil || *resp.NextClinicDate != "2024-03-01" {
		t.Errorf("next clinic = %v", resp.NextClinicDate)
	}
}

func TestCareRecordConvertersRejectBadDates(t *testing.T) {
	if _, err := AntenatalPlanFromRequest(&dto.AntenatalPlanRequest{
		LeafletFP: dto.HandoutLoanRequest{Returned: ptr("2024-02-31")},
	}, uuid.New()); err != careplan.ErrInvalidDate {
		t.Errorf("antenatal plan error = %v, want ErrInvalidDate", err)
	}

	if _, err := DeliveryRecordFromRequest(&dto.DeliveryRecordRequest{
		DischargeDate: ptr("31/01/2024"),
	}, uuid.New()); err != careplan.ErrInvalidDate {
		t.Errorf("delivery record error = %v, want ErrInvalidDate", err)
	}
}
