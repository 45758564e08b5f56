package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"maternal-care-backend/internal/delivery/dto"
	"maternal-care-backend/internal/usecase"
	"maternal-care-backend/pkg/validator"

	"github.com/google/uuid"
)

type fakeCareRecordUsecase struct {
	err         error
	deliveryReq *dto.DeliveryRecordRequest
	planReq     *dto.AntenatalPlanRequest
	calls       int
}

func (f *fakeCareRecordUsecase) CreateDeliveryRecord(ctx context.Context, motherID uuid.UUID, req *dto.DeliveryRecordRequest) (*dto.DeliveryRecordResponse, error) {
	f.calls++
	f.deliveryReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &dto.DeliveryRecordResponse{ID: 1, MotherID: motherID, DeliveryMode: req.DeliveryMode}, nil
}

func (f *fakeCareRecordUsecase) GetMotherDeliveryRecords(ctx context.Context, motherID uuid.UUID) (*dto.DeliveryRecordListResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &dto.DeliveryRecordListResponse{Records: []dto.DeliveryRecordResponse{}}, nil
}

func (f *fakeCareRecordUsecase) GetMyDeliveryRecords(ctx context.Context) (*dto.DeliveryRecordListResponse, error) {
	return f.GetMotherDeliveryRecords(ctx, uuid.Nil)
}

func (f *fakeCareRecordUsecase) CreateAntenatalPlan(ctx context.Context, motherID uuid.UUID, req *dto.AntenatalPlanRequest) (*dto.AntenatalPlanResponse, error) {
	f.calls++
	f.planReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &dto.AntenatalPlanResponse{ID: 1, MotherID: motherID}, nil
}

func (f *fakeCareRecordUsecase) GetMotherAntenatalPlans(ctx context.Context, motherID uuid.UUID) (*dto.AntenatalPlanListResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &dto.AntenatalPlanListResponse{Plans: []dto.AntenatalPlanResponse{}}, nil
}

func (f *fakeCareRecordUsecase) GetMyAntenatalPlans(ctx context.Context) (*dto.AntenatalPlanListResponse, error) {
	return f.GetMotherAntenatalPlans(ctx, uuid.Nil)
}

func TestCareRecordHandler_CreateDeliveryRecord(t *testing.T) {
	motherID := uuid.New().String()
	tests := []struct {
		name       string
		id         string
		body       string
		err        error
		wantStatus int
		wantCalled bool
	}{
		{"created", motherID, `{"delivery_mode":"NVD","apgar_score":8,"discharge_date":"2024-01-18"}`, nil, http.StatusCreated, true},
		{"bad mother id", "x", `{}`, nil, http.StatusBadRequest, false},
		{"malformed body", motherID, `{"delivery_mode":`, nil, http.StatusBadRequest, false},
		{"poa out of range", motherID, `{"poa_at_birth":60}`, nil, http.StatusBadRequest, false},
		{"bad date", motherID, `{"delivery_date":"2024/01/15"}`, nil, http.StatusBadRequest, false},
		{"not owned", motherID, `{}`, usecase.ErrMotherNotOwned, http.StatusForbidden, true},
		{"not found", motherID, `{}`, usecase.ErrMotherNotFound, http.StatusNotFound, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCareRecordUsecase{err: tt.err}
			h := NewCareRecordHandler(fake, validator.NewValidator())
			req := withVars(newJSONRequest(t, http.MethodPost, "/", tt.body), map[string]string{"id": tt.id})
			rec := httptest.NewRecorder()

			h.CreateDeliveryRecord(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if called := fake.calls > 0; called != tt.wantCalled {
				t.Errorf("usecase called = %v, want %v", called, tt.wantCalled)
			}
		})
	}
}

func TestCareRecordHandler_CreateAntenatalPlanDecodesNestedFields(t *testing.T) {
	fake := &fakeCareRecordUsecase{}
	h := NewCareRecordHandler(fake, validator.NewValidator())

	body := `{"class_1st":{"date":"2024-03-02","wife":true},"book_antenatal":{"issued":"2024-02-01"},"phm_phone":"0771234567"}`
	req := withVars(newJSONRequest(t, http.MethodPost, "/", body), map[string]string{"id": uuid.NewString()})
	rec := httptest.NewRecorder()

	h.CreateAntenatalPlan(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	got := fake.planReq
	if got.FirstClass.Date == nil || *got.FirstClass.Date != "2024-03-02" || !got.FirstClass.Wife {
		t.Errorf("class_1st = %+v", got.FirstClass)
	}
	if got.BookAntenatal.Issued == nil || *got.BookAntenatal.Issued != "2024-02-01" {
		t.Errorf("book_antenatal = %+v", got.BookAntenatal)
	}

	fake = &fakeCareRecordUsecase{}
	h = NewCareRecordHandler(fake, validator.NewValidator())
	req = withVars(newJSONRequest(t, http.MethodPost, "/", `{"class_3rd":{"date":"tomorrow"}}`), map[string]string{"id": uuid.NewString()})
	rec = httptest.NewRecorder()
	h.CreateAntenatalPlan(rec, req)
	if rec.Code != http.StatusBadRequest || fake.calls != 0 {
		t.Errorf("bad nested date: status = %d, calls = %d", rec.Code, fake.calls)
	}
}

func TestCareRecordHandler_MyRecordsWithoutIdentity(t *testing.T) {
	h := NewCareRecordHandler(&fakeCareRecordUsecase{err: usecase.ErrUserNotInContext}, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.GetMyDeliveryRecords(rec, httptest.NewRequest(http.MethodGet, "/api/v1/me/delivery-records", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("delivery records status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	rec = httptest.NewRecorder()
	h.GetMyAntenatalPlans(rec, httptest.NewRequest(http.MethodGet, "/api/v1/me/antenatal-plans", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("antenatal plans status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
