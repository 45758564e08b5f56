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

type fakeCarePlanUsecase struct {
	start      func(motherID uuid.UUID, req *dto.PregnancyPlanRequest) (*dto.CarePlanResult, error)
	delivery   func(motherID uuid.UUID, req *dto.ReportDeliveryRequest) (*dto.CarePlanResult, error)
	get        func(motherID uuid.UUID) (*dto.PregnancyPlanResponse, error)
	list       func(motherID uuid.UUID) (*dto.PregnancyRecordListResponse, error)
	startCalls int
}

func (f *fakeCarePlanUsecase) StartPregnancy(ctx context.Context, motherID uuid.UUID, req *dto.PregnancyPlanRequest) (*dto.CarePlanResult, error) {
	f.startCalls++
	return f.start(motherID, req)
}

func (f *fakeCarePlanUsecase) UpdatePregnancyRecord(ctx context.Context, motherID uuid.UUID, req *dto.PregnancyPlanRequest) (*dto.CarePlanResult, error) {
	return f.start(motherID, req)
}

func (f *fakeCarePlanUsecase) ReportDelivery(ctx context.Context, motherID uuid.UUID, req *dto.ReportDeliveryRequest) (*dto.CarePlanResult, error) {
	return f.delivery(motherID, req)
}

func (f *fakeCarePlanUsecase) GetPregnancy(ctx context.Context, motherID uuid.UUID) (*dto.PregnancyPlanResponse, error) {
	return f.get(motherID)
}

func (f *fakeCarePlanUsecase) GetMyPregnancy(ctx context.Context) (*dto.PregnancyPlanResponse, error) {
	return nil, usecase.ErrUserNotInContext
}

func (f *fakeCarePlanUsecase) ListPregnancyRecords(ctx context.Context, motherID uuid.UUID) (*dto.PregnancyRecordListResponse, error) {
	return f.list(motherID)
}

func (f *fakeCarePlanUsecase) ListMyPregnancyRecords(ctx context.Context) (*dto.PregnancyRecordListResponse, error) {
	return nil, usecase.ErrUserNotInContext
}

func TestCarePlanHandler_StartPregnancy(t *testing.T) {
	motherID := uuid.New()
	var got *dto.PregnancyPlanRequest
	fake := &fakeCarePlanUsecase{
		start: func(id uuid.UUID, req *dto.PregnancyPlanRequest) (*dto.CarePlanResult, error) {
			if id != motherID {
				t.Errorf("motherID = %s, want %s", id, motherID)
			}
			got = req
			return &dto.CarePlanResult{
				Mother:                dto.MotherResponse{ID: id, Status: "Pregnant", RiskLevel: req.RiskLevel},
				GeneratedAppointments: make([]dto.AppointmentResponse, 8),
			}, nil
		},
	}
	h := NewCarePlanHandler(fake, validator.NewValidator())

	body := `{"risk_level":"High","record_data":{"lrmp":"2024-01-01","risk_diabetes":true},"past_history":[{"pregnancy_order":"G1","outcome":"Live birth"}]}`
	req := withVars(newJSONRequest(t, http.MethodPost, "/api/v1/mothers/"+motherID.String()+"/pregnancy", body), map[string]string{"id": motherID.String()})
	rec := httptest.NewRecorder()

	h.StartPregnancy(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if got == nil || got.RecordData.LRMP == nil || *got.RecordData.LRMP != "2024-01-01" {
		t.Fatalf("record data not decoded: %+v", got)
	}
	if got.RecordData.RiskDiabetes == nil || !*got.RecordData.RiskDiabetes {
		t.Error("risk_diabetes not decoded")
	}
	if len(got.PastHistory) != 1 || got.PastHistory[0].PregnancyOrder != "G1" {
		t.Errorf("past history = %+v", got.PastHistory)
	}
	resp := decodeResponse(t, rec)
	if !resp.Success {
		t.Errorf("success = false, message %q", resp.Message)
	}
}

func TestCarePlanHandler_StartPregnancyRejections(t *testing.T) {
	motherID := uuid.New().String()
	tests := []struct {
		name       string
		id         string
		body       string
		err        error
		wantStatus int
		wantCalled bool
	}{
		{"bad mother id", "not-a-uuid", `{"risk_level":"Low"}`, nil, http.StatusBadRequest, false},
		{"malformed body", motherID, `{"risk_level":`, nil, http.StatusBadRequest, false},
		{"missing risk level", motherID, `{"record_data":{}}`, nil, http.StatusBadRequest, false},
		{"unsupported risk level", motherID, `{"risk_level":"Medium"}`, nil, http.StatusBadRequest, false},
		{"bad lrmp", motherID, `{"risk_level":"Low","record_data":{"lrmp":"01/02/2024"}}`, nil, http.StatusBadRequest, false},
		{"mother not found", motherID, `{"risk_level":"Low"}`, usecase.ErrMotherNotFound, http.StatusNotFound, true},
		{"mother of another midwife", motherID, `{"risk_level":"Low"}`, usecase.ErrMotherNotOwned, http.StatusForbidden, true},
		{"store failure", motherID, `{"risk_level":"Low"}`, context.DeadlineExceeded, http.StatusInternalServerError, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCarePlanUsecase{
				start: func(uuid.UUID, *dto.PregnancyPlanRequest) (*dto.CarePlanResult, error) {
					return nil, tt.err
				},
			}
			h := NewCarePlanHandler(fake, validator.NewValidator())
			req := withVars(newJSONRequest(t, http.MethodPost, "/", tt.body), map[string]string{"id": tt.id})
			rec := httptest.NewRecorder()

			h.StartPregnancy(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if called := fake.startCalls > 0; called != tt.wantCalled {
				t.Errorf("usecase called = %v, want %v", called, tt.wantCalled)
			}
		})
	}
}

func TestCarePlanHandler_ReportDelivery(t *testing.T) {
	motherID := uuid.New()
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"date only", `{"delivery_date":"2024-01-15"}`, nil, http.StatusOK},
		{"missing date", `{}`, nil, http.StatusBadRequest},
		{"unparseable date", `{"delivery_date":"15-01-2024"}`, usecase.ErrInvalidDeliveryDate, http.StatusBadRequest},
		{"mother not found", `{"delivery_date":"2024-01-15"}`, usecase.ErrMotherNotFound, http.StatusNotFound},
		{"with details", `{"delivery_date":"2024-01-15","delivery_record":{"delivery_mode":"LSCS","apgar_score":9}}`, nil, http.StatusOK},
		{"apgar out of range", `{"delivery_date":"2024-01-15","delivery_record":{"apgar_score":11}}`, nil, http.StatusBadRequest},
		{"bad discharge date", `{"delivery_date":"2024-01-15","delivery_record":{"discharge_date":"20/01/2024"}}`, nil, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCarePlanUsecase{
				delivery: func(id uuid.UUID, req *dto.ReportDeliveryRequest) (*dto.CarePlanResult, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					return &dto.CarePlanResult{Mother: dto.MotherResponse{ID: id, Status: "Postnatal"}}, nil
				},
			}
			h := NewCarePlanHandler(fake, validator.NewValidator())
			req := withVars(newJSONRequest(t, http.MethodPost, "/", tt.body), map[string]string{"id": motherID.String()})
			rec := httptest.NewRecorder()

			h.ReportDelivery(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestCarePlanHandler_GetPregnancy(t *testing.T) {
	motherID := uuid.New()
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"found", nil, http.StatusOK},
		{"no active record", usecase.ErrPregnancyRecordNotFound, http.StatusNotFound},
		{"not owned", usecase.ErrMotherNotOwned, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCarePlanUsecase{
				get: func(id uuid.UUID) (*dto.PregnancyPlanResponse, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					return &dto.PregnancyPlanResponse{RiskLevel: "Low", ActiveRisks: []string{}}, nil
				},
			}
			h := NewCarePlanHandler(fake, validator.NewValidator())
			req := withVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": motherID.String()})
			rec := httptest.NewRecorder()

			h.GetPregnancy(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestCarePlanHandler_GetMyPregnancyWithoutIdentity(t *testing.T) {
	h := NewCarePlanHandler(&fakeCarePlanUsecase{}, validator.NewValidator())
	rec := httptest.NewRecorder()

	h.GetMyPregnancy(rec, httptest.NewRequest(http.MethodGet, "/api/v1/me/pregnancy", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestCarePlanHandler_ListPregnancyRecords(t *testing.T) {
	motherID := uuid.New()
	fake := &fakeCarePlanUsecase{
		list: func(id uuid.UUID) (*dto.PregnancyRecordListResponse, error) {
			if id != motherID {
				return nil, usecase.ErrMotherNotFound
			}
			return &dto.PregnancyRecordListResponse{
				Records: []dto.PregnancyRecordResponse{{ID: 2, IsActive: true}, {ID: 1}},
				Total:   2,
			}, nil
		},
	}
	h := NewCarePlanHandler(fake, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.ListPregnancyRecords(rec, withVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": motherID.String()}))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	resp := decodeResponse(t, rec)
	data, ok := resp.Data.(map[string]interface{})
	if !ok || data["total"] != float64(2) {
		t.Errorf("data = %#v, want total 2", resp.Data)
	}

	rec = httptest.NewRecorder()
	h.ListPregnancyRecords(rec, withVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": uuid.NewString()}))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown mother status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	rec = httptest.NewRecorder()
	h.ListMyPregnancyRecords(rec, httptest.NewRequest(http.MethodGet, "/api/v1/me/pregnancy-records", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("me status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
