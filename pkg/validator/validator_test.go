package validator

import "testing"

type sampleRequest struct {
	FullName  string  `json:"full_name" validate:"required,min=2"`
	RiskLevel string  `json:"risk_level" validate:"required,oneof=Low High"`
	StartDate string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	Status    *string `json:"status" validate:"omitempty,oneof=Scheduled Completed Cancelled"`
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := NewValidator()
	bad := "Unknown"
	err := v.Validate(&sampleRequest{FullName: "A", RiskLevel: "Medium", StartDate: "01/02/2024", Status: &bad})
	if err == nil {
		t.Fatal("Validate() should fail")
	}

	got := v.FormatValidationErrors(err)
	want := map[string]string{
		"full_name":  "full_name must be at least 2 characters",
		"risk_level": "risk_level must be one of: Low High",
		"start_date": "start_date must be a date in the format YYYY-MM-DD",
		"status":     "status must be one of: Scheduled Completed Cancelled",
	}
	for field, msg := range want {
		if got[field] != msg {
			t.Errorf("errors[%q] = %q, want %q", field, got[field], msg)
		}
	}
}

func TestValidateAcceptsValidRequest(t *testing.T) {
	v := NewValidator()
	req := &sampleRequest{FullName: "Kamala Perera", RiskLevel: "High", StartDate: "2024-01-01"}
	if err := v.Validate(req); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
