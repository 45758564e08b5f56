package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	MotherID  uuid.UUID `json:"mother_id" validate:"required"`
	DateTime  time.Time `json:"date_time" validate:"required"`
	VisitType string    `json:"visit_type" validate:"omitempty,oneof=Clinic 'Home Visit' ANC PNC"`
	Notes     string    `json:"notes" validate:"omitempty,max=1000"`
}

type UpdateAppointmentRequest struct {
	DateTime  *time.Time `json:"date_time"`
	VisitType *string    `json:"visit_type" validate:"omitempty,oneof=Clinic 'Home Visit' ANC PNC"`
	Status    *string    `json:"status" validate:"omitempty,oneof=Scheduled Completed Cancelled"`
	Notes     *string    `json:"notes" validate:"omitempty,max=1000"`
}

// AppointmentQuery bounds a listing to [StartDate, EndDate], both YYYY-MM-DD
type AppointmentQuery struct {
	StartDate string
	EndDate   string
}

// Response DTOs

type AppointmentResponse struct {
	ID         int       `json:"id"`
	MidwifeID  uuid.UUID `json:"midwife_id"`
	MotherID   uuid.UUID `json:"mother_id"`
	MotherName string    `json:"mother_name,omitempty"`
	DateTime   time.Time `json:"date_time"`
	VisitType  string    `json:"visit_type"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
