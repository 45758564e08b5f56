package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterMidwifeRequest struct {
	FullName           string `json:"full_name" validate:"required,min=2"`
	NIC                string `json:"nic" validate:"required,min=10,max=12"`
	DateOfBirth        string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	PhoneNumber        string `json:"phone_number" validate:"required,min=9,max=20"`
	Email              string `json:"email" validate:"omitempty,email"`
	ResidentialAddress string `json:"residential_address" validate:"required"`
	SLMCRegNo          string `json:"slmc_reg_no" validate:"required"`
	ServiceGrade       string `json:"service_grade" validate:"omitempty,max=50"`
	AssignedMOHArea    string `json:"assigned_moh_area" validate:"required"`
	IsActive           *bool  `json:"is_active"`
}

type UpdateMidwifeStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// Response DTOs

type MidwifeResponse struct {
	ID                 uuid.UUID `json:"id"`
	Username           string    `json:"username"`
	FullName           string    `json:"full_name"`
	NIC                string    `json:"nic"`
	DateOfBirth        *string   `json:"date_of_birth,omitempty"`
	PhoneNumber        string    `json:"phone_number"`
	Email              string    `json:"email,omitempty"`
	ResidentialAddress string    `json:"residential_address"`
	SLMCRegNo          string    `json:"slmc_reg_no"`
	ServiceGrade       string    `json:"service_grade"`
	AssignedMOHArea    string    `json:"assigned_moh_area"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
}

type MidwifeListResponse struct {
	Midwives []MidwifeResponse `json:"midwives"`
	Total    int               `json:"total"`
}

type DashboardStatsResponse struct {
	AssignedMothers int64 `json:"assigned_mothers"`
	TodaysVisits    int64 `json:"todays_visits"`
}
