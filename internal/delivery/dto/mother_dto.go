package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateMotherRequest struct {
	FullName      string `json:"full_name" validate:"required,min=2,max=255"`
	NIC           string `json:"nic" validate:"omitempty,min=10,max=12"`
	Address       string `json:"address" validate:"omitempty"`
	ContactNumber string `json:"contact_number" validate:"omitempty,min=9,max=20"`
	Password      string `json:"password" validate:"required,min=6,max=72"`
}

// UpdateMotherRequest applies only the fields that are present.
type UpdateMotherRequest struct {
	FullName           *string `json:"full_name" validate:"omitempty,min=2,max=255"`
	NIC                *string `json:"nic" validate:"omitempty,min=10,max=12"`
	Address            *string `json:"address"`
	ContactNumber      *string `json:"contact_number" validate:"omitempty,min=9,max=20"`
	Status             *string `json:"status" validate:"omitempty,oneof=Eligible Pregnant Postnatal Completed"`
	RiskLevel          *string `json:"risk_level" validate:"omitempty,oneof=Low High"`
	PregnancyStartDate *string `json:"pregnancy_start_date" validate:"omitempty,datetime=2006-01-02"`
	DeliveryDate       *string `json:"delivery_date" validate:"omitempty,datetime=2006-01-02"`
}

type MotherQuery struct {
	Search string
	Status string
	Page   int
	Limit  int
}

// Response DTOs

type MotherResponse struct {
	ID                 uuid.UUID `json:"id"`
	MidwifeID          uuid.UUID `json:"midwife_id"`
	FullName           string    `json:"full_name"`
	NIC                string    `json:"nic,omitempty"`
	Address            string    `json:"address"`
	ContactNumber      string    `json:"contact_number"`
	Status             string    `json:"status"`
	RiskLevel          string    `json:"risk_level"`
	PregnancyStartDate *string   `json:"pregnancy_start_date,omitempty"`
	DeliveryDate       *string   `json:"delivery_date,omitempty"`
	POA                string    `json:"poa,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type MotherListResponse struct {
	Mothers []MotherResponse `json:"mothers"`
	Total   int64            `json:"total"`
}

// RiskMotherResponse is a caseload entry enriched for risk follow-up
type RiskMotherResponse struct {
	MotherResponse
	Age         *int     `json:"age,omitempty"`
	ActiveRisks []string `json:"active_risks"`
}

type RiskMotherListResponse struct {
	RiskType string               `json:"risk_type"`
	Mothers  []RiskMotherResponse `json:"mothers"`
	Total    int                  `json:"total"`
}

type RiskStatsResponse struct {
	TotalHighRisk      int `json:"total_high_risk"`
	AgeRisk            int `json:"age_risk"`
	FifthPregnancy     int `json:"fifth_pregnancy"`
	ShortBirthInterval int `json:"short_birth_interval"`
	HistoryPPH         int `json:"history_pph"`
	Diabetes           int `json:"diabetes"`
	Malaria            int `json:"malaria"`
	Cardiac            int `json:"cardiac"`
	Renal              int `json:"renal"`
}
