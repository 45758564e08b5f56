package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateANCVisitRequest struct {
	AppointmentID   int              `json:"appointment_id" validate:"required,min=1"`
	VisitDate       string           `json:"visit_date" validate:"required,datetime=2006-01-02"`
	POAWeeks        *string          `json:"poa_weeks"`
	WeightKG        *decimal.Decimal `json:"weight_kg"`
	BPSystolic      *int             `json:"bp_systolic" validate:"omitempty,gte=40,lte=300"`
	BPDiastolic     *int             `json:"bp_diastolic" validate:"omitempty,gte=20,lte=200"`
	Pallor          string           `json:"pallor"`
	Oedema          string           `json:"oedema"`
	FundalHeightCM  *decimal.Decimal `json:"fundal_height_cm"`
	FetalLie        string           `json:"fetal_lie"`
	FetalHeartSound string           `json:"fetal_heart_sound"`
	FetalMovement   string           `json:"fetal_movement"`
	UrineSugar      string           `json:"urine_sugar"`
	UrineAlbumin    string           `json:"urine_albumin"`

	NutrientSupplements   bool `json:"nutrient_supplements"`
	CounselNutrition      bool `json:"counsel_nutrition"`
	CounselDangerSigns    bool `json:"counsel_danger_signs"`
	CounselFamilyPlanning bool `json:"counsel_family_planning"`
	CounselBreastfeeding  bool `json:"counsel_breastfeeding"`
	CounselDeliveryPlan   bool `json:"counsel_delivery_plan"`
}

type CreatePNCVisitRequest struct {
	AppointmentID        int              `json:"appointment_id" validate:"required,min=1"`
	VisitDate            string           `json:"visit_date" validate:"required,datetime=2006-01-02"`
	Temperature          *decimal.Decimal `json:"temperature"`
	Pallor               string           `json:"pallor"`
	BreastCondition      string           `json:"breast_condition"`
	UterusInvolution     string           `json:"uterus_involution"`
	LochiaCharacter      string           `json:"lochia_character"`
	LochiaSmell          string           `json:"lochia_smell"`
	PerineumInfection    bool             `json:"perineum_infection"`
	FissureInfection     bool             `json:"fissure_infection"`
	VitaminAGiven        bool             `json:"vitamin_a_given"`
	FamilyPlanningMethod string           `json:"family_planning_method"`
	ReferredToHospital   bool             `json:"referred_to_hospital"`

	BabyColor     string           `json:"baby_color"`
	CordStatus    string           `json:"cord_status"`
	Breastfeeding string           `json:"breastfeeding"`
	BabyStool     string           `json:"baby_stool"`
	BabyWeight    *decimal.Decimal `json:"baby_weight"`
}

// Response DTOs

type ANCVisitResponse struct {
	ID              int                 `json:"id"`
	MotherID        uuid.UUID           `json:"mother_id"`
	AppointmentID   int                 `json:"appointment_id"`
	VisitDate       string              `json:"visit_date"`
	POAWeeks        string              `json:"poa_weeks"`
	WeightKG        decimal.NullDecimal `json:"weight_kg"`
	BPSystolic      *int                `json:"bp_systolic,omitempty"`
	BPDiastolic     *int                `json:"bp_diastolic,omitempty"`
	Pallor          string              `json:"pallor"`
	Oedema          string              `json:"oedema"`
	FundalHeightCM  decimal.NullDecimal `json:"fundal_height_cm"`
	FetalLie        string              `json:"fetal_lie"`
	FetalHeartSound string              `json:"fetal_heart_sound"`
	FetalMovement   string              `json:"fetal_movement"`
	UrineSugar      string              `json:"urine_sugar"`
	UrineAlbumin    string              `json:"urine_albumin"`

	NutrientSupplements   bool `json:"nutrient_supplements"`
	CounselNutrition      bool `json:"counsel_nutrition"`
	CounselDangerSigns    bool `json:"counsel_danger_signs"`
	CounselFamilyPlanning bool `json:"counsel_family_planning"`
	CounselBreastfeeding  bool `json:"counsel_breastfeeding"`
	CounselDeliveryPlan   bool `json:"counsel_delivery_plan"`

	CreatedAt time.Time `json:"created_at"`
}

type PNCVisitResponse struct {
	ID                   int                 `json:"id"`
	MotherID             uuid.UUID           `json:"mother_id"`
	AppointmentID        int                 `json:"appointment_id"`
	VisitDate            string              `json:"visit_date"`
	Temperature          decimal.NullDecimal `json:"temperature"`
	Pallor               string              `json:"pallor"`
	BreastCondition      string              `json:"breast_condition"`
	UterusInvolution     string              `json:"uterus_involution"`
	LochiaCharacter      string              `json:"lochia_character"`
	LochiaSmell          string              `json:"lochia_smell"`
	PerineumInfection    bool                `json:"perineum_infection"`
	FissureInfection     bool                `json:"fissure_infection"`
	VitaminAGiven        bool                `json:"vitamin_a_given"`
	FamilyPlanningMethod string              `json:"family_planning_method"`
	ReferredToHospital   bool                `json:"referred_to_hospital"`

	BabyColor     string              `json:"baby_color"`
	CordStatus    string              `json:"cord_status"`
	Breastfeeding string              `json:"breastfeeding"`
	BabyStool     string              `json:"baby_stool"`
	BabyWeight    decimal.NullDecimal `json:"baby_weight"`

	CreatedAt time.Time `json:"created_at"`
}

type ANCVisitListResponse struct {
	Visits []ANCVisitResponse `json:"visits"`
	Total  int                `json:"total"`
}

type PNCVisitListResponse struct {
	Visits []PNCVisitResponse `json:"visits"`
	Total  int                `json:"total"`
}
