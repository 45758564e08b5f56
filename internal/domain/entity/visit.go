package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ANCVisit holds the observations recorded at an antenatal appointment
type ANCVisit struct {
	ID              int                 `gorm:"primaryKey;autoIncrement" json:"id"`
	MotherID        uuid.UUID           `gorm:"type:uuid;not null;index" json:"mother_id"`
	AppointmentID   int                 `gorm:"not null;uniqueIndex" json:"appointment_id"`
	VisitDate       time.Time           `gorm:"type:date;not null" json:"visit_date"`
	POAWeeks        string              `gorm:"column:poa_weeks;type:varchar(50)" json:"poa_weeks"`
	WeightKG        decimal.NullDecimal `gorm:"column:weight_kg;type:decimal(5,2)" json:"weight_kg"`
	BPSystolic      *int                `gorm:"column:bp_systolic" json:"bp_systolic,omitempty"`
	BPDiastolic     *int                `gorm:"column:bp_diastolic" json:"bp_diastolic,omitempty"`
	Pallor          string              `gorm:"type:varchar(50)" json:"pallor"`
	Oedema          string              `gorm:"type:varchar(50)" json:"oedema"`
	FundalHeightCM  decimal.NullDecimal `gorm:"column:fundal_height_cm;type:decimal(5,2)" json:"fundal_height_cm"`
	FetalLie        string              `gorm:"type:varchar(50)" json:"fetal_lie"`
	FetalHeartSound string              `gorm:"type:varchar(50)" json:"fetal_heart_sound"`
	FetalMovement   string              `gorm:"type:varchar(50)" json:"fetal_movement"`
	UrineSugar      string              `gorm:"type:varchar(50)" json:"urine_sugar"`
	UrineAlbumin    string              `gorm:"type:varchar(50)" json:"urine_albumin"`

	NutrientSupplements   bool `gorm:"not null" json:"nutrient_supplements"`
	CounselNutrition      bool `gorm:"not null" json:"counsel_nutrition"`
	CounselDangerSigns    bool `gorm:"not null" json:"counsel_danger_signs"`
	CounselFamilyPlanning bool `gorm:"not null" json:"counsel_family_planning"`
	CounselBreastfeeding  bool `gorm:"not null" json:"counsel_breastfeeding"`
	CounselDeliveryPlan   bool `gorm:"not null" json:"counsel_delivery_plan"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ANCVisit) TableName() string {
	return "anc_visits"
}

// PNCVisit holds the mother and baby observations of a postnatal appointment
type PNCVisit struct {
	ID                   int                 `gorm:"primaryKey;autoIncrement" json:"id"`
	MotherID             uuid.UUID           `gorm:"type:uuid;not null;index" json:"mother_id"`
	AppointmentID        int                 `gorm:"not null;uniqueIndex" json:"appointment_id"`
	VisitDate            time.Time           `gorm:"type:date;not null" json:"visit_date"`
	Temperature          decimal.NullDecimal `gorm:"type:decimal(4,1)" json:"temperature"`
	Pallor               string              `gorm:"type:varchar(50)" json:"pallor"`
	BreastCondition      string              `gorm:"type:varchar(100)" json:"breast_condition"`
	UterusInvolution     string              `gorm:"type:varchar(100)" json:"uterus_involution"`
	LochiaCharacter      string              `gorm:"type:varchar(100)" json:"lochia_character"`
	LochiaSmell          string              `gorm:"type:varchar(100)" json:"lochia_smell"`
	PerineumInfection    bool                `gorm:"not null" json:"perineum_infection"`
	FissureInfection     bool                `gorm:"not null" json:"fissure_infection"`
	VitaminAGiven        bool                `gorm:"column:vitamin_a_given;not null" json:"vitamin_a_given"`
	FamilyPlanningMethod string              `gorm:"type:varchar(100)" json:"family_planning_method"`
	ReferredToHospital   bool                `gorm:"not null" json:"referred_to_hospital"`

	BabyColor     string              `gorm:"type:varchar(50)" json:"baby_color"`
	CordStatus    string              `gorm:"type:varchar(50)" json:"cord_status"`
	Breastfeeding string              `gorm:"type:varchar(50)" json:"breastfeeding"`
	BabyStool     string              `gorm:"type:varchar(50)" json:"baby_stool"`
	BabyWeight    decimal.NullDecimal `gorm:"type:decimal(5,2)" json:"baby_weight"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PNCVisit) TableName() string {
	return "pnc_visits"
}
