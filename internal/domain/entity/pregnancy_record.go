package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RiskFlags are the eight clinical risk markers captured on the H512 form
type RiskFlags struct {
	AgeUnder20Over35      bool `gorm:"column:risk_age_lt_20_gt_35;not null" json:"risk_age_lt_20_gt_35"`
	FifthPregnancy        bool `gorm:"column:risk_5th_pregnancy;not null" json:"risk_5th_pregnancy"`
	BirthIntervalUnder1Yr bool `gorm:"column:risk_birth_interval_lt_1yr;not null" json:"risk_birth_interval_lt_1yr"`
	HistoryPPH            bool `gorm:"column:risk_history_pph;not null" json:"risk_history_pph"`
	Diabetes              bool `gorm:"column:risk_diabetes;not null" json:"risk_diabetes"`
	Malaria               bool `gorm:"column:risk_malaria;not null" json:"risk_malaria"`
	Cardiac               bool `gorm:"column:risk_cardiac;not null" json:"risk_cardiac"`
	Renal                 bool `gorm:"column:risk_renal;not null" json:"risk_renal"`
}

// PregnancyRecord is a snapshot of the pregnancy registration form.
// At most one record per mother has IsActive set.
type PregnancyRecord struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	MotherID  uuid.UUID `gorm:"type:uuid;not null;index" json:"mother_id"`
	IsActive  bool      `gorm:"not null;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Registration
	RegistrationNo    string     `gorm:"type:varchar(50)" json:"registration_no"`
	RegistrationDate  *time.Time `gorm:"type:date" json:"registration_date,omitempty"`
	RegistrationPlace string     `gorm:"type:varchar(255)" json:"registration_place"`
	FamilyRegisterNo  string     `gorm:"type:varchar(50)" json:"family_register_no"`
	VillageDivision   string     `gorm:"type:varchar(255)" json:"village_division"`
	MOHDivision       string     `gorm:"column:moh_division;type:varchar(255)" json:"moh_division"`
	PHIArea           string     `gorm:"column:phi_area;type:varchar(255)" json:"phi_area"`

	// Mother and husband
	MotherAge         *int                `json:"mother_age,omitempty"`
	MotherEducation   string              `gorm:"type:varchar(100)" json:"mother_education"`
	MotherOccupation  string              `gorm:"type:varchar(100)" json:"mother_occupation"`
	DistanceToClinic  decimal.NullDecimal `gorm:"type:decimal(6,2)" json:"distance_to_clinic"`
	HusbandName       string              `gorm:"type:varchar(255)" json:"husband_name"`
	HusbandAge        *int                `json:"husband_age,omitempty"`
	HusbandEducation  string              `gorm:"type:varchar(100)" json:"husband_education"`
	HusbandOccupation string              `gorm:"type:varchar(100)" json:"husband_occupation"`
	MarriedAge        *int                `json:"married_age,omitempty"`
	Consanguinity     bool                `gorm:"not null" json:"consanguinity"`

	// Vitals
	BMI        decimal.NullDecimal `gorm:"column:bmi;type:decimal(5,2)" json:"bmi"`
	HeightCM   decimal.NullDecimal `gorm:"column:height_cm;type:decimal(5,2)" json:"height_cm"`
	WeightKG   decimal.NullDecimal `gorm:"column:weight_kg;type:decimal(5,2)" json:"weight_kg"`
	BloodGroup string              `gorm:"type:varchar(10)" json:"blood_group"`

	// Screening and family history
	RubellaImmunization   bool   `gorm:"not null" json:"rubella_immunization"`
	PrePregnancyScreening bool   `gorm:"not null" json:"pre_pregnancy_screening"`
	FolicAcid             bool   `gorm:"not null" json:"folic_acid"`
	HistoryOfSubfertility bool   `gorm:"not null" json:"history_of_subfertility"`
	FamilyDiabetes        bool   `gorm:"not null" json:"family_diabetes"`
	FamilyHypertension    bool   `gorm:"not null" json:"family_hypertension"`
	FamilyTwins           bool   `gorm:"not null" json:"family_twins"`
	OtherFamilyHistory    string `gorm:"type:text" json:"other_family_history"`

	// Obstetric
	Gravidity          *int       `json:"gravidity,omitempty"`
	Parity             *int       `json:"parity,omitempty"`
	NumLivingChildren  *int       `json:"num_living_children,omitempty"`
	AgeOfYoungestChild string     `gorm:"type:varchar(50)" json:"age_of_youngest_child"`
	LRMP               *time.Time `gorm:"column:lrmp;type:date" json:"lrmp,omitempty"`
	EDD                *time.Time `gorm:"column:edd;type:date" json:"edd,omitempty"`
	USCorrectedEDD     *time.Time `gorm:"column:us_corrected_edd;type:date" json:"us_corrected_edd,omitempty"`
	POAAtRegistration  string     `gorm:"column:poa_at_registration;type:varchar(50)" json:"poa_at_registration"`

	RiskFlags        `gorm:"embedded"`
	OtherRiskFactors string `gorm:"type:text" json:"other_risk_factors"`
}

func (PregnancyRecord) TableName() string {
	return "pregnancy_records"
}

// PastPregnancy is one row of the obstetric history table
type PastPregnancy struct {
	ID              int                 `gorm:"primaryKey;autoIncrement" json:"id"`
	MotherID        uuid.UUID           `gorm:"type:uuid;not null;index" json:"mother_id"`
	PregnancyOrder  string              `gorm:"type:varchar(20);not null" json:"pregnancy_order"`
	Outcome         string              `gorm:"type:varchar(100)" json:"outcome"`
	DeliveryMode    string              `gorm:"type:varchar(100)" json:"delivery_mode"`
	PlaceOfDelivery string              `gorm:"type:varchar(255)" json:"place_of_delivery"`
	Complications   string              `gorm:"type:text" json:"complications"`
	BirthWeight     decimal.NullDecimal `gorm:"type:decimal(5,2)" json:"birth_weight"`
	Sex             string              `gorm:"type:varchar(10)" json:"sex"`
	AgeIfAlive      string              `gorm:"type:varchar(50)" json:"age_if_alive"`
	CreatedAt       time.Time           `gorm:"autoCreateTime" json:"created_at"`
}

func (PastPregnancy) TableName() string {
	return "past_pregnancies"
}
