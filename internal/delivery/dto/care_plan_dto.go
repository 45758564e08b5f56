package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// PregnancyRecordRequest carries the H512 registration form. Absent fields
// leave the stored value unchanged when updating the active record.
type PregnancyRecordRequest struct {
	RegistrationNo    *string `json:"registration_no"`
	RegistrationDate  *string `json:"registration_date" validate:"omitempty,datetime=2006-01-02"`
	RegistrationPlace *string `json:"registration_place"`
	FamilyRegisterNo  *string `json:"family_register_no"`
	VillageDivision   *string `json:"village_division"`
	MOHDivision       *string `json:"moh_division"`
	PHIArea           *string `json:"phi_area"`

	MotherAge         *int             `json:"mother_age" validate:"omitempty,gte=10,lte=70"`
	MotherEducation   *string          `json:"mother_education"`
	MotherOccupation  *string          `json:"mother_occupation"`
	DistanceToClinic  *decimal.Decimal `json:"distance_to_clinic"`
	HusbandName       *string          `json:"husband_name"`
	HusbandAge        *int             `json:"husband_age" validate:"omitempty,gte=10,lte=120"`
	HusbandEducation  *string          `json:"husband_education"`
	HusbandOccupation *string          `json:"husband_occupation"`
	MarriedAge        *int             `json:"married_age" validate:"omitempty,gte=10,lte=70"`
	Consanguinity     *bool            `json:"consanguinity"`

	BMI        *decimal.Decimal `json:"bmi"`
	HeightCM   *decimal.Decimal `json:"height_cm"`
	WeightKG   *decimal.Decimal `json:"weight_kg"`
	BloodGroup *string          `json:"blood_group" validate:"omitempty,max=10"`

	RubellaImmunization   *bool   `json:"rubella_immunization"`
	PrePregnancyScreening *bool   `json:"pre_pregnancy_screening"`
	FolicAcid             *bool   `json:"folic_acid"`
	HistoryOfSubfertility *bool   `json:"history_of_subfertility"`
	FamilyDiabetes        *bool   `json:"family_diabetes"`
	FamilyHypertension    *bool   `json:"family_hypertension"`
	FamilyTwins           *bool   `json:"family_twins"`
	OtherFamilyHistory    *string `json:"other_family_history"`

	Gravidity          *int    `json:"gravidity" validate:"omitempty,gte=0"`
	Parity             *int    `json:"parity" validate:"omitempty,gte=0"`
	NumLivingChildren  *int    `json:"num_living_children" validate:"omitempty,gte=0"`
	AgeOfYoungestChild *string `json:"age_of_youngest_child"`
	LRMP               *string `json:"lrmp" validate:"omitempty,datetime=2006-01-02"`
	EDD                *string `json:"edd" validate:"omitempty,datetime=2006-01-02"`
	USCorrectedEDD     *string `json:"us_corrected_edd" validate:"omitempty,datetime=2006-01-02"`
	POAAtRegistration  *string `json:"poa_at_registration"`

	RiskAgeUnder20Over35      *bool   `json:"risk_age_lt_20_gt_35"`
	RiskFifthPregnancy        *bool   `json:"risk_5th_pregnancy"`
	RiskBirthIntervalUnder1Yr *bool   `json:"risk_birth_interval_lt_1yr"`
	RiskHistoryPPH            *bool   `json:"risk_history_pph"`
	RiskDiabetes              *bool   `json:"risk_diabetes"`
	RiskMalaria               *bool   `json:"risk_malaria"`
	RiskCardiac               *bool   `json:"risk_cardiac"`
	RiskRenal                 *bool   `json:"risk_renal"`
	OtherRiskFactors          *string `json:"other_risk_factors"`
}

type PastPregnancyRequest struct {
	PregnancyOrder  string           `json:"pregnancy_order" validate:"required,max=20"`
	Outcome         string           `json:"outcome"`
	DeliveryMode    string           `json:"delivery_mode"`
	PlaceOfDelivery string           `json:"place_of_delivery"`
	Complications   string           `json:"complications"`
	BirthWeight     *decimal.Decimal `json:"birth_weight"`
	Sex             string           `json:"sex" validate:"omitempty,max=10"`
	AgeIfAlive      string           `json:"age_if_alive"`
}

// PregnancyPlanRequest starts or updates the care plan of a mother
type PregnancyPlanRequest struct {
	RecordData  PregnancyRecordRequest `json:"record_data"`
	PastHistory []PastPregnancyRequest `json:"past_history" validate:"dive"`
	RiskLevel   string                 `json:"risk_level" validate:"required,oneof=Low High"`
}

// ReportDeliveryRequest closes the antenatal phase. DeliveryRecord, when
// present, is stored with the transition and takes its delivery date.
type ReportDeliveryRequest struct {
	DeliveryDate   string                 `json:"delivery_date" validate:"required"`
	DeliveryRecord *DeliveryRecordRequest `json:"delivery_record"`
}

// Response DTOs

type PregnancyRecordResponse struct {
	ID        int       `json:"id"`
	MotherID  uuid.UUID `json:"mother_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`

	RegistrationNo    string  `json:"registration_no"`
	RegistrationDate  *string `json:"registration_date,omitempty"`
	RegistrationPlace string  `json:"registration_place"`
	FamilyRegisterNo  string  `json:"family_register_no"`
	VillageDivision   string  `json:"village_division"`
	MOHDivision       string  `json:"moh_division"`
	PHIArea           string  `json:"phi_area"`

	MotherAge         *int                `json:"mother_age,omitempty"`
	MotherEducation   string              `json:"mother_education"`
	MotherOccupation  string              `json:"mother_occupation"`
	DistanceToClinic  decimal.NullDecimal `json:"distance_to_clinic"`
	HusbandName       string              `json:"husband_name"`
	HusbandAge        *int                `json:"husband_age,omitempty"`
	HusbandEducation  string              `json:"husband_education"`
	HusbandOccupation string              `json:"husband_occupation"`
	MarriedAge        *int                `json:"married_age,omitempty"`
	Consanguinity     bool                `json:"consanguinity"`

	BMI        decimal.NullDecimal `json:"bmi"`
	HeightCM   decimal.NullDecimal `json:"height_cm"`
	WeightKG   decimal.NullDecimal `json:"weight_kg"`
	BloodGroup string              `json:"blood_group"`

	RubellaImmunization   bool   `json:"rubella_immunization"`
	PrePregnancyScreening bool   `json:"pre_pregnancy_screening"`
	FolicAcid             bool   `json:"folic_acid"`
	HistoryOfSubfertility bool   `json:"history_of_subfertility"`
	FamilyDiabetes        bool   `json:"family_diabetes"`
	FamilyHypertension    bool   `json:"family_hypertension"`
	FamilyTwins           bool   `json:"family_twins"`
	OtherFamilyHistory    string `json:"other_family_history"`

	Gravidity          *int    `json:"gravidity,omitempty"`
	Parity             *int    `json:"parity,omitempty"`
	NumLivingChildren  *int    `json:"num_living_children,omitempty"`
	AgeOfYoungestChild string  `json:"age_of_youngest_child"`
	LRMP               *string `json:"lrmp,omitempty"`
	EDD                *string `json:"edd,omitempty"`
	USCorrectedEDD     *string `json:"us_corrected_edd,omitempty"`
	POAAtRegistration  string  `json:"poa_at_registration"`

	RiskAgeUnder20Over35      bool   `json:"risk_age_lt_20_gt_35"`
	RiskFifthPregnancy        bool   `json:"risk_5th_pregnancy"`
	RiskBirthIntervalUnder1Yr bool   `json:"risk_birth_interval_lt_1yr"`
	RiskHistoryPPH            bool   `json:"risk_history_pph"`
	RiskDiabetes              bool   `json:"risk_diabetes"`
	RiskMalaria               bool   `json:"risk_malaria"`
	RiskCardiac               bool   `json:"risk_cardiac"`
	RiskRenal                 bool   `json:"risk_renal"`
	OtherRiskFactors          string `json:"other_risk_factors"`
}

type PastPregnancyResponse struct {
	ID              int                 `json:"id"`
	PregnancyOrder  string              `json:"pregnancy_order"`
	Outcome         string              `json:"outcome"`
	DeliveryMode    string              `json:"delivery_mode"`
	PlaceOfDelivery string              `json:"place_of_delivery"`
	Complications   string              `json:"complications"`
	BirthWeight     decimal.NullDecimal `json:"birth_weight"`
	Sex             string              `json:"sex"`
	AgeIfAlive      string              `json:"age_if_alive"`
}

// PregnancyPlanResponse is the active care plan of a mother
type PregnancyPlanResponse struct {
	Mother      MotherResponse          `json:"mother"`
	RecordData  PregnancyRecordResponse `json:"record_data"`
	PastHistory []PastPregnancyResponse `json:"past_history"`
	RiskLevel   string                  `json:"risk_level"`
	ActiveRisks []string                `json:"active_risks"`
}

// CarePlanResult reports the outcome of a care plan transition
type CarePlanResult struct {
	Mother                MotherResponse          `json:"mother"`
	RemovedAppointments   int64                   `json:"removed_appointments"`
	GeneratedAppointments []AppointmentResponse   `json:"generated_appointments"`
	DeliveryRecord        *DeliveryRecordResponse `json:"delivery_record,omitempty"`
}

type PregnancyRecordListResponse struct {
	Records []PregnancyRecordResponse `json:"records"`
	Total   int                       `json:"total"`
}
