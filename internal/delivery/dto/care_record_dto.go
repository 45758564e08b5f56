package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type DeliveryRecordRequest struct {
	DeliveryDate *string `json:"delivery_date" validate:"omitempty,datetime=2006-01-02"`
	DeliveryMode string  `json:"delivery_mode" validate:"omitempty,max=50"`

	Episiotomy               bool   `json:"episiotomy"`
	TempNormal               bool   `json:"temp_normal"`
	VaginalExamDone          bool   `json:"vaginal_exam_done"`
	MaternalComplications    string `json:"maternal_complications"`
	WoundInfection           bool   `json:"wound_infection"`
	FamilyPlanningDiscussed  bool   `json:"family_planning_discussed"`
	DangerSignalsExplained   bool   `json:"danger_signals_explained"`
	BreastFeedingEstablished bool   `json:"breast_feeding_established"`

	BirthWeight   *decimal.Decimal `json:"birth_weight"`
	POAAtBirth    *int             `json:"poa_at_birth" validate:"omitempty,gte=20,lte=45"`
	ApgarScore    *int             `json:"apgar_score" validate:"omitempty,gte=0,lte=10"`
	Abnormalities string           `json:"abnormalities"`

	VitaminAGiven      bool    `json:"vitamin_a_given"`
	RubellaGiven       bool    `json:"rubella_given"`
	AntiDGiven         bool    `json:"anti_d_given"`
	DiagnosisCardGiven bool    `json:"diagnosis_card_given"`
	CHDRCompleted      bool    `json:"chdr_completed"`
	PrescriptionGiven  bool    `json:"prescription_given"`
	ReferredToPHM      bool    `json:"referred_to_phm"`
	SpecialNotes       string  `json:"special_notes"`
	DischargeDate      *string `json:"discharge_date" validate:"omitempty,datetime=2006-01-02"`
}

type ParentcraftClassRequest struct {
	Date    *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Husband bool    `json:"husband"`
	Wife    bool    `json:"wife"`
	Other   string  `json:"other" validate:"omitempty,max=100"`
}

type HandoutLoanRequest struct {
	Issued   *string `json:"issued" validate:"omitempty,datetime=2006-01-02"`
	Returned *string `json:"returned" validate:"omitempty,datetime=2006-01-02"`
}

type AntenatalPlanRequest struct {
	NextClinicDate *string `json:"next_clinic_date" validate:"omitempty,datetime=2006-01-02"`

	FirstClass  ParentcraftClassRequest `json:"class_1st"`
	SecondClass ParentcraftClassRequest `json:"class_2nd"`
	ThirdClass  ParentcraftClassRequest `json:"class_3rd"`

	BookAntenatal     HandoutLoanRequest `json:"book_antenatal"`
	BookBreastfeeding HandoutLoanRequest `json:"book_breastfeeding"`
	BookECCD          HandoutLoanRequest `json:"book_eccd"`
	LeafletFP         HandoutLoanRequest `json:"leaflet_fp"`

	EmergencyContactName    string `json:"emergency_contact_name" validate:"omitempty,max=255"`
	EmergencyContactAddress string `json:"emergency_contact_address"`
	EmergencyContactPhone   string `json:"emergency_contact_phone" validate:"omitempty,max=20"`
	MOHOfficePhone          string `json:"moh_office_phone" validate:"omitempty,max=20"`
	PHMPhone                string `json:"phm_phone" validate:"omitempty,max=20"`
	GramaNiladhariDivision  string `json:"grama_niladhari_division" validate:"omitempty,max=255"`
}

// Response DTOs

type DeliveryRecordResponse struct {
	ID           int       `json:"id"`
	MotherID     uuid.UUID `json:"mother_id"`
	DeliveryDate *string   `json:"delivery_date,omitempty"`
	DeliveryMode string    `json:"delivery_mode"`
	CreatedAt    time.Time `json:"created_at"`

	Episiotomy               bool   `json:"episiotomy"`
	TempNormal               bool   `json:"temp_normal"`
	VaginalExamDone          bool   `json:"vaginal_exam_done"`
	MaternalComplications    string `json:"maternal_complications"`
	WoundInfection           bool   `json:"wound_infection"`
	FamilyPlanningDiscussed  bool   `json:"family_planning_discussed"`
	DangerSignalsExplained   bool   `json:"danger_signals_explained"`
	BreastFeedingEstablished bool   `json:"breast_feeding_established"`

	BirthWeight   decimal.NullDecimal `json:"birth_weight"`
	POAAtBirth    *int                `json:"poa_at_birth,omitempty"`
	ApgarScore    *int                `json:"apgar_score,omitempty"`
	Abnormalities string              `json:"abnormalities"`

	VitaminAGiven      bool    `json:"vitamin_a_given"`
	RubellaGiven       bool    `json:"rubella_given"`
	AntiDGiven         bool    `json:"anti_d_given"`
	DiagnosisCardGiven bool    `json:"diagnosis_card_given"`
	CHDRCompleted      bool    `json:"chdr_completed"`
	PrescriptionGiven  bool    `json:"prescription_given"`
	ReferredToPHM      bool    `json:"referred_to_phm"`
	SpecialNotes       string  `json:"special_notes"`
	DischargeDate      *string `json:"discharge_date,omitempty"`
}

type ParentcraftClassResponse struct {
	Date    *string `json:"date,omitempty"`
	Husband bool    `json:"husband"`
	Wife    bool    `json:"wife"`
	Other   string  `json:"other"`
}

type HandoutLoanResponse struct {
	Issued   *string `json:"issued,omitempty"`
	Returned *string `json:"returned,omitempty"`
}

type AntenatalPlanResponse struct {
	ID             int       `json:"id"`
	MotherID       uuid.UUID `json:"mother_id"`
	NextClinicDate *string   `json:"next_clinic_date,omitempty"`
	CreatedAt      time.Time `json:"created_at"`

	FirstClass  ParentcraftClassResponse `json:"class_1st"`
	SecondClass ParentcraftClassResponse `json:"class_2nd"`
	ThirdClass  ParentcraftClassResponse `json:"class_3rd"`

	BookAntenatal     HandoutLoanResponse `json:"book_antenatal"`
	BookBreastfeeding HandoutLoanResponse `json:"book_breastfeeding"`
	BookECCD          HandoutLoanResponse `json:"book_eccd"`
	LeafletFP         HandoutLoanResponse `json:"leaflet_fp"`

	EmergencyContactName    string `json:"emergency_contact_name"`
	EmergencyContactAddress string `json:"emergency_contact_address"`
	EmergencyContactPhone   string `json:"emergency_contact_phone"`
	MOHOfficePhone          string `json:"moh_office_phone"`
	PHMPhone                string `json:"phm_phone"`
	GramaNiladhariDivision  string `json:"grama_niladhari_division"`
}

type DeliveryRecordListResponse struct {
	Records []DeliveryRecordResponse `json:"records"`
	Total   int                      `json:"total"`
}

type AntenatalPlanListResponse struct {
	Plans []AntenatalPlanResponse `json:"plans"`
	Total int                     `json:"total"`
}
