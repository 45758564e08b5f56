package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryRecord holds the delivery, newborn and discharge details of a birth
type DeliveryRecord struct {
	ID           int        `gorm:"primaryKey;autoIncrement" json:"id"`
	MotherID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"mother_id"`
	DeliveryDate *time.Time `gorm:"type:date" json:"delivery_date,omitempty"`
	DeliveryMode string     `gorm:"type:varchar(50)" json:"delivery_mode"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`

	Episiotomy               bool   `gorm:"not null" json:"episiotomy"`
	TempNormal               bool   `gorm:"not null" json:"temp_normal"`
	VaginalExamDone          bool   `gorm:"not null" json:"vaginal_exam_done"`
	MaternalComplications    string `gorm:"type:text" json:"maternal_complications"`
	WoundInfection           bool   `gorm:"not null" json:"wound_infection"`
	FamilyPlanningDiscussed  bool   `gorm:"not null" json:"family_planning_discussed"`
	DangerSignalsExplained   bool   `gorm:"not null" json:"danger_signals_explained"`
	BreastFeedingEstablished bool   `gorm:"not null" json:"breast_feeding_established"`

	// Baby
	BirthWeight   decimal.NullDecimal `gorm:"type:decimal(5,2)" json:"birth_weight"`
	POAAtBirth    *int                `gorm:"column:poa_at_birth" json:"poa_at_birth,omitempty"`
	ApgarScore    *int                `json:"apgar_score,omitempty"`
	Abnormalities string              `gorm:"type:text" json:"abnormalities"`

	// Discharge
	VitaminAGiven      bool       `gorm:"column:vitamin_a_given;not null" json:"vitamin_a_given"`
	RubellaGiven       bool       `gorm:"not null" json:"rubella_given"`
	AntiDGiven         bool       `gorm:"column:anti_d_given;not null" json:"anti_d_given"`
	DiagnosisCardGiven bool       `gorm:"not null" json:"diagnosis_card_given"`
	CHDRCompleted      bool       `gorm:"column:chdr_completed;not null" json:"chdr_completed"`
	PrescriptionGiven  bool       `gorm:"not null" json:"prescription_given"`
	ReferredToPHM      bool       `gorm:"column:referred_to_phm;not null" json:"referred_to_phm"`
	SpecialNotes       string     `gorm:"type:text" json:"special_notes"`
	DischargeDate      *time.Time `gorm:"type:date" json:"discharge_date,omitempty"`
}

func (DeliveryRecord) TableName() string {
	return "delivery_records"
}
