package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MotherStatus is the phase of the mother's care cycle
type MotherStatus string

const (
	MotherStatusEligible  MotherStatus = "Eligible"
	MotherStatusPregnant  MotherStatus = "Pregnant"
	MotherStatusPostnatal MotherStatus = "Postnatal"
	MotherStatusCompleted MotherStatus = "Completed"
)

// RiskLevel is the clinical tier asserted by the midwife
type RiskLevel string

const (
	RiskLevelLow  RiskLevel = "Low"
	RiskLevelHigh RiskLevel = "High"
)

func (r RiskLevel) IsValid() bool {
	return r == RiskLevelLow || r == RiskLevelHigh
}

// ActiveCaseStatuses are the statuses counted in risk statistics
var ActiveCaseStatuses = []MotherStatus{MotherStatusPregnant, MotherStatusPostnatal}

// Mother is a woman registered to a midwife's caseload
type Mother struct {
	ID                 uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	FullName           string       `gorm:"type:varchar(255);not null;index" json:"full_name"`
	NIC                *string      `gorm:"column:nic;type:varchar(20);uniqueIndex" json:"nic,omitempty"`
	Address            string       `gorm:"type:text" json:"address"`
	ContactNumber      string       `gorm:"type:varchar(20)" json:"contact_number"`
	Password           string       `gorm:"type:text;not null" json:"-"`
	MidwifeID          uuid.UUID    `gorm:"type:uuid;not null;index" json:"midwife_id"`
	Status             MotherStatus `gorm:"type:varchar(20);not null;default:'Eligible';index" json:"status"`
	RiskLevel          RiskLevel    `gorm:"type:varchar(10);not null;default:'Low'" json:"risk_level"`
	PregnancyStartDate *time.Time   `gorm:"type:date" json:"pregnancy_start_date,omitempty"`
	DeliveryDate       *time.Time   `gorm:"type:date" json:"delivery_date,omitempty"`
	CreatedAt          time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Mother) TableName() string {
	return "mothers"
}

func (m *Mother) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// IsOwnedBy checks the mother belongs to the midwife's caseload
func (m *Mother) IsOwnedBy(midwifeID uuid.UUID) bool {
	return m.MidwifeID == midwifeID
}

// IsPregnant checks if the mother is in the antenatal phase
func (m *Mother) IsPregnant() bool {
	return m.Status == MotherStatusPregnant
}

// MotherFilter narrows a midwife's caseload listing
type MotherFilter struct {
	Search string
	Status MotherStatus
	Offset int
	Limit  int
}
