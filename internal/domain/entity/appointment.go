package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "Scheduled"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// VisitType distinguishes generated care-plan visits from manual ones
type VisitType string

const (
	VisitTypeANC       VisitType = "ANC"
	VisitTypePNC       VisitType = "PNC"
	VisitTypeClinic    VisitType = "Clinic"
	VisitTypeHomeVisit VisitType = "Home Visit"
)

// GeneratedVisitTypes are the visit types owned by the care plan engine
var GeneratedVisitTypes = []VisitType{VisitTypeANC, VisitTypePNC}

// Appointment is a scheduled contact between a midwife and a mother
type Appointment struct {
	ID        int               `gorm:"primaryKey;autoIncrement" json:"id"`
	MidwifeID uuid.UUID         `gorm:"type:uuid;not null;index" json:"midwife_id"`
	MotherID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"mother_id"`
	DateTime  time.Time         `gorm:"not null;index" json:"date_time"`
	VisitType VisitType         `gorm:"type:varchar(20);not null;default:'Home Visit'" json:"visit_type"`
	Status    AppointmentStatus `gorm:"type:varchar(20);not null;default:'Scheduled';index" json:"status"`
	Notes     string            `gorm:"type:text" json:"notes"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Mother *Mother `gorm:"foreignKey:MotherID" json:"mother,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsScheduled checks if the appointment is still pending
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}

// Complete marks the appointment as attended
func (a *Appointment) Complete() {
	a.Status = AppointmentStatusCompleted
}

// AppointmentFilter narrows appointment listings to a date range
type AppointmentFilter struct {
	From *time.Time
	To   *time.Time
}
