package entity

import (
	"time"

	"github.com/google/uuid"
)

// LeaveStatus represents the MOH decision on a leave request
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "Pending"
	LeaveStatusApproved LeaveStatus = "Approved"
	LeaveStatusRejected LeaveStatus = "Rejected"
)

// LeaveRequest is a midwife's request for absence
type LeaveRequest struct {
	ID         int         `gorm:"primaryKey;autoIncrement" json:"id"`
	MidwifeID  uuid.UUID   `gorm:"type:uuid;not null;index" json:"midwife_id"`
	StartDate  time.Time   `gorm:"type:date;not null" json:"start_date"`
	EndDate    time.Time   `gorm:"type:date;not null" json:"end_date"`
	Reason     string      `gorm:"type:text;not null" json:"reason"`
	Status     LeaveStatus `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"`
	MOHComment string      `gorm:"column:moh_comment;type:text" json:"moh_comment"`
	CreatedAt  time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time   `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Midwife *Midwife `gorm:"foreignKey:MidwifeID" json:"midwife,omitempty"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// IsRejected checks if the MOH turned the request down
func (l *LeaveRequest) IsRejected() bool {
	return l.Status == LeaveStatusRejected
}
