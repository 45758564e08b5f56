package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID        int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uuid.UUID        `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Role      string            `gorm:"type:varchar(20)" json:"role,omitempty"`
	Action    string            `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  datatypes.JSONMap `json:"metadata,omitempty"`
	CreatedAt time.Time         `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// AuditLogFilter narrows the audit trail listing
type AuditLogFilter struct {
	Action string
	UserID *uuid.UUID
	Offset int
	Limit  int
}

// Common audit actions
const (
	AuditActionUserLogin         = "user.login"
	AuditActionUserLogout        = "user.logout"
	AuditActionPasswordChange    = "user.password_change"
	AuditActionMOHRegister       = "moh.register"
	AuditActionMidwifeRegister   = "midwife.register"
	AuditActionMidwifeStatus     = "midwife.status"
	AuditActionMotherCreate      = "mother.create"
	AuditActionMotherUpdate      = "mother.update"
	AuditActionPregnancyStart    = "careplan.start_pregnancy"
	AuditActionPregnancyUpdate   = "careplan.update_record"
	AuditActionDeliveryReport    = "careplan.report_delivery"
	AuditActionAppointmentCreate = "appointment.create"
	AuditActionAppointmentUpdate = "appointment.update"
	AuditActionAppointmentDelete = "appointment.delete"
	AuditActionVisitRecord       = "visit.record"
	AuditActionDeliveryRecord    = "record.delivery"
	AuditActionAntenatalPlan     = "record.antenatal_plan"
	AuditActionLeaveRequest      = "leave.request"
	AuditActionLeaveReview       = "leave.review"
)
