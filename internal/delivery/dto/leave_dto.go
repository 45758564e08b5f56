package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateLeaveRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" validate:"required,min=3,max=1000"`
}

type ReviewLeaveRequest struct {
	Status     string `json:"status" validate:"required,oneof=Approved Rejected Pending"`
	MOHComment string `json:"moh_comment" validate:"omitempty,max=1000"`
}

// Response DTOs

type LeaveResponse struct {
	ID          int       `json:"id"`
	MidwifeID   uuid.UUID `json:"midwife_id"`
	MidwifeName string    `json:"midwife_name,omitempty"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Reason      string    `json:"reason"`
	Status      string    `json:"status"`
	MOHComment  string    `json:"moh_comment"`
	CreatedAt   time.Time `json:"created_at"`
}

type LeaveListResponse struct {
	LeaveRequests []LeaveResponse `json:"leave_requests"`
	Total         int             `json:"total"`
}
