package dto

import (
	"time"

	"github.com/google/uuid"
)

type AuditLogQuery struct {
	Action string
	UserID *uuid.UUID
	Page   int
	Limit  int
}

// Response DTOs

type AuditLogResponse struct {
	ID        int64                  `json:"id"`
	UserID    *uuid.UUID             `json:"user_id,omitempty"`
	Role      string                 `json:"role,omitempty"`
	Action    string                 `json:"action"`
	Metadata  map[string]interface{} `json:"metadata"`
	CreatedAt time.Time              `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
