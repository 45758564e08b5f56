package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Midwife is a field officer who owns a caseload of mothers
type Midwife struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Username           string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Password           string     `gorm:"type:text;not null" json:"-"`
	FullName           string     `gorm:"type:varchar(255);not null" json:"full_name"`
	NIC                string     `gorm:"column:nic;type:varchar(20);uniqueIndex;not null" json:"nic"`
	DateOfBirth        *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	PhoneNumber        string     `gorm:"type:varchar(20);index" json:"phone_number"`
	Email              *string    `gorm:"type:varchar(255);uniqueIndex" json:"email,omitempty"`
	ResidentialAddress string     `gorm:"type:text" json:"residential_address"`
	SLMCRegNo          string     `gorm:"column:slmc_reg_no;type:varchar(50)" json:"slmc_reg_no"`
	ServiceGrade       string     `gorm:"type:varchar(50)" json:"service_grade"`
	AssignedMOHArea    string     `gorm:"column:assigned_moh_area;type:varchar(255)" json:"assigned_moh_area"`
	IsActive           *bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Midwife) TableName() string {
	return "midwives"
}

func (m *Midwife) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// IsSuspended reports whether the MOH has deactivated the account
func (m *Midwife) IsSuspended() bool {
	return m.IsActive != nil && !*m.IsActive
}
