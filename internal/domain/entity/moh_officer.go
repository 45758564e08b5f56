package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MOHOfficer is the regional Medical Officer of Health account
type MOHOfficer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	MOHArea   string    `gorm:"column:moh_area;type:varchar(255)" json:"moh_area"`
	Email     *string   `gorm:"type:varchar(255);uniqueIndex" json:"email,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MOHOfficer) TableName() string {
	return "moh_officers"
}

func (o *MOHOfficer) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
