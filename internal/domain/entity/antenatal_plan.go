package entity

import (
	"time"

	"github.com/google/uuid"
)

// ParentcraftClass records one antenatal class and who attended it
type ParentcraftClass struct {
	Date    *time.Time `gorm:"column:date;type:date" json:"date,omitempty"`
	Husband bool       `gorm:"column:husband;not null" json:"husband"`
	Wife    bool       `gorm:"column:wife;not null" json:"wife"`
	Other   string     `gorm:"column:other;type:varchar(100)" json:"other"`
}

// HandoutLoan tracks when a booklet or leaflet went out and came back
type HandoutLoan struct {
	Issued   *time.Time `gorm:"column:issued;type:date" json:"issued,omitempty"`
	Returned *time.Time `gorm:"column:returned;type:date" json:"returned,omitempty"`
}

// AntenatalPlan is the birth-preparedness page of the pregnancy record
type AntenatalPlan struct {
	ID             int        `gorm:"primaryKey;autoIncrement" json:"id"`
	MotherID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"mother_id"`
	NextClinicDate *time.Time `gorm:"type:date" json:"next_clinic_date,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`

	FirstClass  ParentcraftClass `gorm:"embedded;embeddedPrefix:class_1st_" json:"class_1st"`
	SecondClass ParentcraftClass `gorm:"embedded;embeddedPrefix:class_2nd_" json:"class_2nd"`
	ThirdClass  ParentcraftClass `gorm:"embedded;embeddedPrefix:class_3rd_" json:"class_3rd"`

	BookAntenatal     HandoutLoan `gorm:"embedded;embeddedPrefix:book_antenatal_" json:"book_antenatal"`
	BookBreastfeeding HandoutLoan `gorm:"embedded;embeddedPrefix:book_breastfeeding_" json:"book_breastfeeding"`
	BookECCD          HandoutLoan `gorm:"embedded;embeddedPrefix:book_eccd_" json:"book_eccd"`
	LeafletFP         HandoutLoan `gorm:"embedded;embeddedPrefix:leaflet_fp_" json:"leaflet_fp"`

	EmergencyContactName    string `gorm:"type:varchar(255)" json:"emergency_contact_name"`
	EmergencyContactAddress string `gorm:"type:text" json:"emergency_contact_address"`
	EmergencyContactPhone   string `gorm:"type:varchar(20)" json:"emergency_contact_phone"`
	MOHOfficePhone          string `gorm:"column:moh_office_phone;type:varchar(20)" json:"moh_office_phone"`
	PHMPhone                string `gorm:"column:phm_phone;type:varchar(20)" json:"phm_phone"`
	GramaNiladhariDivision  string `gorm:"type:varchar(255)" json:"grama_niladhari_division"`
}

func (AntenatalPlan) TableName() string {
	return "antenatal_plans"
}
