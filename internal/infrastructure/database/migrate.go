package database

import (
	"fmt"

	"maternal-care-backend/internal/domain/entity"

	"gorm.io/gorm"
)

// Models lists every table owned by the service, in dependency order.
func Models() []interface{} {
	return []interface{}{
		&entity.MOHOfficer{},
		&entity.Midwife{},
		&entity.Mother{},
		&entity.PregnancyRecord{},
		&entity.PastPregnancy{},
		&entity.Appointment{},
		&entity.ANCVisit{},
		&entity.PNCVisit{},
		&entity.DeliveryRecord{},
		&entity.AntenatalPlan{},
		&entity.LeaveRequest{},
		&entity.AuditLog{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
