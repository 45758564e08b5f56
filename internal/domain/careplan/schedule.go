package careplan

import (
	"fmt"
	"time"

	"maternal-care-backend/internal/domain/entity"
)

var (
	highRiskANCWeeks = []int{12, 16, 20, 24, 28, 32, 36, 40}
	standardANCWeeks = []int{12, 26, 36}
	pncDays          = []int{3, 7, 14, 42}
)

// Visit is one entry of a generated care schedule
type Visit struct {
	Date   time.Time
	Offset int
	Label  string
}

// ANCWeeks returns the antenatal visit weeks for a tier
func ANCWeeks(tier entity.RiskLevel) []int {
	if tier == entity.RiskLevelHigh {
		return highRiskANCWeeks
	}
	return standardANCWeeks
}

// GenerateANC builds the antenatal schedule from the LMP anchor, or from
// today when the anchor is unknown. Visits not strictly after today are dropped.
func GenerateANC(anchor *time.Time, tier entity.RiskLevel, today time.Time) []Visit {
	today = DateOf(today)
	base := today
	if anchor != nil {
		base = DateOf(*anchor)
	}

	weeks := ANCWeeks(tier)
	visits := make([]Visit, 0, len(weeks))
	for _, week := range weeks {
		date := AddWeeks(base, week)
		if !date.After(today) {
			continue
		}
		visits = append(visits, Visit{
			Date:   date,
			Offset: week,
			Label:  fmt.Sprintf("Generated Visit (Week %d)", week),
		})
	}
	return visits
}

// GeneratePNC builds the postnatal schedule from the delivery date.
// Past dates are kept so a late delivery report still records every visit.
func GeneratePNC(delivery time.Time) []Visit {
	visits := make([]Visit, 0, len(pncDays))
	for i, day := range pncDays {
		visits = append(visits, Visit{
			Date:   AddDays(delivery, day),
			Offset: day,
			Label:  fmt.Sprintf("PNC Visit %d (Day %d)", i+1, day),
		})
	}
	return visits
}
