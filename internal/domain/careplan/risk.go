package careplan

import (
	"maternal-care-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// HighRiskKey selects mothers by their stored tier instead of a flag
const HighRiskKey = "high_risk"

// RiskFactor maps a filter key to a risk flag and its display label
type RiskFactor struct {
	Key    string
	Label  string
	Column string
	IsSet  func(entity.RiskFlags) bool
	// Count points at the counter this flag feeds in RiskStats
	Count func(*RiskStats) *int
}

// RiskFactors is ordered: active-risk lists follow this order.
var RiskFactors = []RiskFactor{
	{
		Key: "age", Label: "Age Risk", Column: "risk_age_lt_20_gt_35",
		IsSet: func(f entity.RiskFlags) bool { return f.AgeUnder20Over35 },
		Count: func(s *RiskStats) *int { return &s.AgeRisk },
	},
	{
		Key: "gravidity", Label: "Grand Multipara", Column: "risk_5th_pregnancy",
		IsSet: func(f entity.RiskFlags) bool { return f.FifthPregnancy },
		Count: func(s *RiskStats) *int { return &s.FifthPregnancy },
	},
	{
		Key: "interval", Label: "Short Birth Interval", Column: "risk_birth_interval_lt_1yr",
		IsSet: func(f entity.RiskFlags) bool { return f.BirthIntervalUnder1Yr },
		Count: func(s *RiskStats) *int { return &s.ShortBirthInterval },
	},
	{
		Key: "pph", Label: "History of PPH", Column: "risk_history_pph",
		IsSet: func(f entity.RiskFlags) bool { return f.HistoryPPH },
		Count: func(s *RiskStats) *int { return &s.HistoryPPH },
	},
	{
		Key: "diabetes", Label: "Diabetes", Column: "risk_diabetes",
		IsSet: func(f entity.RiskFlags) bool { return f.Diabetes },
		Count: func(s *RiskStats) *int { return &s.Diabetes },
	},
	{
		Key: "malaria", Label: "History of Malaria", Column: "risk_malaria",
		IsSet: func(f entity.RiskFlags) bool { return f.Malaria },
		Count: func(s *RiskStats) *int { return &s.Malaria },
	},
	{
		Key: "cardiac", Label: "Heart Disease", Column: "risk_cardiac",
		IsSet: func(f entity.RiskFlags) bool { return f.Cardiac },
		Count: func(s *RiskStats) *int { return &s.Cardiac },
	},
	{
		Key: "renal", Label: "Renal Disease", Column: "risk_renal",
		IsSet: func(f entity.RiskFlags) bool { return f.Renal },
		Count: func(s *RiskStats) *int { return &s.Renal },
	},
}

// LookupRiskFactor finds the factor for a filter key
func LookupRiskFactor(key string) (RiskFactor, bool) {
	for _, f := range RiskFactors {
		if f.Key == key {
			return f, true
		}
	}
	return RiskFactor{}, false
}

// ActiveRisks returns the labels of the set flags in table order
func ActiveRisks(flags entity.RiskFlags) []string {
	risks := make([]string, 0, len(RiskFactors))
	for _, f := range RiskFactors {
		if f.IsSet(flags) {
			risks = append(risks, f.Label)
		}
	}
	return risks
}

// RiskStats aggregates risk counts over a midwife's active cases
type RiskStats struct {
	TotalHighRisk      int `json:"total_high_risk"`
	AgeRisk            int `json:"age_risk"`
	FifthPregnancy     int `json:"fifth_pregnancy"`
	ShortBirthInterval int `json:"short_birth_interval"`
	HistoryPPH         int `json:"history_pph"`
	Diabetes           int `json:"diabetes"`
	Malaria            int `json:"malaria"`
	Cardiac            int `json:"cardiac"`
	Renal              int `json:"renal"`
}

// AggregateRiskStats counts stored High tiers and, for mothers that have an
// active record in records, each set risk flag.
func AggregateRiskStats(mothers []entity.Mother, records map[uuid.UUID]*entity.PregnancyRecord) RiskStats {
	var stats RiskStats
	for _, m := range mothers {
		if m.RiskLevel == entity.RiskLevelHigh {
			stats.TotalHighRisk++
		}
		rec, ok := records[m.ID]
		if !ok || rec == nil {
			continue
		}
		for _, factor := range RiskFactors {
			if factor.IsSet(rec.RiskFlags) {
				*factor.Count(&stats)++
			}
		}
	}
	return stats
}
