package careplan

import (
	"reflect"
	"testing"

	"maternal-care-backend/internal/domain/entity"

	"github.com/google/uuid"
)

func TestActiveRisksOrder(t *testing.T) {
	flags := entity.RiskFlags{Renal: true, AgeUnder20Over35: true, Diabetes: true}
	got := ActiveRisks(flags)
	want := []string{"Age Risk", "Diabetes", "Renal Disease"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ActiveRisks() = %v, want %v", got, want)
	}
}

func TestActiveRisksAllFlags(t *testing.T) {
	flags := entity.RiskFlags{
		AgeUnder20Over35: true, FifthPregnancy: true, BirthIntervalUnder1Yr: true, HistoryPPH: true,
		Diabetes: true, Malaria: true, Cardiac: true, Renal: true,
	}
	want := []string{
		"Age Risk", "Grand Multipara", "Short Birth Interval", "History of PPH",
		"Diabetes", "History of Malaria", "Heart Disease", "Renal Disease",
	}
	if got := ActiveRisks(flags); !reflect.DeepEqual(got, want) {
		t.Errorf("ActiveRisks() = %v, want %v", got, want)
	}
	if got := ActiveRisks(entity.RiskFlags{}); len(got) != 0 {
		t.Errorf("ActiveRisks(none) = %v, want empty", got)
	}
}

func TestLookupRiskFactor(t *testing.T) {
	f, ok := LookupRiskFactor("cardiac")
	if !ok || f.Column != "risk_cardiac" {
		t.Errorf("LookupRiskFactor(cardiac) = %+v, %v", f, ok)
	}
	if !f.IsSet(entity.RiskFlags{Cardiac: true}) {
		t.Error("cardiac factor should read the Cardiac flag")
	}
	if _, ok := LookupRiskFactor(HighRiskKey); ok {
		t.Error("high_risk is a tier filter, not a flag")
	}
	if _, ok := LookupRiskFactor("unknown"); ok {
		t.Error("LookupRiskFactor(unknown) should fail")
	}
}

func TestAggregateRiskStats(t *testing.T) {
	high := entity.Mother{ID: uuid.New(), RiskLevel: entity.RiskLevelHigh}
	low := entity.Mother{ID: uuid.New(), RiskLevel: entity.RiskLevelLow}
	noRecord := entity.Mother{ID: uuid.New(), RiskLevel: entity.RiskLevelHigh}

	records := map[uuid.UUID]*entity.PregnancyRecord{
		high.ID: {RiskFlags: entity.RiskFlags{Diabetes: true, Cardiac: true}},
		low.ID:  {RiskFlags: entity.RiskFlags{AgeUnder20Over35: true}},
	}

	got := AggregateRiskStats([]entity.Mother{high, low, noRecord}, records)
	want := RiskStats{TotalHighRisk: 2, Diabetes: 1, Cardiac: 1, AgeRisk: 1}
	if got != want {
		t.Errorf("AggregateRiskStats() = %+v, want %+v", got, want)
	}
}

func TestRiskFactorsFeedDistinctCounters(t *testing.T) {
	var stats RiskStats
	seen := make(map[*int]string, len(RiskFactors))
	for _, f := range RiskFactors {
		counter := f.Count(&stats)
		if prev, dup := seen[counter]; dup {
			t.Errorf("factors %s and %s share a counter", prev, f.Key)
		}
		seen[counter] = f.Key
	}

	mother := entity.Mother{ID: uuid.New()}
	records := map[uuid.UUID]*entity.PregnancyRecord{
		mother.ID: {RiskFlags: entity.RiskFlags{
			AgeUnder20Over35: true, FifthPregnancy: true, BirthIntervalUnder1Yr: true, HistoryPPH: true,
			Diabetes: true, Malaria: true, Cardiac: true, Renal: true,
		}},
	}
	got := AggregateRiskStats([]entity.Mother{mother}, records)
	for _, f := range RiskFactors {
		if n := *f.Count(&got); n != 1 {
			t.Errorf("%s count = %d, want 1", f.Key, n)
		}
	}
	if got.TotalHighRisk != 0 {
		t.Errorf("total high risk = %d, want 0 for a Low tier", got.TotalHighRisk)
	}
}
