package careplan

import (
	"reflect"
	"testing"

	"maternal-care-backend/internal/domain/entity"
)

func offsets(visits []Visit) []int {
	out := make([]int, 0, len(visits))
	for _, v := range visits {
		out = append(out, v.Offset)
	}
	return out
}

func TestGenerateANCHighRisk(t *testing.T) {
	lmp := date("2024-01-01")
	today := date("2024-03-01")

	visits := GenerateANC(&lmp, entity.RiskLevelHigh, today)

	want := []int{12, 16, 20, 24, 28, 32, 36, 40}
	if got := offsets(visits); !reflect.DeepEqual(got, want) {
		t.Fatalf("offsets = %v, want %v", got, want)
	}
	if got := visits[0].Date.Format(DateLayout); got != "2024-03-25" {
		t.Errorf("week 12 date = %s, want 2024-03-25", got)
	}
	if visits[0].Label != "Generated Visit (Week 12)" {
		t.Errorf("label = %q", visits[0].Label)
	}
}

func TestGenerateANCLowRiskFiltersPast(t *testing.T) {
	lmp := date("2024-01-01")
	today := date("2024-06-01")

	visits := GenerateANC(&lmp, entity.RiskLevelLow, today)

	if got, want := offsets(visits), []int{26, 36}; !reflect.DeepEqual(got, want) {
		t.Fatalf("offsets = %v, want %v", got, want)
	}
	for i := 1; i < len(visits); i++ {
		if !visits[i].Date.After(visits[i-1].Date) {
			t.Errorf("visits not ascending at %d", i)
		}
	}
}

func TestGenerateANCDropsToday(t *testing.T) {
	lmp := date("2024-01-01")
	today := AddWeeks(lmp, 12)

	visits := GenerateANC(&lmp, entity.RiskLevelLow, today)

	if got, want := offsets(visits), []int{26, 36}; !reflect.DeepEqual(got, want) {
		t.Errorf("visit due today should be dropped: offsets = %v, want %v", got, want)
	}
}

func TestGenerateANCWithoutAnchor(t *testing.T) {
	today := date("2024-03-01")

	visits := GenerateANC(nil, entity.RiskLevelLow, today)

	if len(visits) != 3 {
		t.Fatalf("len = %d, want 3", len(visits))
	}
	if got := visits[0].Date.Format(DateLayout); got != "2024-05-24" {
		t.Errorf("first visit = %s, want today + 12 weeks (2024-05-24)", got)
	}
}

func TestGenerateANCDeterministic(t *testing.T) {
	lmp := date("2024-01-01")
	today := date("2024-02-01")
	a := GenerateANC(&lmp, entity.RiskLevelHigh, today)
	b := GenerateANC(&lmp, entity.RiskLevelHigh, today)
	if !reflect.DeepEqual(a, b) {
		t.Error("GenerateANC should be deterministic for the same inputs")
	}
}

func TestGenerateANCAllPast(t *testing.T) {
	lmp := date("2023-01-01")
	if visits := GenerateANC(&lmp, entity.RiskLevelHigh, date("2024-03-01")); len(visits) != 0 {
		t.Errorf("expected no visits for a pregnancy past term, got %d", len(visits))
	}
}

func TestGeneratePNC(t *testing.T) {
	visits := GeneratePNC(date("2024-01-15"))

	wantDates := []string{"2024-01-18", "2024-01-22", "2024-01-29", "2024-02-26"}
	wantLabels := []string{
		"PNC Visit 1 (Day 3)", "PNC Visit 2 (Day 7)", "PNC Visit 3 (Day 14)", "PNC Visit 4 (Day 42)",
	}
	if len(visits) != len(wantDates) {
		t.Fatalf("len = %d, want %d", len(visits), len(wantDates))
	}
	for i, v := range visits {
		if got := v.Date.Format(DateLayout); got != wantDates[i] {
			t.Errorf("visit %d date = %s, want %s", i, got, wantDates[i])
		}
		if v.Label != wantLabels[i] {
			t.Errorf("visit %d label = %q, want %q", i, v.Label, wantLabels[i])
		}
	}
}

// Postnatal visits are not filtered against today, unlike antenatal ones.
func TestGeneratePNCKeepsPastVisits(t *testing.T) {
	visits := GeneratePNC(date("2020-01-01"))
	if len(visits) != 4 {
		t.Errorf("len = %d, want 4 even when every date is in the past", len(visits))
	}
}
