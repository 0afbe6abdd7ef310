package engine

import (
	"testing"

	"dashboard-engine/internal/model"
)

func TestTimeMetricsEmpty(t *testing.T) {
	m := TimeMetrics(nil)
	if m.Total != 0 || m.Operations != 0 || m.Engineering != 0 {
		t.Fatalf("expected zeroed metrics, got %+v", m)
	}
}

func TestTimeMetricsSingleDeal(t *testing.T) {
	// start=day0, fim_operacoes=day1, fim_engenharia=day3, finish=day5:
	// total 5.0, engineering 2.0, operations 1+2=3.0.
	deals := []model.Deal{{
		StartDate:     "2024-03-01",
		FimOperacoes:  "2024-03-02",
		FimEngenharia: "2024-03-04",
		FinishDate:    "2024-03-06",
	}}

	m := TimeMetrics(deals)
	if m.Total != 5.0 {
		t.Fatalf("expected total 5.0, got %v", m.Total)
	}
	if m.Engineering != 2.0 {
		t.Fatalf("expected engineering 2.0, got %v", m.Engineering)
	}
	if m.Operations != 3.0 {
		t.Fatalf("expected operations 3.0, got %v", m.Operations)
	}
}

func TestTimeMetricsIndependentSubsets(t *testing.T) {
	deals := []model.Deal{
		// Contributes to total only.
		{StartDate: "2024-03-01", FinishDate: "2024-03-03"},
		// Contributes to engineering only.
		{FimOperacoes: "2024-03-01", FimEngenharia: "2024-03-05"},
		// Contributes to all three.
		{
			StartDate:     "2024-03-01",
			FimOperacoes:  "2024-03-02",
			FimEngenharia: "2024-03-04",
			FinishDate:    "2024-03-06",
		},
		// Sentinel stamps: contributes nowhere.
		{StartDate: "0", FinishDate: "2024-03-10"},
	}

	m := TimeMetrics(deals)
	if m.Total != 3.5 { // (2 + 5) / 2
		t.Fatalf("expected total 3.5, got %v", m.Total)
	}
	if m.Engineering != 3.0 { // (4 + 2) / 2
		t.Fatalf("expected engineering 3.0, got %v", m.Engineering)
	}
	if m.Operations != 3.0 { // single eligible deal
		t.Fatalf("expected operations 3.0, got %v", m.Operations)
	}
}

func TestTimeMetricsRounding(t *testing.T) {
	deals := []model.Deal{
		{StartDate: "2024-03-01T00:00:00", FinishDate: "2024-03-02T08:00:00"}, // 1.333... days
	}
	if m := TimeMetrics(deals); m.Total != 1.3 {
		t.Fatalf("expected total 1.3, got %v", m.Total)
	}
}
