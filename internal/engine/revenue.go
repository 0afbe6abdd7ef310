package engine

import (
	"strconv"

	"dashboard-engine/internal/model"
	"dashboard-engine/internal/worktime"
)

// Yearly revenue milestones. The marker positions are display labels
// on the progress bar and deliberately do not line up linearly with
// the currency values (9M of 12M sits at the 50% label); the current
// percentage is always computed linearly against the 12M ceiling.
const (
	marco6M  = 6_000_000.0
	marco9M  = 9_000_000.0
	marco12M = 12_000_000.0
)

var (
	milestoneTargets = []int{11, 50, 100}
	milestoneValues  = []float64{marco6M, marco9M, marco12M}
)

// RevenueProgress computes linear goal progress for the year.
func RevenueProgress(totalRevenue float64) model.RevenueProgress {
	return model.RevenueProgress{
		Current:      round1(totalRevenue / marco12M * 100),
		TotalRevenue: totalRevenue,
		Targets:      milestoneTargets,
		TargetValues: milestoneValues,
	}
}

// minMeta keeps the earned-value denominator away from zero while a
// period has no budget yet.
const minMeta = 1000.0

// ValorGanho computes the earned-value percentage of a period: realized
// over budgeted, over the rows that carry a realized value.
func ValorGanho(rows []model.BudgetDeal) model.ValorGanho {
	var totalRealizado, totalOrcado float64
	for _, r := range rows {
		if r.ValorRealizado == nil {
			continue
		}
		totalRealizado += *r.ValorRealizado
		if r.ValorOrcado != nil {
			totalOrcado += *r.ValorOrcado
		}
	}

	meta := totalOrcado
	if meta <= 0 {
		meta = minMeta
	}
	return model.ValorGanho{
		Atual:      round2(totalRealizado),
		Meta:       round2(meta),
		Percentual: round1(totalRealizado / meta * 100),
	}
}

// DailyCumulative buckets budget rows into the calendar days of the
// filter month and emits one point per day with running totals, zero
// days included.
func DailyCumulative(rows []model.BudgetDeal, f model.Filter) []model.DailyPoint {
	days := f.DaysInMonth()

	orcadoByDay := make([]float64, days+1)
	realizadoByDay := make([]float64, days+1)
	for _, r := range rows {
		t, ok := worktime.ParseStamp(r.StartDatePloomes)
		if !ok {
			continue
		}
		day := t.Day()
		if day < 1 || day > days {
			continue
		}
		if r.ValorOrcado != nil {
			orcadoByDay[day] += *r.ValorOrcado
		}
		if r.ValorRealizado != nil {
			realizadoByDay[day] += *r.ValorRealizado
		}
	}

	points := make([]model.DailyPoint, 0, days)
	var acumOrcado, acumRealizado float64
	for day := 1; day <= days; day++ {
		acumOrcado += orcadoByDay[day]
		acumRealizado += realizadoByDay[day]
		points = append(points, model.DailyPoint{
			Name:      strconv.Itoa(day),
			Orcado:    round2(acumOrcado),
			Realizado: round2(acumRealizado),
		})
	}
	return points
}
