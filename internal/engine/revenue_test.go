package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard-engine/internal/model"
)

func f64(v float64) *float64 { return &v }

func TestRevenueProgressLinear(t *testing.T) {
	assert.Equal(t, 100.0, RevenueProgress(12_000_000).Current)
	// Linear against the 12M ceiling, independent of the 11% marker label.
	assert.Equal(t, 50.0, RevenueProgress(6_000_000).Current)
	assert.Equal(t, 75.0, RevenueProgress(9_000_000).Current)
	assert.Equal(t, 0.0, RevenueProgress(0).Current)

	p := RevenueProgress(3_300_000)
	assert.Equal(t, 27.5, p.Current)
	assert.Equal(t, []int{11, 50, 100}, p.Targets)
	assert.Equal(t, []float64{6_000_000, 9_000_000, 12_000_000}, p.TargetValues)
}

func TestValorGanho(t *testing.T) {
	rows := []model.BudgetDeal{
		{ValorOrcado: f64(1000), ValorRealizado: f64(800)},
		{ValorOrcado: f64(3000), ValorRealizado: f64(2200)},
		// No realized value: excluded entirely.
		{ValorOrcado: f64(9999)},
	}

	vg := ValorGanho(rows)
	assert.Equal(t, 3000.0, vg.Atual)
	assert.Equal(t, 4000.0, vg.Meta)
	assert.Equal(t, 75.0, vg.Percentual)
}

func TestValorGanhoDenominatorFloor(t *testing.T) {
	// No budget yet: the denominator floors at 1000 instead of blowing up.
	rows := []model.BudgetDeal{{ValorRealizado: f64(250)}}
	vg := ValorGanho(rows)
	assert.Equal(t, 1000.0, vg.Meta)
	assert.Equal(t, 25.0, vg.Percentual)

	empty := ValorGanho(nil)
	assert.Equal(t, 0.0, empty.Percentual)
}

func TestDailyCumulative(t *testing.T) {
	filter := model.Filter{Month: 1, Year: 2024} // February 2024, leap year

	rows := []model.BudgetDeal{
		{StartDatePloomes: "2024-02-01", ValorOrcado: f64(100), ValorRealizado: f64(50)},
		{StartDatePloomes: "2024-02-01", ValorOrcado: f64(100)},
		{StartDatePloomes: "2024-02-10", ValorRealizado: f64(75)},
		{StartDatePloomes: "", ValorOrcado: f64(999)}, // unparsable date: dropped
	}

	points := DailyCumulative(rows, filter)
	require.Len(t, points, 29)

	assert.Equal(t, "1", points[0].Name)
	assert.Equal(t, 200.0, points[0].Orcado)
	assert.Equal(t, 50.0, points[0].Realizado)

	// Days without activity still appear, carrying the running totals.
	assert.Equal(t, 200.0, points[8].Orcado)
	assert.Equal(t, 50.0, points[8].Realizado)

	assert.Equal(t, 125.0, points[9].Realizado)
	assert.Equal(t, "29", points[28].Name)
	assert.Equal(t, 200.0, points[28].Orcado)
	assert.Equal(t, 125.0, points[28].Realizado)
}

func TestVistoriaKPIs(t *testing.T) {
	rows := []model.BudgetDeal{
		{ValorOrcado: f64(1000), ValorRealizado: f64(900), TipoVistoriador: "Engenheiro", IDVistoriador: "a"},
		{ValorOrcado: f64(1000), ValorRealizado: f64(600), TipoVistoriador: " arquiteta ", IDVistoriador: "b"},
		{TipoVistoriador: "corretor", IDVistoriador: "a"},
		{TipoVistoriador: ""},
	}

	kpis := VistoriaKPIs(rows)
	assert.Equal(t, 75, kpis.OrcadoVsRealizadoPercent) // 1500/2000
	assert.Equal(t, 50, kpis.TotalVistorias)           // 2 technical of 4
	assert.Equal(t, 95, kpis.MetaVistorias)
	assert.Equal(t, 2, kpis.NovosVistoriadores) // unique inspector ids
	assert.Equal(t, 5, kpis.MetaVistoriadores)

	empty := VistoriaKPIs(nil)
	assert.Zero(t, empty.OrcadoVsRealizadoPercent)
	assert.Zero(t, empty.TotalVistorias)
}
