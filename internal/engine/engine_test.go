package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard-engine/internal/model"
)

func TestBuildDashboard(t *testing.T) {
	deals := []model.Deal{
		{
			ID: 1, DealID: 10,
			StartDate:     "2024-07-01",
			FimOperacoes:  "2024-07-02",
			FimEngenharia: "2024-07-04",
			FinishDate:    "2024-07-06",
			Coordenadas:   "-15.78, -47.93",
		},
		{ID: 2, DealID: 20, StartDate: "2024-07-03", Coordenadas: "-23.55, -46.63"},
	}
	pendencias := []model.Pendencia{{ID: 1, DealID: 33, Title: "ART pendente"}}
	casos := []model.CasoVistoria{
		{ID: 1, DealID: 44, Title: "Galpão", DataVistoria: "2024-07-04T12:00:00"},
	}

	data := BuildDashboard(deals, pendencias, casos, 6_000_000, testNow)

	require.NotEmpty(t, data.SnapshotID)
	require.NotEmpty(t, data.GeneratedAt)

	require.Len(t, data.MapPoints, 2)
	assert.Equal(t, 1, data.MapPoints[0].Volume)
	require.Len(t, data.HeatPoints, 2)

	assert.Equal(t, 5.0, data.TimeMetrics.Total)
	assert.Equal(t, 2.0, data.TimeMetrics.Engineering)

	require.Len(t, data.Tickets.Delayed, 1)
	assert.Equal(t, "VISTORIA-44", data.Tickets.Delayed[0].ID)
	require.Len(t, data.Tickets.Pending, 1)
	assert.Equal(t, "DEAL-20", data.Tickets.Pending[0].ID)
	require.Len(t, data.Tickets.Backlog, 1)
	assert.Equal(t, "DEAL-33", data.Tickets.Backlog[0].ID)

	assert.Equal(t, 50.0, data.Revenue.Current)
}

func TestBuildVistoria(t *testing.T) {
	rows := []model.BudgetDeal{
		{StartDatePloomes: "2024-07-01", ValorOrcado: f64(2000), ValorRealizado: f64(1500), TipoVistoriador: "engenheiro", IDVistoriador: "x"},
	}
	deals := []model.Deal{
		{
			StartDate:     "2024-07-01",
			FimOperacoes:  "2024-07-02",
			FimEngenharia: "2024-07-04",
			FinishDate:    "2024-07-06",
		},
	}

	data := BuildVistoria(rows, deals, 3, model.Filter{Month: 6, Year: 2024}, testNow)

	assert.Equal(t, 75, data.KPIs.OrcadoVsRealizadoPercent)
	assert.Equal(t, 3, data.KPIs.NovosVistoriadores)
	assert.Equal(t, 3.0, data.KPIs.TempoMedioOps)
	assert.Equal(t, 1, data.TotalRegistros)
	require.Len(t, data.ChartData, 31)
	assert.Equal(t, 1500.0, data.ChartData[30].Realizado)
	assert.Equal(t, 75.0, data.ValorGanho.Percentual)
}
