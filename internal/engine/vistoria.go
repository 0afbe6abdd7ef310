package engine

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"dashboard-engine/internal/model"
	"dashboard-engine/internal/worktime"
)

// Inspector roles counted as technical inspections.
var tiposTecnicos = map[string]struct{}{
	"engenheiro":       {},
	"arquiteto":        {},
	"engenheiro civil": {},
	"engenheira civil": {},
	"arquiteta":        {},
	"tec. agrimensor":  {},
}

func isTecnico(tipo string) bool {
	_, ok := tiposTecnicos[strings.ToLower(strings.TrimSpace(tipo))]
	return ok
}

func roundPercent(num, den float64) int {
	if den <= 0 {
		return 0
	}
	return int(math.Round(num / den * 100))
}

// Fixed sector goals shown next to the KPIs.
const (
	metaVistorias     = 95
	metaVistoriadores = 5
)

// VistoriaKPIs derives the inspection-sector KPI card values from the
// month's budget rows. TempoMedioOps and NovosVistoriadores are filled
// in by BuildVistoria from their own sources.
func VistoriaKPIs(rows []model.BudgetDeal) model.VistoriaKPIs {
	var totalOrcado, totalRealizado float64
	for _, r := range rows {
		if r.ValorRealizado == nil {
			continue
		}
		totalRealizado += *r.ValorRealizado
		if r.ValorOrcado != nil {
			totalOrcado += *r.ValorOrcado
		}
	}

	tecnicas := 0
	unicos := map[string]struct{}{}
	for _, r := range rows {
		if isTecnico(r.TipoVistoriador) {
			tecnicas++
		}
		if r.IDVistoriador != "" {
			unicos[r.IDVistoriador] = struct{}{}
		}
	}

	return model.VistoriaKPIs{
		OrcadoVsRealizadoPercent: roundPercent(totalRealizado, totalOrcado),
		TotalVistorias:           roundPercent(float64(tecnicas), float64(len(rows))),
		MetaVistorias:            metaVistorias,
		NovosVistoriadores:       len(unicos),
		MetaVistoriadores:        metaVistoriadores,
	}
}

// BuildVistoria joins the vistoria fetch results into the sector view
// model. newInspectors is the roster count for the month.
func BuildVistoria(rows []model.BudgetDeal, deals []model.Deal, newInspectors int, f model.Filter, clock worktime.Clock) model.VistoriaData {
	kpis := VistoriaKPIs(rows)
	kpis.TempoMedioOps = TimeMetrics(deals).Operations
	kpis.NovosVistoriadores = newInspectors

	return model.VistoriaData{
		SnapshotID:     uuid.New().String(),
		GeneratedAt:    clock.Now().UTC().Format(time.RFC3339),
		KPIs:           kpis,
		ChartData:      DailyCumulative(rows, f),
		ValorGanho:     ValorGanho(rows),
		TotalRegistros: len(rows),
	}
}
