package engine

import (
	"time"

	"github.com/google/uuid"

	"dashboard-engine/internal/geo"
	"dashboard-engine/internal/model"
	"dashboard-engine/internal/worktime"
)

// BuildDashboard joins the general-dashboard fetch results into the
// view model. deals carry the period filter; pendencias and casos are
// the full history by contract.
func BuildDashboard(deals []model.Deal, pendencias []model.Pendencia, casos []model.CasoVistoria, yearlyRevenue float64, clock worktime.Clock) model.DashboardData {
	return model.DashboardData{
		SnapshotID:  uuid.New().String(),
		GeneratedAt: clock.Now().UTC().Format(time.RFC3339),
		MapPoints:   geo.MapPoints(deals),
		HeatPoints:  geo.HeatPoints(deals),
		TimeMetrics: TimeMetrics(deals),
		Tickets: model.Tickets{
			Delayed: DelayedTickets(casos, clock),
			Pending: PendingTickets(deals),
			Backlog: PendencyTickets(pendencias),
		},
		Revenue: RevenueProgress(yearlyRevenue),
	}
}
