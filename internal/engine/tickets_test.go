package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard-engine/internal/model"
	"dashboard-engine/internal/worktime"
)

// Wednesday 2024-07-10 12:00 UTC; the preceding week has no holidays.
var testNow = worktime.FixedClock{Instant: time.Date(2024, time.July, 10, 12, 0, 0, 0, time.UTC)}

func TestDelayedTickets(t *testing.T) {
	casos := []model.CasoVistoria{
		// Friday 12:00 -> Wednesday 12:00 = 72 business hours.
		{ID: 1, DealID: 100, Title: "Caso antigo", DataVistoria: "2024-07-05T12:00:00"},
		// Tuesday 12:00 -> Wednesday 12:00 = 24 business hours: on time.
		{ID: 2, DealID: 200, Title: "Caso recente", DataVistoria: "2024-07-09T12:00:00"},
		// Monday 12:00 -> Wednesday 12:00 = 48h: not strictly over.
		{ID: 3, DealID: 300, Title: "No limite", DataVistoria: "2024-07-08T12:00:00"},
		// Thursday 12:00 -> Wednesday 12:00 = 96 business hours.
		{ID: 4, DealID: 400, Title: "Mais antigo", DataVistoria: "2024-07-04T12:00:00"},
		// Unset inspection date contributes zero hours.
		{ID: 5, DealID: 500, Title: "Sem data", DataVistoria: "0"},
	}

	tickets := DelayedTickets(casos, testNow)
	require.Len(t, tickets, 2)

	// Most overdue first.
	assert.Equal(t, "VISTORIA-400", tickets[0].ID)
	assert.Equal(t, "4d 0h úteis em aberto", tickets[0].Info)
	assert.Equal(t, "VISTORIA-100", tickets[1].ID)
	assert.Equal(t, "3d 0h úteis em aberto", tickets[1].Info)
	for _, tk := range tickets {
		assert.Equal(t, model.StatusDelayed, tk.Status)
	}
}

func TestDelayLabel(t *testing.T) {
	assert.Equal(t, "2d 2h úteis em aberto", delayLabel(50.9))
	assert.Equal(t, "1d 0h úteis em aberto", delayLabel(24.0))
	assert.Equal(t, "23h úteis em aberto", delayLabel(23.7))
}

func TestPendingTicketsCap(t *testing.T) {
	var deals []model.Deal
	for i := 1; i <= 25; i++ {
		deals = append(deals, model.Deal{ID: int64(i), DealID: int64(1000 + i), StartDate: "2024-07-01"})
	}
	// Finished and never-started deals are not pending.
	deals = append(deals,
		model.Deal{ID: 30, StartDate: "2024-07-01", FinishDate: "2024-07-05"},
		model.Deal{ID: 31},
	)

	tickets := PendingTickets(deals)
	require.Len(t, tickets, 10)

	// Stable input order, not re-sorted.
	for i, tk := range tickets {
		assert.Equal(t, fmt.Sprintf("DEAL-%d", 1001+i), tk.ID)
		assert.Equal(t, "Aguardando conclusão", tk.Info)
		assert.Equal(t, model.StatusPending, tk.Status)
	}
}

func TestPendencyTickets(t *testing.T) {
	pendencias := []model.Pendencia{
		{ID: 1, DealID: 42, Title: "Laudo pendente"},
		{ID: 2, Title: ""},
	}

	tickets := PendencyTickets(pendencias)
	require.Len(t, tickets, 2)
	assert.Equal(t, "DEAL-42", tickets[0].ID)
	assert.Equal(t, "Laudo pendente", tickets[0].Client)
	assert.Equal(t, "DEAL-2", tickets[1].ID)
	assert.Equal(t, "Deal #2", tickets[1].Client)
}
