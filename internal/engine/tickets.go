package engine

import (
	"fmt"
	"sort"

	"dashboard-engine/internal/model"
	"dashboard-engine/internal/worktime"
)

// DelayThresholdHours is the business-time SLA for inspection cases.
const DelayThresholdHours = 48

const hoursPerDay = 24

const maxPendingTickets = 10

func ticketRef(dealID, id int64) int64 {
	if dealID != 0 {
		return dealID
	}
	return id
}

func delayLabel(hours float64) string {
	days := int(hours) / hoursPerDay
	rest := int(hours) % hoursPerDay
	if days > 0 {
		return fmt.Sprintf("%dd %dh úteis em aberto", days, rest)
	}
	return fmt.Sprintf("%dh úteis em aberto", int(hours))
}

// DelayedTickets returns the inspection cases whose inspection happened
// more than DelayThresholdHours business hours ago, most overdue first.
func DelayedTickets(casos []model.CasoVistoria, clock worktime.Clock) []model.TicketAlert {
	type delayed struct {
		caso  model.CasoVistoria
		hours float64
	}

	var late []delayed
	for _, c := range casos {
		hours := worktime.BusinessHoursSince(c.DataVistoria, clock)
		if hours > DelayThresholdHours {
			late = append(late, delayed{caso: c, hours: hours})
		}
	}
	sort.SliceStable(late, func(i, j int) bool {
		return late[i].hours > late[j].hours
	})

	tickets := make([]model.TicketAlert, 0, len(late))
	for _, d := range late {
		ref := ticketRef(d.caso.DealID, d.caso.ID)
		client := d.caso.Title
		if client == "" {
			client = fmt.Sprintf("Caso #%d", ref)
		}
		tickets = append(tickets, model.TicketAlert{
			ID:     fmt.Sprintf("VISTORIA-%d", ref),
			Client: client,
			Info:   delayLabel(d.hours),
			Status: model.StatusDelayed,
		})
	}
	return tickets
}

// PendingTickets lists deals that started but never finished, in input
// order, capped at ten entries.
func PendingTickets(deals []model.Deal) []model.TicketAlert {
	var tickets []model.TicketAlert
	for _, d := range deals {
		if _, ok := worktime.ParseStamp(d.StartDate); !ok {
			continue
		}
		if _, ok := worktime.ParseStamp(d.FinishDate); ok {
			continue
		}
		ref := ticketRef(d.DealID, d.ID)
		tickets = append(tickets, model.TicketAlert{
			ID:     fmt.Sprintf("DEAL-%d", ref),
			Client: fmt.Sprintf("Deal #%d", ref),
			Info:   "Aguardando conclusão",
			Status: model.StatusPending,
		})
		if len(tickets) == maxPendingTickets {
			break
		}
	}
	return tickets
}

// PendencyTickets surfaces the whole engineering backlog. The caller
// fetches pendencias unfiltered; period selection never applies here.
func PendencyTickets(pendencias []model.Pendencia) []model.TicketAlert {
	tickets := make([]model.TicketAlert, 0, len(pendencias))
	for _, p := range pendencias {
		ref := ticketRef(p.DealID, p.ID)
		client := p.Title
		if client == "" {
			client = fmt.Sprintf("Deal #%d", ref)
		}
		tickets = append(tickets, model.TicketAlert{
			ID:     fmt.Sprintf("DEAL-%d", ref),
			Client: client,
			Info:   fmt.Sprintf("DEAL-%d", ref),
			Status: model.StatusPending,
		})
	}
	return tickets
}
