package model

// View models returned to the presentation layer.

const (
	StatusDelayed = "delayed"
	StatusPending = "pending"
)

// MapPoint is a per-region aggregate plotted at the region's static
// display coordinate (percentages over the map SVG).
type MapPoint struct {
	ID     string  `json:"id"`
	State  string  `json:"state"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Volume int     `json:"volume"`
}

// HeatPoint is one raw geocoded deal, kept unaggregated for the
// detailed heat layer.
type HeatPoint struct {
	ID  string  `json:"id"`
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type TicketAlert struct {
	ID     string `json:"id"`
	Client string `json:"client"`
	Info   string `json:"info"`
	Status string `json:"status"`
}

// Tickets groups the alert lists. Delayed and Backlog always cover the
// full history regardless of the selected period; Pending comes from
// the period-filtered deal set.
type Tickets struct {
	Delayed []TicketAlert `json:"delayed"`
	Pending []TicketAlert `json:"pending"`
	Backlog []TicketAlert `json:"backlog"`
}

// TimeMetrics holds average stage durations in days, one decimal.
type TimeMetrics struct {
	Total       float64 `json:"total"`
	Operations  float64 `json:"operations"`
	Engineering float64 `json:"engineering"`
}

// RevenueProgress reports linear progress against the yearly revenue
// goal. Targets are the display positions of the milestone markers and
// TargetValues the currency amounts they label; the marker mapping is
// intentionally non-linear and is never used to compute Current.
type RevenueProgress struct {
	Current      float64   `json:"current"`
	TotalRevenue float64   `json:"totalRevenue"`
	Targets      []int     `json:"targets"`
	TargetValues []float64 `json:"targetValues"`
}

type DashboardData struct {
	SnapshotID  string          `json:"snapshot_id"`
	GeneratedAt string          `json:"generated_at"`
	MapPoints   []MapPoint      `json:"mapPoints"`
	HeatPoints  []HeatPoint     `json:"heatPoints"`
	TimeMetrics TimeMetrics     `json:"timeMetrics"`
	Tickets     Tickets         `json:"tickets"`
	Revenue     RevenueProgress `json:"revenue"`
}

// DailyPoint is one day of the cumulative orçado/realizado chart.
// Name is the day of month as a string, matching the chart axis.
type DailyPoint struct {
	Name      string  `json:"name"`
	Orcado    float64 `json:"orcado"`
	Realizado float64 `json:"realizado"`
}

type VistoriaKPIs struct {
	OrcadoVsRealizadoPercent int     `json:"orcadoVsRealizadoPercent"`
	TotalVistorias           int     `json:"totalVistorias"`
	MetaVistorias            int     `json:"metaVistorias"`
	NovosVistoriadores       int     `json:"novosVistoriadores"`
	MetaVistoriadores        int     `json:"metaVistoriadores"`
	TempoMedioOps            float64 `json:"tempoMedioOps"`
}

type ValorGanho struct {
	Atual      float64 `json:"atual"`
	Meta       float64 `json:"meta"`
	Percentual float64 `json:"percentual"`
}

type VistoriaData struct {
	SnapshotID     string       `json:"snapshot_id"`
	GeneratedAt    string       `json:"generated_at"`
	KPIs           VistoriaKPIs `json:"kpis"`
	ChartData      []DailyPoint `json:"chartData"`
	ValorGanho     ValorGanho   `json:"valorGanho"`
	TotalRegistros int          `json:"totalRegistros"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
