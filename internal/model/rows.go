package model

// Row types mirror the five backend tables. Timestamp columns are kept
// as raw strings because the source data mixes ISO dates, unix-second
// numbers and zero sentinels; worktime.ParseStamp is the only place
// that interprets them.

// Deal is one unit of work moving through the pipeline:
// start -> operations -> fim_operacoes -> engineering -> fim_engenharia -> operations -> finish.
type Deal struct {
	ID               int64   `json:"id"`
	DealID           int64   `json:"id_deal"`
	StartDate        string  `json:"start_date"`
	FinishDate       string  `json:"finish_date"`
	FimOperacoes     string  `json:"fim_operacoes"`
	FimEngenharia    string  `json:"fim_engenharia"`
	ValorFaturamento float64 `json:"valor_faturamento"`
	Coordenadas      string  `json:"coordenadas"`
}

// Pendencia is an open engineering pendency. The table is always read
// unfiltered: pendencies are a backlog, not a monthly event.
type Pendencia struct {
	ID     int64  `json:"id"`
	DealID int64  `json:"id_deal"`
	Title  string `json:"title"`
}

// CasoVistoria is an inspection case; DataVistoria is the instant the
// inspection happened, measured against now for the delay alerts.
type CasoVistoria struct {
	ID           int64  `json:"id"`
	DealID       int64  `json:"id_deal"`
	Title        string `json:"title"`
	StartDate    string `json:"start_date"`
	DataVistoria string `json:"data_vistoria"`
}

// BudgetDeal is one budget-vs-actual record. ValorOrcado and
// ValorRealizado are pointers because "no value yet" and "value zero"
// mean different things to the KPI math.
type BudgetDeal struct {
	ID               int64    `json:"id"`
	DealID           int64    `json:"id_deal"`
	ValorOrcado      *float64 `json:"valor_orcado"`
	ValorRealizado   *float64 `json:"valor_realizado"`
	Title            string   `json:"title"`
	TipoBem          string   `json:"tipo_bem"`
	IDVistoriador    string   `json:"id_vistoriador"`
	TipoVistoriador  string   `json:"tipo_vistoriador"`
	NomeVistoriador  string   `json:"nome_vistoriador"`
	StartDatePloomes string   `json:"start_date_ploomes"`
}
