// Package store is the data access layer over the hosted Postgres
// backend. It only runs date-range-filtered selects on the five
// dashboard tables; all derivation happens in the engine.
package store

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"dashboard-engine/internal/model"
)

type Store struct {
	db *sql.DB
}

func AttachDB(db *sql.DB) *Store { return &Store{db: db} }

// Open opens a connection pool for the given DSN.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) DB() *sql.DB { return s.db }

func str(v sql.NullString) string { return v.String }

func i64(v sql.NullInt64) int64 { return v.Int64 }

func fptr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// Deals returns the deals of the window selected by f, newest finish
// first. The window applies to finish_date: a deal belongs to the
// month it was finished in. A nil filter returns the whole table.
func (s *Store) Deals(ctx context.Context, f *model.Filter) ([]model.Deal, error) {
	q := `SELECT id, id_deal, start_date, finish_date, fim_operacoes, fim_engenharia, valor_faturamento, coordenadas
		FROM deals_ploomes`
	var args []any
	if f != nil {
		start, end := f.MonthBounds()
		q += ` WHERE finish_date >= $1 AND finish_date <= $2`
		args = append(args, start, end)
	}
	q += ` ORDER BY finish_date DESC`

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Deal
	for rows.Next() {
		var (
			d                      model.Deal
			dealID                 sql.NullInt64
			startDate, finishDate  sql.NullString
			fimOps, fimEng, coords sql.NullString
			faturamento            sql.NullFloat64
		)
		if err := rows.Scan(&d.ID, &dealID, &startDate, &finishDate, &fimOps, &fimEng, &faturamento, &coords); err != nil {
			return nil, err
		}
		d.DealID = i64(dealID)
		d.StartDate = str(startDate)
		d.FinishDate = str(finishDate)
		d.FimOperacoes = str(fimOps)
		d.FimEngenharia = str(fimEng)
		d.ValorFaturamento = faturamento.Float64
		d.Coordenadas = str(coords)
		out = append(out, d)
	}
	return out, rows.Err()
}

// Pendencias returns every engineering pendency. Deliberately
// unfiltered: the backlog is not a monthly event.
func (s *Store) Pendencias(ctx context.Context) ([]model.Pendencia, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, id_deal, title FROM pendencias_engenharia ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Pendencia
	for rows.Next() {
		var (
			p      model.Pendencia
			dealID sql.NullInt64
			title  sql.NullString
		)
		if err := rows.Scan(&p.ID, &dealID, &title); err != nil {
			return nil, err
		}
		p.DealID = i64(dealID)
		p.Title = str(title)
		out = append(out, p)
	}
	return out, rows.Err()
}

// CasosVistoria returns every inspection case, also unfiltered: the
// delay alerts always look at the whole history.
func (s *Store) CasosVistoria(ctx context.Context) ([]model.CasoVistoria, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, id_deal, title, start_date, data_vistoria FROM casos_vistoria ORDER BY data_vistoria DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.CasoVistoria
	for rows.Next() {
		var (
			c                        model.CasoVistoria
			dealID                   sql.NullInt64
			title, start, vistoriada sql.NullString
		)
		if err := rows.Scan(&c.ID, &dealID, &title, &start, &vistoriada); err != nil {
			return nil, err
		}
		c.DealID = i64(dealID)
		c.Title = str(title)
		c.StartDate = str(start)
		c.DataVistoria = str(vistoriada)
		out = append(out, c)
	}
	return out, rows.Err()
}

// BudgetDeals returns the budget-vs-actual rows of the window, keyed
// on start_date_ploomes.
func (s *Store) BudgetDeals(ctx context.Context, f model.Filter) ([]model.BudgetDeal, error) {
	start, end := f.MonthBounds()
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, id_deal, valor_orcado, valor_realizado, title, tipo_bem, id_vistoriador, tipo_vistoriador, nome_vistoriador, start_date_ploomes
		FROM deals_orcadoxrealizado
		WHERE start_date_ploomes >= $1 AND start_date_ploomes <= $2`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.BudgetDeal
	for rows.Next() {
		var (
			b                           model.BudgetDeal
			dealID                      sql.NullInt64
			orcado, realizado           sql.NullFloat64
			title, tipoBem, idVist      sql.NullString
			tipoVist, nomeVist, ploomes sql.NullString
		)
		if err := rows.Scan(&b.ID, &dealID, &orcado, &realizado, &title, &tipoBem, &idVist, &tipoVist, &nomeVist, &ploomes); err != nil {
			return nil, err
		}
		b.DealID = i64(dealID)
		b.ValorOrcado = fptr(orcado)
		b.ValorRealizado = fptr(realizado)
		b.Title = str(title)
		b.TipoBem = str(tipoBem)
		b.IDVistoriador = str(idVist)
		b.TipoVistoriador = str(tipoVist)
		b.NomeVistoriador = str(nomeVist)
		b.StartDatePloomes = str(ploomes)
		out = append(out, b)
	}
	return out, rows.Err()
}

// NewInspectors counts roster rows created inside the window.
func (s *Store) NewInspectors(ctx context.Context, f model.Filter) (int, error) {
	start, end := f.MonthBounds()
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM vistoriadores WHERE data_criacao >= $1 AND data_criacao <= $2`,
		start, end).Scan(&n)
	return n, err
}

// YearlyRevenue sums valor_faturamento over the calendar year.
func (s *Store) YearlyRevenue(ctx context.Context, year int) (float64, error) {
	start, end := model.YearBounds(year)
	var total sql.NullFloat64
	err := s.db.QueryRowContext(ctx,
		`SELECT SUM(valor_faturamento) FROM deals_ploomes
		WHERE finish_date >= $1 AND finish_date < $2 AND valor_faturamento IS NOT NULL`,
		start, end).Scan(&total)
	return total.Float64, err
}
