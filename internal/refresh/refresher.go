// Package refresh owns the fetch-and-aggregate cycle: all table reads
// for a view fan out concurrently, join, and only then feed the
// engine. A generation counter makes the last requested filter win;
// results for superseded filters are dropped, never published.
package refresh

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"dashboard-engine/internal/engine"
	"dashboard-engine/internal/logger"
	"dashboard-engine/internal/metrics"
	"dashboard-engine/internal/model"
	"dashboard-engine/internal/worktime"
)

// DataSource is the query boundary over the five backend tables.
type DataSource interface {
	Deals(ctx context.Context, f *model.Filter) ([]model.Deal, error)
	Pendencias(ctx context.Context) ([]model.Pendencia, error)
	CasosVistoria(ctx context.Context) ([]model.CasoVistoria, error)
	BudgetDeals(ctx context.Context, f model.Filter) ([]model.BudgetDeal, error)
	NewInspectors(ctx context.Context, f model.Filter) (int, error)
	YearlyRevenue(ctx context.Context, year int) (float64, error)
}

// Snapshot is one joined fetch-and-aggregate result for a filter.
type Snapshot struct {
	Filter    model.Filter        `json:"filter"`
	Dashboard model.DashboardData `json:"dashboard"`
	Vistoria  model.VistoriaData  `json:"vistoria"`
}

const (
	defaultInterval = 60 * time.Second
	cacheTTL        = 5 * time.Minute
)

type Refresher struct {
	src      DataSource
	rdb      *redis.Client
	clock    worktime.Clock
	interval time.Duration

	mu     sync.Mutex
	gen    uint64
	filter model.Filter
	snap   *Snapshot
}

// New builds a refresher over src. rdb may be nil (cache disabled);
// interval <= 0 falls back to the 60s default.
func New(src DataSource, rdb *redis.Client, clock worktime.Clock, interval time.Duration) *Refresher {
	if clock == nil {
		clock = worktime.System
	}
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Refresher{
		src:      src,
		rdb:      rdb,
		clock:    clock,
		interval: interval,
		filter:   model.CurrentFilter(clock.Now()),
	}
}

// Run re-triggers the full cycle for the current filter at a fixed
// interval until ctx is done.
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.mu.Lock()
			gen, f := r.gen, r.filter
			r.mu.Unlock()

			snap, err := r.build(ctx, f)
			if err != nil {
				logger.L().Warn("refresh_build_error", "err", err, "month", f.Month, "year", f.Year)
				continue
			}
			r.publish(gen, snap)
		}
	}
}

// Snapshot returns the joined result for f, reusing the published one
// when the filter matches and building synchronously otherwise.
// Selecting a new filter supersedes any in-flight cycle.
func (r *Refresher) Snapshot(ctx context.Context, f model.Filter) (*Snapshot, error) {
	r.mu.Lock()
	if r.snap != nil && r.snap.Filter == f {
		snap := r.snap
		r.mu.Unlock()
		return snap, nil
	}
	r.gen++
	gen := r.gen
	r.filter = f
	r.mu.Unlock()

	snap, err := r.build(ctx, f)
	if err != nil {
		if cached := r.fromCache(ctx, f); cached != nil {
			return cached, nil
		}
		return nil, err
	}
	r.publish(gen, snap)
	return snap, nil
}

// build fans out all fetches, joins them, and runs the engine. The
// deals query is the primary fetch: its failure fails the build.
// Every other table degrades to an empty result set.
func (r *Refresher) build(ctx context.Context, f model.Filter) (*Snapshot, error) {
	started := time.Now()
	metrics.RefreshTotal.Inc()

	var (
		wg            sync.WaitGroup
		deals         []model.Deal
		dealsErr      error
		pendencias    []model.Pendencia
		casos         []model.CasoVistoria
		budget        []model.BudgetDeal
		newInspectors int
		revenue       float64
	)

	degrade := func(table string, err error) {
		if err == nil {
			return
		}
		metrics.FetchErrorsTotal.WithLabelValues(table).Inc()
		logger.L().Warn("fetch_degraded", "table", table, "err", err)
	}

	wg.Add(6)
	go func() {
		defer wg.Done()
		deals, dealsErr = r.src.Deals(ctx, &f)
	}()
	go func() {
		defer wg.Done()
		var err error
		if pendencias, err = r.src.Pendencias(ctx); err != nil {
			degrade("pendencias_engenharia", err)
			pendencias = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if casos, err = r.src.CasosVistoria(ctx); err != nil {
			degrade("casos_vistoria", err)
			casos = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if budget, err = r.src.BudgetDeals(ctx, f); err != nil {
			degrade("deals_orcadoxrealizado", err)
			budget = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if newInspectors, err = r.src.NewInspectors(ctx, f); err != nil {
			degrade("vistoriadores", err)
			newInspectors = 0
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if revenue, err = r.src.YearlyRevenue(ctx, f.Year); err != nil {
			degrade("deals_ploomes", err)
			revenue = 0
		}
	}()
	wg.Wait()

	if dealsErr != nil {
		metrics.FetchErrorsTotal.WithLabelValues("deals_ploomes").Inc()
		return nil, dealsErr
	}

	snap := &Snapshot{
		Filter:    f,
		Dashboard: engine.BuildDashboard(deals, pendencias, casos, revenue, r.clock),
		Vistoria:  engine.BuildVistoria(budget, deals, newInspectors, f, r.clock),
	}
	metrics.BuildDurationMs.Observe(float64(time.Since(started).Milliseconds()))
	r.toCache(ctx, snap)
	return snap, nil
}

// publish installs a built snapshot unless a newer filter selection
// superseded the generation it was built for.
func (r *Refresher) publish(gen uint64, snap *Snapshot) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen || snap.Filter != r.filter {
		metrics.RefreshSuppressedTotal.Inc()
		return false
	}
	r.snap = snap
	return true
}
