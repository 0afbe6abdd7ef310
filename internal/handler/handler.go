// Package handler exposes the derived view models over HTTP. It parses
// the period filter, delegates to the refresher and encodes the
// result; it never computes anything itself.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"dashboard-engine/internal/logger"
	"dashboard-engine/internal/metrics"
	"dashboard-engine/internal/model"
	"dashboard-engine/internal/refresh"
	"dashboard-engine/internal/worktime"
)

type Handler struct {
	ref       *refresh.Refresher
	clock     worktime.Clock
	metricsFn fasthttp.RequestHandler
}

func New(ref *refresh.Refresher, clock worktime.Clock, metricsHandler http.Handler) *Handler {
	if clock == nil {
		clock = worktime.System
	}
	return &Handler{
		ref:       ref,
		clock:     clock,
		metricsFn: fasthttpadaptor.NewFastHTTPHandler(metricsHandler),
	}
}

// Handle routes a request. Registered as the fasthttp server handler.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/api/dashboard":
		metrics.RequestsTotal.WithLabelValues("dashboard").Inc()
		h.handleDashboard(ctx)
	case "/api/vistoria":
		metrics.RequestsTotal.WithLabelValues("vistoria").Inc()
		h.handleVistoria(ctx)
	case "/api/health":
		h.handleHealth(ctx)
	case "/metrics":
		h.metricsFn(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

// parseFilter reads month (0-11) and year query args, defaulting to
// the current month.
func (h *Handler) parseFilter(ctx *fasthttp.RequestCtx) (model.Filter, bool) {
	f := model.CurrentFilter(h.clock.Now())
	args := ctx.QueryArgs()
	if v := args.Peek("month"); len(v) > 0 {
		n, err := strconv.Atoi(string(v))
		if err != nil {
			return f, false
		}
		f.Month = n
	}
	if v := args.Peek("year"); len(v) > 0 {
		n, err := strconv.Atoi(string(v))
		if err != nil {
			return f, false
		}
		f.Year = n
	}
	return f, f.Valid()
}

func (h *Handler) snapshot(ctx *fasthttp.RequestCtx) (*refresh.Snapshot, bool) {
	f, ok := h.parseFilter(ctx)
	if !ok {
		writeError(ctx, fasthttp.StatusBadRequest, "month must be 0-11 and year a positive integer")
		return nil, false
	}
	snap, err := h.ref.Snapshot(ctx, f)
	if err != nil {
		// Primary fetch failed outright: surface a retryable error
		// instead of an empty dashboard.
		logger.L().Error("snapshot_error", "err", err, "month", f.Month, "year", f.Year)
		writeError(ctx, fasthttp.StatusBadGateway, "backend unavailable, retry")
		return nil, false
	}
	return snap, true
}

func (h *Handler) handleDashboard(ctx *fasthttp.RequestCtx) {
	if snap, ok := h.snapshot(ctx); ok {
		writeJSON(ctx, fasthttp.StatusOK, snap.Dashboard)
	}
}

func (h *Handler) handleVistoria(ctx *fasthttp.RequestCtx) {
	if snap, ok := h.snapshot(ctx); ok {
		writeJSON(ctx, fasthttp.StatusOK, snap.Vistoria)
	}
}

func (h *Handler) handleHealth(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, map[string]string{
		"status": "ok",
		"time":   h.clock.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(v); err != nil {
		logger.L().Error("encode_error", "err", err)
	}
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{Status: status, Message: message})
}
