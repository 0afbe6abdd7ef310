package refresh

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"

	"dashboard-engine/internal/logger"
	"dashboard-engine/internal/metrics"
	"dashboard-engine/internal/model"
)

func cacheKey(f model.Filter) string {
	return fmt.Sprintf("dashboard:snapshot:%04d-%02d", f.Year, f.Month+1)
}

// toCache stores the latest snapshot JSON in Redis. Cache failures are
// never fatal; the snapshot in memory is the source of truth.
func (r *Refresher) toCache(ctx context.Context, snap *Snapshot) {
	if r.rdb == nil {
		return
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		return
	}
	if err := r.rdb.Set(ctx, cacheKey(snap.Filter), payload, cacheTTL).Err(); err != nil {
		logger.L().Debug("snapshot_cache_set_error", "err", err)
	}
}

// fromCache serves the last good snapshot for a filter when a build
// fails outright, keeping the dashboard up through backend hiccups.
func (r *Refresher) fromCache(ctx context.Context, f model.Filter) *Snapshot {
	if r.rdb == nil {
		return nil
	}
	payload, err := r.rdb.Get(ctx, cacheKey(f)).Bytes()
	if err != nil {
		return nil
	}
	var snap Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil
	}
	metrics.SnapshotCacheHitsTotal.Inc()
	return &snap
}
