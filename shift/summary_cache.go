package shift

import (
	"context"
	"errors"
	"time"

	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"tillpoint.app/shift/model"
)

var summaryCluster = cache.NewCluster("shift-summary-cluster", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

type summaryKey struct {
	ShiftID int64
}

// salesSummaries holds the live summary of open shifts. Every ledger write
// against a shift and every status change drops its entry.
var salesSummaries = cache.NewStructKeyspace[summaryKey, model.SalesSummary](
	summaryCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "sales-summary/:ShiftID",
		DefaultExpiry: cache.ExpireIn(10 * time.Minute),
	},
)

func cachedSummary(ctx context.Context, shiftID int64) (*model.SalesSummary, bool) {
	summary, err := salesSummaries.Get(ctx, summaryKey{ShiftID: shiftID})
	if err != nil {
		if !errors.Is(err, cache.Miss) {
			rlog.Warn("sales summary cache read failed", "error", err, "shift_id", shiftID)
		}
		return nil, false
	}
	return &summary, true
}

func storeSummary(ctx context.Context, summary *model.SalesSummary) {
	if err := salesSummaries.Set(ctx, summaryKey{ShiftID: summary.ShiftID}, *summary); err != nil {
		rlog.Warn("sales summary cache write failed", "error", err, "shift_id", summary.ShiftID)
	}
}

func invalidateSummary(ctx context.Context, shiftID *int64) {
	if shiftID == nil {
		return
	}
	if _, err := salesSummaries.Delete(ctx, summaryKey{ShiftID: *shiftID}); err != nil {
		rlog.Warn("sales summary cache invalidation failed", "error", err, "shift_id", *shiftID)
	}
}
