package idempotency

import (
	"encoding/json"
	"time"

	"encore.dev/storage/cache"
)

type recordStatus string

const (
	statusInFlight recordStatus = "in_flight"
	statusDone     recordStatus = "done"
)

// recordKey scopes a client key to the endpoint it was sent to, so the same
// key may be reused across different shifts.
type recordKey struct {
	Endpoint string
	Key      string
}

type record struct {
	Status      recordStatus    `json:"status"`
	PayloadHash string          `json:"payload_hash"`
	Response    json.RawMessage `json:"response,omitempty"`
	StartedAt   time.Time       `json:"started_at"`
	CompletedAt time.Time       `json:"completed_at"`
}

var cluster = cache.NewCluster("idempotency-cluster", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// records keeps a replayable response per key for a day, long enough to
// cover a register retrying after it lost connectivity.
var records = cache.NewStructKeyspace[recordKey, record](
	cluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Endpoint/:Key",
		DefaultExpiry: cache.ExpireIn(24 * time.Hour),
	},
)
