package membership

import (
	"encore.dev/config"
)

type Config struct {
	TemporalHostPort  config.String
	TemporalNamespace config.String
	TaskQueue         config.String
	// Currency is charged when a plan carries none.
	Currency config.String
	// SweepEnabled gates the daily billing sweep.
	SweepEnabled config.Bool
}

var cfg = config.Load[*Config]()
