package shift

import (
	"encore.dev/config"
)

type Config struct {
	TemporalHostPort  config.String
	TemporalNamespace config.String
	TaskQueue         config.String
	// Currency is recorded on sales that name none.
	Currency config.String
	// MaxShiftHours is how long a shift may stay open before its session
	// force closes it. Zero disables the limit.
	MaxShiftHours config.Int
}

var cfg = config.Load[*Config]()
