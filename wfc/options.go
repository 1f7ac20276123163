package wfc

import (
	"log/slog"

	"github.com/katalvlaran/hexforge/hex"
)

// Option configures a Generator.
type Option func(*genConfig)

type genConfig struct {
	logger   *slog.Logger
	first    hex.Coord
	hasFirst bool
}

// WithLogger emits one Debug record per collapse and rewind. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("wfc: WithLogger(nil)")
	}
	return func(c *genConfig) {
		c.logger = l
	}
}

// WithFirst sets the first coordinate to collapse. The default is the
// layout's center. A coordinate outside the layout makes the constructor
// return ErrOutsideLayout.
func WithFirst(at hex.Coord) Option {
	return func(c *genConfig) {
		c.first = at
		c.hasFirst = true
	}
}
