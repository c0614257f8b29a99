package bindcache

import (
	"github.com/on-the-ground/memobind/shared/logger"
	"go.uber.org/zap"
)

type config struct {
	logger *zap.Logger
}

// Option configures a Cache.
type Option func(*config)

// WithLogger sets the logger used for debug events. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.logger = logger.OrNop(cfg.logger)
	return cfg
}
