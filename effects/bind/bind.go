package bind

import (
	"context"

	"github.com/on-the-ground/memobind/bindcache"
	"github.com/on-the-ground/memobind/effects/internal/helper"
	effectmodel "github.com/on-the-ground/memobind/effects/internal/model"
	"github.com/on-the-ground/memobind/shared/logger"
	"go.uber.org/zap"
)

// ErrNoEffectHandler is returned when no bind cache is registered in the context.
var ErrNoEffectHandler = effectmodel.ErrNoEffectHandler

// WithEffectHandler registers a fresh bind cache for self in the returned context.
//
//   - Every Effect performed under the returned context binds through this cache.
//   - A handler registered in a lower scope shadows upper ones.
//   - The teardown function returns the parent context; the cache itself is
//     released once nothing references it.
func WithEffectHandler[C, R any](
	ctx context.Context,
	self C,
	log *zap.Logger,
	opts ...bindcache.Option,
) (context.Context, func() context.Context) {
	log = logger.OrNop(log)
	cache := bindcache.New[C, R](self, append([]bindcache.Option{bindcache.WithLogger(log)}, opts...)...)
	ctxWith := context.WithValue(ctx, effectmodel.EffectBind, cache)
	log.Debug("created bind effect handler", zap.String("cacheId", cache.ID()))

	return ctxWith, func() context.Context {
		log.Debug("closed bind effect handler",
			zap.String("cacheId", cache.ID()),
			zap.Any("stats", cache.Stats()),
		)
		return ctx
	}
}

// CacheOf returns the bind cache registered in ctx.
func CacheOf[C, R any](ctx context.Context) (*bindcache.Cache[C, R], error) {
	return helper.Handler[*bindcache.Cache[C, R]](ctx, effectmodel.EffectBind)
}

// Effect binds fn and args through the cache registered in ctx.
func Effect[C, R any](ctx context.Context, fn bindcache.Func[C, R], args ...any) (*bindcache.Bound[C, R], error) {
	cache, err := CacheOf[C, R](ctx)
	if err != nil {
		return nil, err
	}
	return cache.Bind(fn, args...)
}

// MustEffect is the panic-on-failure variant of Effect.
func MustEffect[C, R any](ctx context.Context, fn bindcache.Func[C, R], args ...any) *bindcache.Bound[C, R] {
	return helper.MustHandler[*bindcache.Cache[C, R]](ctx, effectmodel.EffectBind).MustBind(fn, args...)
}
