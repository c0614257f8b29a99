package helper

import (
	"context"
	"fmt"

	effectmodel "github.com/on-the-ground/memobind/effects/internal/model"
	sharedHelper "github.com/on-the-ground/memobind/shared/helper"
)

// Handler returns the handler registered under enum in ctx, asserted to H.
// It fails with ErrNoEffectHandler when nothing is registered, and with an
// unexpected-type error when the handler was registered with other type
// parameters.
func Handler[H any](ctx context.Context, enum effectmodel.EffectEnum) (H, error) {
	return sharedHelper.GetTypedValueOf[H](lookup(ctx, enum))
}

// MustHandler is the panic-on-failure variant of Handler.
func MustHandler[H any](ctx context.Context, enum effectmodel.EffectEnum) H {
	return sharedHelper.MustGetTypedValue[H](lookup(ctx, enum))
}

func lookup(ctx context.Context, enum effectmodel.EffectEnum) func() (any, error) {
	return func() (any, error) {
		if raw := ctx.Value(enum); raw != nil {
			return raw, nil
		}
		return nil, fmt.Errorf("%w: %v", effectmodel.ErrNoEffectHandler, enum)
	}
}
