package bindcache

import (
	"errors"

	"github.com/on-the-ground/memobind/pure"
)

var (
	// ErrNilTarget is returned when Bind is given a nil function.
	ErrNilTarget = errors.New("bind target is nil")

	// ErrUnkeyable is returned when an argument can be neither compared
	// nor keyed by identity.
	ErrUnkeyable = pure.ErrUnkeyable
)
