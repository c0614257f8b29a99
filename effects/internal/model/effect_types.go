package effectmodel

import "errors"

type EffectEnum string

const (
	EffectBind EffectEnum = "memobind_effect_enum_bind"
)

var ErrNoEffectHandler = errors.New("no effect handler registered for this effect")
