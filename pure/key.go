package pure

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"unsafe"
)

var ErrUnkeyable = errors.New("value cannot be used as a trie key")

// funcKey identifies a func value by its closure object, not its code
// pointer, so closures of the same literal with different captures differ.
type funcKey struct {
	p unsafe.Pointer
}

type mapKey struct {
	t reflect.Type
	p unsafe.Pointer
}

type sliceKey struct {
	t        reflect.Type
	p        unsafe.Pointer
	len, cap int
}

// nanKey stands in for a NaN float, which never equals itself under ==.
type nanKey struct {
	t reflect.Type
}

// complexKey replaces NaN parts of a complex value with flags.
type complexKey struct {
	t            reflect.Type
	re, im       float64
	reNaN, imNaN bool
}

// KeyOf normalizes v into a comparable discriminator.
//
// Funcs, maps and slices are keyed by identity. A zero-capacity slice has no
// backing array, so all zero-capacity slices of one type share a key. Every
// other value must be comparable at runtime and is keyed by ==, which means
// pointers by identity and primitives by value, except that all NaNs of one
// type are equal. Composite values holding a NaN fail with ErrUnkeyable, as
// do values that are not comparable.
func KeyOf(v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func:
		return funcKey{p: dataOf(v)}, nil
	case reflect.Map:
		return mapKey{t: rv.Type(), p: rv.UnsafePointer()}, nil
	case reflect.Slice:
		if rv.Cap() == 0 {
			return sliceKey{t: rv.Type()}, nil
		}
		return sliceKey{t: rv.Type(), p: rv.UnsafePointer(), len: rv.Len(), cap: rv.Cap()}, nil
	case reflect.Float32, reflect.Float64:
		if math.IsNaN(rv.Float()) {
			return nanKey{t: rv.Type()}, nil
		}
		return v, nil
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		k := complexKey{t: rv.Type(), re: real(c), im: imag(c), reNaN: math.IsNaN(real(c)), imNaN: math.IsNaN(imag(c))}
		if !k.reNaN && !k.imNaN {
			return v, nil
		}
		if k.reNaN {
			k.re = 0
		}
		if k.imNaN {
			k.im = 0
		}
		return k, nil
	}

	if !rv.Comparable() {
		return nil, fmt.Errorf("%w: %T", ErrUnkeyable, v)
	}
	if hasNaN(rv) {
		return nil, fmt.Errorf("%w: %T holds a NaN", ErrUnkeyable, v)
	}
	return v, nil
}

// hasNaN reports whether a comparable struct or array holds a NaN anywhere
// that == would look at.
func hasNaN(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		return math.IsNaN(real(c)) || math.IsNaN(imag(c))
	case reflect.Interface:
		return !rv.IsNil() && hasNaN(rv.Elem())
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			if hasNaN(rv.Field(i)) {
				return true
			}
		}
	case reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if hasNaN(rv.Index(i)) {
				return true
			}
		}
	}
	return false
}

// KeysOf normalizes every value of vs, in order.
func KeysOf(vs ...any) ([]any, error) {
	keys := make([]any, len(vs))
	for i, v := range vs {
		k, err := KeyOf(v)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", i, err)
		}
		keys[i] = k
	}
	return keys, nil
}

// dataOf returns the data word of an interface value. Func values are
// pointer-shaped, so for them this is the closure pointer itself.
func dataOf(v any) unsafe.Pointer {
	return (*[2]unsafe.Pointer)(unsafe.Pointer(&v))[1]
}
