package bindcache

// Func is a function that can be bound by a Cache. self is the cache's
// receiver; args are the leading arguments followed by the call's own.
type Func[C, R any] func(self C, args ...any) R

// Bound is a function bound to a receiver and a fixed set of leading
// arguments. A Cache hands out the same *Bound for equal key paths, so
// pointers can be compared directly.
type Bound[C, R any] struct {
	fn   Func[C, R]
	self C
	args []any
}

// Call invokes the bound function with the leading arguments followed by args.
func (b *Bound[C, R]) Call(args ...any) R {
	all := make([]any, 0, len(b.args)+len(args))
	all = append(all, b.args...)
	all = append(all, args...)
	return b.fn(b.self, all...)
}

// Args returns a copy of the leading arguments.
func (b *Bound[C, R]) Args() []any {
	return append([]any(nil), b.args...)
}
