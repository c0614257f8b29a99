package bindcache

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/on-the-ground/memobind/pure"
	"go.uber.org/zap"
)

// Cache memoizes functions bound to a single receiver.
type Cache[C, R any] struct {
	id     string
	self   C
	tree   *pure.Trie[*Bound[C, R]]
	logger *zap.Logger

	hits   atomic.Uint64
	misses atomic.Uint64
}

// New returns an empty Cache whose bound functions all receive self.
// Pass the zero value of C when no receiver is needed.
func New[C, R any](self C, opts ...Option) *Cache[C, R] {
	cfg := newConfig(opts)
	c := &Cache[C, R]{
		id:     uuid.New().String(),
		self:   self,
		tree:   pure.NewTrie[*Bound[C, R]](),
		logger: cfg.logger,
	}
	c.logger.Debug("created bind cache", zap.String("cacheId", c.id))
	return c
}

// Bind returns fn bound to the cache's receiver with args as leading
// arguments. Equal (fn, args) sequences always yield the same *Bound.
func (c *Cache[C, R]) Bind(fn Func[C, R], args ...any) (*Bound[C, R], error) {
	keys, err := keyPath(fn, args)
	if err != nil {
		return nil, err
	}

	b, loaded := c.tree.LoadOrStore(keys, func() *Bound[C, R] {
		return &Bound[C, R]{
			fn:   fn,
			self: c.self,
			args: append([]any(nil), args...),
		}
	})
	if loaded {
		c.hits.Add(1)
		return b, nil
	}

	c.misses.Add(1)
	c.logger.Debug("created bound function",
		zap.String("cacheId", c.id),
		zap.Int("arity", len(args)),
	)
	return b, nil
}

// MustBind is the panic-on-failure variant of Bind.
func (c *Cache[C, R]) MustBind(fn Func[C, R], args ...any) *Bound[C, R] {
	b, err := c.Bind(fn, args...)
	if err != nil {
		panic(err)
	}
	return b
}

// Contains reports whether (fn, args) has already been bound. It never
// creates entries.
func (c *Cache[C, R]) Contains(fn Func[C, R], args ...any) bool {
	keys, err := keyPath(fn, args)
	if err != nil {
		return false
	}
	_, ok := c.tree.Load(keys)
	return ok
}

// Receiver returns the value every bound function of the cache receives as self.
func (c *Cache[C, R]) Receiver() C {
	return c.self
}

// ID uniquely identifies the cache in log output.
func (c *Cache[C, R]) ID() string {
	return c.id
}

// Stats returns a snapshot of the cache's counters.
func (c *Cache[C, R]) Stats() Stats {
	return Stats{
		Nodes:    c.tree.Nodes(),
		Bindings: c.tree.Values(),
		Hits:     c.hits.Load(),
		Misses:   c.misses.Load(),
	}
}

func keyPath[C, R any](fn Func[C, R], args []any) ([]any, error) {
	if fn == nil {
		return nil, ErrNilTarget
	}

	fk, err := pure.KeyOf(fn)
	if err != nil {
		return nil, err
	}
	ak, err := pure.KeysOf(args...)
	if err != nil {
		return nil, fmt.Errorf("bind arguments: %w", err)
	}
	keys := append(make([]any, 0, len(ak)+1), fk)
	keys = append(keys, ak...)
	return keys, nil
}
