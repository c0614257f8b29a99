package pure

import (
	"sync"
	"sync/atomic"
)

// Trie is an unbounded, concurrency-safe trie keyed by ordered sequences of
// normalized discriminators. Every key path resolves to exactly one node, and
// each node holds at most one value, written once.
type Trie[V any] struct {
	root   *node[V]
	nodes  atomic.Uint64
	values atomic.Uint64
}

type node[V any] struct {
	children sync.Map
	value    atomic.Pointer[V]
	mu       sync.Mutex
}

// Load returns the value stored at keys without creating any node.
func (t *Trie[V]) Load(keys []any) (V, bool) {
	n := t.root
	for _, k := range keys {
		v, ok := n.children.Load(k)
		if !ok {
			var zero V
			return zero, false
		}
		n = v.(*node[V])
	}
	if p := n.value.Load(); p != nil {
		return *p, true
	}
	var zero V
	return zero, false
}

// LoadOrStore descends keys, creating missing nodes on the way, and returns
// the value held by the final node. If the node is empty, newFn is called
// exactly once to produce it and loaded is false.
func (t *Trie[V]) LoadOrStore(keys []any, newFn func() V) (v V, loaded bool) {
	n := t.traverse(keys)
	if p := n.value.Load(); p != nil {
		return *p, true
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if p := n.value.Load(); p != nil {
		return *p, true
	}
	v = newFn()
	n.value.Store(&v)
	t.values.Add(1)
	return v, false
}

func (t *Trie[V]) traverse(keys []any) *node[V] {
	n := t.root
	for _, k := range keys {
		v, ok := n.children.Load(k)
		if !ok {
			var loaded bool
			v, loaded = n.children.LoadOrStore(k, &node[V]{})
			if !loaded {
				t.nodes.Add(1)
			}
		}
		n = v.(*node[V])
	}
	return n
}

// Nodes returns the number of nodes below the root.
func (t *Trie[V]) Nodes() uint64 {
	return t.nodes.Load()
}

// Values returns the number of nodes holding a value.
func (t *Trie[V]) Values() uint64 {
	return t.values.Load()
}

func NewTrie[V any]() *Trie[V] {
	return &Trie[V]{root: &node[V]{}}
}
