package bindcache

// Stats is a snapshot of a Cache's counters.
type Stats struct {
	Nodes    uint64 // trie nodes below the root
	Bindings uint64 // memoized bound functions
	Hits     uint64
	Misses   uint64
}
