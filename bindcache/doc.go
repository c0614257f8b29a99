// Package bindcache memoizes bound functions.
//
// A Cache fixes a receiver once, at creation. Bind then returns a function
// bound to that receiver with a set of leading arguments, and returns the very
// same *Bound on every later call with the same function and an equal
// argument sequence:
//
//	c := bindcache.New[*User, string](rob)
//	a := c.MustBind(says, "hello")
//	b := c.MustBind(says, "hello")
//	a == b // true
//	a.Call("world!")
//
// Lookups walk a trie keyed by [fn, arg1, ..., argN]. Functions, maps and
// slices are keyed by identity; every other argument must be comparable and is
// keyed by ==. Argument contents are never snapshotted, so mutating a pointed-to
// value after binding does not change which entry it selects.
//
// Entries are never evicted. A Cache grows for as long as it is reachable, so
// scope it to the lifetime of the values it binds.
//
// A Cache is safe for concurrent use.
package bindcache
