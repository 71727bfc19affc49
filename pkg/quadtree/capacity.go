package quadtree

// Capacity is the per-node item bound strategy. A policy value is copied into
// every child node on a split, so implementations must be cheap value types.
//
// DynCap is the runtime-valued implementation. The compile-time counterpart is
// any zero-size user type whose Capacity method returns a constant; passed as
// the tree's policy type parameter it occupies no storage and the bound
// inlines into the insertion loop. Both behave identically.
//
// A policy must report at least 1, otherwise no node can ever hold an item.
type Capacity interface {
	Capacity() int
}

// DynCap is a capacity chosen at runtime.
type DynCap int

// Capacity returns the per-node item bound.
func (c DynCap) Capacity() int { return int(c) }
