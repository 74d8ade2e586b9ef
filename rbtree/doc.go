// Package rbtree implement an ordered, in-memory {key,value} map over
// a persistent red-black tree. Tree nodes are immutable once a version
// of the tree holding them is published: every mutation rebuilds only
// the path from the root to the affected entry and shares all other
// subtrees with the previous version. Readers therefore never block
// and never observe a half-applied write, whatever the writers are
// doing.
//
// Two container flavours are supplied over the same algorithms. Map
// serializes writers under a mutex. CASMap lets writers race, each
// computing a candidate version off a root snapshot and publishing it
// with an atomic compare-and-swap, retrying on contention.
package rbtree
