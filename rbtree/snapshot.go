package rbtree

import "io"
import "iter"

// Snapshot is a frozen read-only version of a Map or CASMap, sharing
// every node with the parent container. Taking one costs a single
// root load; mutations published on the parent after that rebuild
// their path into fresh nodes and never reach this version. A
// snapshot stays valid for as long as it is referenced.
type Snapshot[K, V any] struct {
	name    string
	tree    *tree[K, V]
	root    *node[K, V]
	missing func() V
}

func newsnapshot[K, V any](
	name string, t *tree[K, V], root *node[K, V],
	missing func() V) *Snapshot[K, V] {

	return &Snapshot[K, V]{name: name, tree: t, root: root, missing: missing}
}

// ID return the parent map's id.
func (s *Snapshot[K, V]) ID() string {
	return s.name
}

// Get return the value for key as of the snapshot's version, or the
// parent map's configured default when absent.
func (s *Snapshot[K, V]) Get(key K) (V, bool, error) {
	nd, err := s.tree.getkey(s.root, key)
	if err != nil {
		var value V
		return value, false, err
	} else if nd == nil {
		return s.missing(), false, nil
	}
	return nd.value, true, nil
}

// Has return whether key was present in the snapshot's version.
func (s *Snapshot[K, V]) Has(key K) (bool, error) {
	nd, err := s.tree.getkey(s.root, key)
	return nd != nil, err
}

// Count return the number of entries in the snapshot's version.
func (s *Snapshot[K, V]) Count() int64 {
	return s.root.count()
}

// Isempty return true if the snapshot's version has no entries.
func (s *Snapshot[K, V]) Isempty() bool {
	return s.root == nil
}

// Min return the entry with the least key.
func (s *Snapshot[K, V]) Min() (K, V, bool) {
	return entry(s.root.extreme(toleft))
}

// Max return the entry with the largest key.
func (s *Snapshot[K, V]) Max() (K, V, bool) {
	return entry(s.root.extreme(toright))
}

// All return a lazy in-order sequence over the snapshot's entries.
// Restartable any number of times, always over the same version.
func (s *Snapshot[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		s.root.inorder(yield)
	}
}

// Keys return the in-order sequence of the snapshot's keys.
func (s *Snapshot[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		s.root.inorder(func(key K, _ V) bool { return yield(key) })
	}
}

// Values return the snapshot's values, ordered by key.
func (s *Snapshot[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		s.root.inorder(func(_ K, value V) bool { return yield(value) })
	}
}

// Validate walk the snapshot's version and panic when a red-black
// invariant is broken.
func (s *Snapshot[K, V]) Validate() {
	s.tree.validateversion(s.root)
}

// Dump tree in textual format onto w, for debugging.
func (s *Snapshot[K, V]) Dump(w io.Writer) {
	s.root.dump(w, "")
}

// Dotdump to convert the snapshot's version into dot script that can
// be visualized using graphviz.
func (s *Snapshot[K, V]) Dotdump(buffer io.Writer) {
	dotdump(s.root, buffer)
}
