package rbtree

import "iter"

// Tomap materialize an entry sequence into a native Go map, for
// comparable keys.
func Tomap[K comparable, V any](entries iter.Seq2[K, V]) map[K]V {
	m := make(map[K]V)
	for key, value := range entries {
		m[key] = value
	}
	return m
}

func allentries[K, V any](getroot func() *node[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		getroot().inorder(yield)
	}
}

func allkeys[K, V any](getroot func() *node[K, V]) iter.Seq[K] {
	return func(yield func(K) bool) {
		getroot().inorder(func(key K, _ V) bool { return yield(key) })
	}
}

func allvalues[K, V any](getroot func() *node[K, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		getroot().inorder(func(_ K, value V) bool { return yield(value) })
	}
}

// All return a lazy in-order sequence of entries. Each ranging over
// the sequence reads one complete version of the tree, loaded when
// the iteration starts; mutations published during the walk are not
// seen.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return allentries(m.getroot)
}

// Keys return the in-order sequence of keys, versioned like All.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return allkeys(m.getroot)
}

// Values return the sequence of values ordered by key, versioned
// like All.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return allvalues(m.getroot)
}

// All return a lazy in-order sequence of entries, over one version of
// the tree per ranging, same contract as Map.
func (m *CASMap[K, V]) All() iter.Seq2[K, V] {
	return allentries(m.getroot)
}

// Keys return the in-order sequence of keys, versioned like All.
func (m *CASMap[K, V]) Keys() iter.Seq[K] {
	return allkeys(m.getroot)
}

// Values return the sequence of values ordered by key, versioned
// like All.
func (m *CASMap[K, V]) Values() iter.Seq[V] {
	return allvalues(m.getroot)
}
