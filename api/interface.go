// Package api define types and interfaces common to all container
// algorithms implemented by this repository.
package api

import "iter"

// OrderedMap interface for managing {key,value} entries sorted by
// key. Implementations come in different concurrency flavours, all of
// them sharing the same read and write contract.
type OrderedMap[K, V any] interface {
	// ID return map id. Typically, it is human readable and unique.
	ID() string

	// Set insert or replace the entry for key. The tree is left
	// balanced on return.
	Set(key K, value V) error

	// Get return the value for key. When key is absent, ok is false
	// and the configured default value, or the product of the
	// configured default producer, is returned.
	Get(key K) (value V, ok bool, err error)

	// Has return whether key is present.
	Has(key K) (bool, error)

	// Delete remove the entry for key, if present, and return the
	// removed value. Deleting an absent key is a no-op and returns
	// the configured default.
	Delete(key K) (value V, ok bool, err error)

	// Count return the number of entries in the map. Cost is O(n),
	// entry counts are not cached.
	Count() int64

	// Isempty return true if the map has no entries. Cost is O(1).
	Isempty() bool

	// Clear drop all entries.
	Clear()

	// Min return the entry with the least key.
	Min() (key K, value V, ok bool)

	// Max return the entry with the largest key.
	Max() (key K, value V, ok bool)

	// All return a lazy, restartable in-order sequence of entries,
	// taken over one consistent version of the tree.
	All() iter.Seq2[K, V]

	// Keys return the in-order sequence of keys.
	Keys() iter.Seq[K]

	// Values return the sequence of values, ordered by key.
	Values() iter.Seq[V]

	// Validate walk the full tree and panic if any red-black
	// invariant is broken. Intended for debugging, cost is O(n).
	Validate()

	// Stats return a set of map statistics.
	Stats() map[string]interface{}

	// Log vital statistics.
	Log()
}
