package rbtree

import "cmp"
import "fmt"
import "io"
import "sync/atomic"
import "time"

import "github.com/nahi/avl-tree/api"
import s "github.com/bnclabs/gosettings"
import humanize "github.com/dustin/go-humanize"

// CASMap manage a single instance of in-memory sorted map using the
// same persistent red-black tree as Map, without locks. Writers
// compute the next version off the current root and publish it with a
// compare-and-swap; losers throw their version away and retry over
// the winner's root. There is no retry bound and no backoff, retries
// are counted in stats. Readers take one atomic load, same as Map.
type CASMap[K, V any] struct { // tree container
	mapstats // 64-bit aligned

	tree tree[K, V]
	root atomic.Pointer[node[K, V]]

	name     string
	borntime time.Time

	// settings
	defvalue    V
	producer    func() V
	validateall bool // comes from validate.enable settings
	memcapacity int64
	setts       s.Settings
	logprefix   string
}

// NewCASMap a new instance of lock-free sorted map over an ordered
// key type, entries sorted in the type's natural order.
func NewCASMap[K cmp.Ordered, V any](name string, setts s.Settings) *CASMap[K, V] {
	return NewCASMapFunc[K, V](name, cmp.Compare[K], setts)
}

// NewCASMapFunc a new instance of lock-free sorted map sorted by
// compare, which must return exactly -1, 0 or +1. Keys the comparator
// cannot order fail the operation with api.ErrorUnorderedKeys.
func NewCASMapFunc[K, V any](
	name string, compare func(a, b K) int, setts s.Settings) *CASMap[K, V] {

	m := &CASMap[K, V]{name: name, borntime: time.Now()}
	m.logprefix = fmt.Sprintf("RBCAS [%s]", name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	m.readsettings(setts)
	m.setts = setts

	// no depth histogram here, inserts run concurrently.
	m.tree = tree[K, V]{cmp: compare}

	fmsg := "%v started with memcapacity %v ...\n"
	infof(fmsg, m.logprefix, humanize.Bytes(uint64(m.memcapacity)))
	return m
}

func (m *CASMap[K, V]) readsettings(setts s.Settings) {
	m.validateall = setts.Bool("validate.enable")
	m.memcapacity = setts.Int64("memcapacity")
	m.defvalue, m.producer = defaults[V](setts, m.logprefix)
}

func (m *CASMap[K, V]) getroot() *node[K, V] {
	return m.root.Load()
}

// missing render the configured default for an absent key.
func (m *CASMap[K, V]) missing() V {
	if m.producer != nil {
		return m.producer()
	}
	return m.defvalue
}

// ID return map id.
func (m *CASMap[K, V]) ID() string {
	return m.name
}

// Set insert or replace the entry for key. The rebuilt version is
// published with a compare-and-swap over the root it was computed
// from; a lost race discards the version and recomputes over the
// winner's root.
func (m *CASMap[K, V]) Set(key K, value V) error {
	for {
		old := m.getroot()
		root, displaced, err := m.tree.insert(old, 1 /*depth*/, key, value)
		if err != nil {
			return err
		}
		if m.root.CompareAndSwap(old, blacken(root)) {
			m.upsertcounts(displaced != nil)
			if m.validateall {
				m.Validate()
			}
			return nil
		}
		atomic.AddInt64(&m.n_retries, 1)
	}
}

// Delete remove the entry for key and return the removed value.
// A delete that finds key absent publishes nothing and cannot lose a
// race, it returns the configured default right away.
func (m *CASMap[K, V]) Delete(key K) (V, bool, error) {
	for {
		old := m.getroot()
		root, _, deleted, err := m.tree.remove(old, key)
		if err != nil {
			var value V
			return value, false, err
		} else if deleted == nil {
			return m.missing(), false, nil
		}
		if m.root.CompareAndSwap(old, blacken(root)) {
			atomic.AddInt64(&m.n_deletes, 1)
			if m.validateall {
				m.Validate()
			}
			return deleted.value, true, nil
		}
		atomic.AddInt64(&m.n_retries, 1)
	}
}

// Clear drop all entries. In-flight writers racing with Clear either
// publish before, and are dropped, or lose their CAS and retry over
// the empty root.
func (m *CASMap[K, V]) Clear() {
	m.root.Store(nil)
	atomic.AddInt64(&m.n_clears, 1)
	infof("%v cleared\n", m.logprefix)
}

// Get return the value for key, or the configured default when key is
// absent. Lock-free, reads one published version of the tree.
func (m *CASMap[K, V]) Get(key K) (V, bool, error) {
	atomic.AddInt64(&m.n_lookups, 1)
	nd, err := m.tree.getkey(m.getroot(), key)
	if err != nil {
		var value V
		return value, false, err
	} else if nd == nil {
		return m.missing(), false, nil
	}
	return nd.value, true, nil
}

// Has return whether key is present. Lock-free.
func (m *CASMap[K, V]) Has(key K) (bool, error) {
	atomic.AddInt64(&m.n_lookups, 1)
	nd, err := m.tree.getkey(m.getroot(), key)
	return nd != nil, err
}

// Count return the number of entries over one version of the tree,
// walking it fully. Entry counts are not cached.
func (m *CASMap[K, V]) Count() int64 {
	return m.getroot().count()
}

// Isempty return true if the map has no entries.
func (m *CASMap[K, V]) Isempty() bool {
	return m.getroot() == nil
}

// Min return the entry with the least key.
func (m *CASMap[K, V]) Min() (K, V, bool) {
	atomic.AddInt64(&m.n_lookups, 1)
	return entry(m.getroot().extreme(toleft))
}

// Max return the entry with the largest key.
func (m *CASMap[K, V]) Max() (K, V, bool) {
	atomic.AddInt64(&m.n_lookups, 1)
	return entry(m.getroot().extreme(toright))
}

// Snapshot return a frozen read-only version of the map, sharing
// every node with it, for a single root load.
func (m *CASMap[K, V]) Snapshot() *Snapshot[K, V] {
	return newsnapshot(m.name, &m.tree, m.getroot(), m.missing)
}

// Stats return a set of map statistics.
func (m *CASMap[K, V]) Stats() map[string]interface{} {
	stats := m.mapstats.stats(map[string]interface{}{})
	stats["n_count"] = m.Count()
	stats["memcapacity"] = m.memcapacity
	stats["uptime"] = time.Since(m.borntime).String()
	return stats
}

// Log vital statistics.
func (m *CASMap[K, V]) Log() {
	logstats(m.logprefix, m.memcapacity, m.Stats())
}

// Dump tree in textual format onto w, for debugging.
func (m *CASMap[K, V]) Dump(w io.Writer) {
	m.getroot().dump(w, "")
}

// Dotdump to convert whole tree into dot script that can be
// visualized using graphviz.
func (m *CASMap[K, V]) Dotdump(buffer io.Writer) {
	dotdump(m.getroot(), buffer)
}

var _ api.OrderedMap[int, int] = (*CASMap[int, int])(nil)
