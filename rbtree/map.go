package rbtree

import "cmp"
import "fmt"
import "io"
import "sync"
import "sync/atomic"
import "time"

import "github.com/nahi/avl-tree/api"
import "github.com/nahi/avl-tree/lib"
import s "github.com/bnclabs/gosettings"
import humanize "github.com/dustin/go-humanize"

// Map manage a single instance of in-memory sorted map using a
// persistent red-black tree. Writers serialize on a mutex and publish
// each rebuilt version by an atomic store of the root, so any number
// of readers stay lock-free and always observe one complete version.
type Map[K, V any] struct { // tree container
	mapstats // 64-bit aligned

	tree tree[K, V]
	root atomic.Pointer[node[K, V]]

	name     string
	borntime time.Time
	rw       sync.Mutex

	// settings
	defvalue    V
	producer    func() V
	validateall bool // comes from validate.enable settings
	memcapacity int64
	setts       s.Settings
	logprefix   string
}

// NewMap a new instance of in-memory sorted map over an ordered key
// type, entries sorted in the type's natural order.
func NewMap[K cmp.Ordered, V any](name string, setts s.Settings) *Map[K, V] {
	return NewMapFunc[K, V](name, cmp.Compare[K], setts)
}

// NewMapFunc a new instance of in-memory sorted map sorted by compare,
// which must return exactly -1, 0 or +1. Keys the comparator cannot
// order fail the operation with api.ErrorUnorderedKeys.
func NewMapFunc[K, V any](
	name string, compare func(a, b K) int, setts s.Settings) *Map[K, V] {

	m := &Map[K, V]{name: name, borntime: time.Now()}
	m.logprefix = fmt.Sprintf("RBMAP [%s]", name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	m.readsettings(setts)
	m.setts = setts

	// statistics
	m.tree = tree[K, V]{
		cmp:           compare,
		h_upsertdepth: lib.NewhistorgramInt64(1, 256, 1),
	}

	fmsg := "%v started with memcapacity %v ...\n"
	infof(fmsg, m.logprefix, humanize.Bytes(uint64(m.memcapacity)))
	return m
}

func (m *Map[K, V]) readsettings(setts s.Settings) {
	m.validateall = setts.Bool("validate.enable")
	m.memcapacity = setts.Int64("memcapacity")
	m.defvalue, m.producer = defaults[V](setts, m.logprefix)
}

func (m *Map[K, V]) getroot() *node[K, V] {
	return m.root.Load()
}

func (m *Map[K, V]) setroot(root *node[K, V]) {
	m.root.Store(root)
}

// missing render the configured default for an absent key.
func (m *Map[K, V]) missing() V {
	if m.producer != nil {
		return m.producer()
	}
	return m.defvalue
}

// ID return map id.
func (m *Map[K, V]) ID() string {
	return m.name
}

// Set insert or replace the entry for key. Only the path from the
// root down to the entry is rebuilt, subtrees off that path are
// shared with the previous version.
func (m *Map[K, V]) Set(key K, value V) error {
	m.rw.Lock()
	defer m.rw.Unlock()

	root, old, err := m.tree.insert(m.getroot(), 1 /*depth*/, key, value)
	if err != nil {
		return err
	}
	m.setroot(blacken(root))
	m.upsertcounts(old != nil)
	if m.validateall {
		m.Validate()
	}
	return nil
}

// Delete remove the entry for key and return the removed value.
// Deleting an absent key is a no-op, hands back the configured
// default and publishes nothing.
func (m *Map[K, V]) Delete(key K) (V, bool, error) {
	m.rw.Lock()
	defer m.rw.Unlock()

	root, _, deleted, err := m.tree.remove(m.getroot(), key)
	if err != nil {
		var value V
		return value, false, err
	} else if deleted == nil {
		return m.missing(), false, nil
	}
	m.setroot(blacken(root))
	atomic.AddInt64(&m.n_deletes, 1)
	if m.validateall {
		m.Validate()
	}
	return deleted.value, true, nil
}

// Clear drop all entries.
func (m *Map[K, V]) Clear() {
	m.rw.Lock()
	defer m.rw.Unlock()

	m.setroot(nil)
	atomic.AddInt64(&m.n_clears, 1)
	infof("%v cleared\n", m.logprefix)
}

// Get return the value for key, or the configured default when key is
// absent. Lock-free, reads one published version of the tree.
func (m *Map[K, V]) Get(key K) (V, bool, error) {
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
func (m *Map[K, V]) Has(key K) (bool, error) {
	atomic.AddInt64(&m.n_lookups, 1)
	nd, err := m.tree.getkey(m.getroot(), key)
	return nd != nil, err
}

// Count return the number of entries, walking the full tree. Entry
// counts are not cached.
func (m *Map[K, V]) Count() int64 {
	return m.getroot().count()
}

// Isempty return true if the map has no entries.
func (m *Map[K, V]) Isempty() bool {
	return m.getroot() == nil
}

// Min return the entry with the least key.
func (m *Map[K, V]) Min() (K, V, bool) {
	atomic.AddInt64(&m.n_lookups, 1)
	return entry(m.getroot().extreme(toleft))
}

// Max return the entry with the largest key.
func (m *Map[K, V]) Max() (K, V, bool) {
	atomic.AddInt64(&m.n_lookups, 1)
	return entry(m.getroot().extreme(toright))
}

// Snapshot return a frozen read-only version of the map. The snapshot
// shares every node with the map and costs a single root load; later
// mutations on the map rebuild their path and leave the snapshot's
// version untouched.
func (m *Map[K, V]) Snapshot() *Snapshot[K, V] {
	return newsnapshot(m.name, &m.tree, m.getroot(), m.missing)
}

// Stats return a set of map statistics.
func (m *Map[K, V]) Stats() map[string]interface{} {
	stats := m.mapstats.stats(map[string]interface{}{})
	stats["n_count"] = m.Count()
	stats["memcapacity"] = m.memcapacity
	stats["uptime"] = time.Since(m.borntime).String()
	stats["h_upsertdepth"] = m.tree.h_upsertdepth.Fullstats()
	return stats
}

// Log vital statistics.
func (m *Map[K, V]) Log() {
	logstats(m.logprefix, m.memcapacity, m.Stats())
}

// Dump tree in textual format onto w, for debugging.
func (m *Map[K, V]) Dump(w io.Writer) {
	m.getroot().dump(w, "")
}

// Dotdump to convert whole tree into dot script that can be
// visualized using graphviz.
func (m *Map[K, V]) Dotdump(buffer io.Writer) {
	dotdump(m.getroot(), buffer)
}

var _ api.OrderedMap[int, int] = (*Map[int, int])(nil)
