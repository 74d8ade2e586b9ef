package rbtree

import "encoding/json"
import "fmt"
import "sync/atomic"

import humanize "github.com/dustin/go-humanize"

// mapstats book-keep mutation and lookup counts for both container
// flavours. Counters are updated with atomic ops so that lock-free
// readers and CAS writers can bump them without coordination. They
// are advisory: a counter update and the root publication it belongs
// to are not a single atomic step.
type mapstats struct {
	n_lookups int64
	n_inserts int64
	n_updates int64
	n_deletes int64
	n_clears  int64
	n_retries int64 // CASMap only
}

func (st *mapstats) upsertcounts(updated bool) {
	if updated {
		atomic.AddInt64(&st.n_updates, 1)
	} else {
		atomic.AddInt64(&st.n_inserts, 1)
	}
}

func (st *mapstats) stats(stats map[string]interface{}) map[string]interface{} {
	stats["n_lookups"] = atomic.LoadInt64(&st.n_lookups)
	stats["n_inserts"] = atomic.LoadInt64(&st.n_inserts)
	stats["n_updates"] = atomic.LoadInt64(&st.n_updates)
	stats["n_deletes"] = atomic.LoadInt64(&st.n_deletes)
	stats["n_clears"] = atomic.LoadInt64(&st.n_clears)
	stats["n_retries"] = atomic.LoadInt64(&st.n_retries)
	stats["n_sets"] = stats["n_inserts"].(int64) + stats["n_updates"].(int64)
	return stats
}

func logstats(logprefix string, memcapacity int64, stats map[string]interface{}) {
	count := humanize.Comma(stats["n_count"].(int64))
	capstr := humanize.Bytes(uint64(memcapacity))
	infof("%v entries %v, memcapacity %v\n", logprefix, count, capstr)
	text, err := json.Marshal(stats)
	if err != nil {
		panic(fmt.Errorf("logstats(): %v", err))
	}
	infof("%v stats %v\n", logprefix, string(text))
}
