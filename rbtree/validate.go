package rbtree

import "errors"
import "fmt"
import "math"
import "sync/atomic"

import "github.com/nahi/avl-tree/lib"

// height of the tree cannot exceed a certain limit. For example if
// the tree holds 1-million entries, a fully balanced tree shall have
// a height of 20 levels. maxheight provide some breathing space on
// top of ideal height.
func maxheight(entries int64) float64 {
	if entries < 5 {
		return (3 * (math.Log2(float64(entries)) + 1)) // 3x breathing space.
	}
	return 2 * math.Log2(float64(entries)) // 2x breathing space
}

var redafterred = errors.New("consecutive red spotted")

var redroot = errors.New("root is red")

func unbalancedblacks(lblacks, rblacks int64) error {
	return fmt.Errorf("unbalancedblacks {%v,%v}", lblacks, rblacks)
}

// validatetree walk the subtree under nd checking sort order, red-red
// adjacency and black-height uniformity, filling h with the depth of
// every entry. Return the subtree's black height and its entry count.
func (t *tree[K, V]) validatetree(
	nd *node[K, V], fromred bool, blacks, depth int64,
	h *lib.HistogramInt64) (nblacks, count int64) {

	if nd == nil {
		return blacks, 0
	}
	h.Add(depth)

	if fromred && isred(nd) {
		panic(redafterred)
	}
	if nd.black {
		blacks++
	}

	if l := nd.left; l != nil && t.cmp(l.key, nd.key) != -1 {
		fmsg := "validatetree(): sort order violated {%v, %v}"
		panic(fmt.Errorf(fmsg, l.key, nd.key))
	}
	if r := nd.right; r != nil && t.cmp(r.key, nd.key) != 1 {
		fmsg := "validatetree(): sort order violated {%v, %v}"
		panic(fmt.Errorf(fmsg, nd.key, r.key))
	}

	lblacks, lcount := t.validatetree(nd.left, isred(nd), blacks, depth+1, h)
	rblacks, rcount := t.validatetree(nd.right, isred(nd), blacks, depth+1, h)
	if lblacks != rblacks {
		panic(unbalancedblacks(lblacks, rblacks))
	}
	return lblacks, lcount + rcount + 1
}

// validateversion check one complete version of the tree, returning
// its entry count.
func (t *tree[K, V]) validateversion(root *node[K, V]) int64 {
	if isred(root) {
		panic(redroot)
	}
	h := lib.NewhistorgramInt64(1, 256, 1)
	_, count := t.validatetree(root, false /*fromred*/, 0 /*blacks*/, 1 /*depth*/, h)

	// `h`.max should not exceed certain limit.
	if h.Samples() > 8 {
		if float64(h.Max()) > maxheight(count) {
			fmsg := "validateversion(): max height %v exceeds log2(%v)"
			panic(fmt.Errorf(fmsg, float64(h.Max()), count))
		}
	}
	return count
}

// Validate walk the full tree and panic when a red-black invariant or
// a stats invariant is broken. Cost is O(n). Meant for debugging;
// run it from a quiescent map, or let "validate.enable" run it on the
// writer path after every mutation.
func (m *Map[K, V]) Validate() {
	count := m.tree.validateversion(m.getroot())
	m.validatestats(count)
}

func (m *Map[K, V]) validatestats(count int64) {
	// Clear resets the tree but not the counters.
	if atomic.LoadInt64(&m.n_clears) > 0 {
		return
	}
	n_inserts := atomic.LoadInt64(&m.n_inserts)
	n_deletes := atomic.LoadInt64(&m.n_deletes)
	if count != (n_inserts - n_deletes) {
		fmsg := "validatestats(): n_count:%v != (n_inserts:%v - n_deletes:%v)"
		panic(fmt.Errorf(fmsg, count, n_inserts, n_deletes))
	}
}

// Validate walk one published version of the tree and panic when a
// red-black invariant is broken. Cost is O(n). Stats counters are not
// cross-checked here, counter updates are not atomic with root
// publication.
func (m *CASMap[K, V]) Validate() {
	m.tree.validateversion(m.getroot())
}
