package rbtree

import "github.com/nahi/avl-tree/api"
import "github.com/nahi/avl-tree/lib"

// tree implements the persistent red-black algorithms shared by the
// Map and CASMap flavours. It carries no tree state, only the key
// comparator and an optional depth histogram. Every function is pure
// over node versions: it builds fresh nodes for the rebuilt path and
// never touches a published one.
//
// The comparator must answer exactly -1, 0 or +1. Any other response
// marks the two keys as unordered and fails the operation in progress
// with api.ErrorUnorderedKeys.
type tree[K, V any] struct {
	cmp           func(a, b K) int
	h_upsertdepth *lib.HistogramInt64 // optional, caller must serialize inserts
}

// getkey walk nd looking for key. Absent keys return nil without an
// error. Safe against any number of concurrent readers and writers,
// nd being one complete published version.
func (t *tree[K, V]) getkey(nd *node[K, V], key K) (*node[K, V], error) {
	for nd != nil {
		switch t.cmp(key, nd.key) {
		case -1:
			nd = nd.left
		case 0:
			return nd, nil
		case 1:
			nd = nd.right
		default:
			return nil, api.ErrorUnorderedKeys
		}
	}
	return nil, nil
}

// insert return the rebuilt subtree after inserting key, or replacing
// its value when already present, in which case old is the displaced
// node. The returned root may be red; the container forces it black
// before publishing.
func (t *tree[K, V]) insert(
	nd *node[K, V], depth int64, key K, value V) (*node[K, V], *node[K, V], error) {

	if nd == nil {
		if t.h_upsertdepth != nil {
			t.h_upsertdepth.Add(depth)
		}
		return newnode[K, V](key, value), nil, nil
	}

	var root, old *node[K, V]
	var err error

	switch t.cmp(key, nd.key) {
	case -1:
		root, old, err = t.insertchild(nd, toleft, depth, key, value)
	case 0:
		root, old = nd.clone(), nd
		root.value = value
		if t.h_upsertdepth != nil {
			t.h_upsertdepth.Add(depth)
		}
	case 1:
		root, old, err = t.insertchild(nd, toright, depth, key, value)
	default:
		return nil, nil, api.ErrorUnorderedKeys
	}
	if err != nil {
		return nil, nil, err
	}
	return pullupred(root), old, nil
}

func (t *tree[K, V]) insertchild(
	nd *node[K, V], d side, depth int64, key K, value V) (*node[K, V], *node[K, V], error) {

	c, old, err := t.insert(nd.child(d), depth+1, key, value)
	if err != nil {
		return nil, nil, err
	}
	root := nd.withchild(d, c)
	if root.black && isblack(root.child(d.other())) && isred(c) && !childrenblack(c) {
		root = rebalanceinsert(root, d)
	}
	return root, old, nil
}

// rebalanceinsert resolve a red-red violation under nd's side d child
// with a single rotation away from d, preceded by a rotation of the
// child itself when the red grandchild sits on the inner side (the
// double rotation case). Color swaps inside rotate keep black heights
// intact.
func rebalanceinsert[K, V any](nd *node[K, V], d side) *node[K, V] {
	if isred(nd.child(d).child(d.other())) {
		nd = nd.withchild(d, rotate(nd.child(d), d))
	}
	return rotate(nd, d.other())
}

// pullupred defer a black-height excess one level up rather than
// rotating eagerly: a black node with two red children goes red while
// both children go black. nd must be owned by the ongoing mutation.
func pullupred[K, V any](nd *node[K, V]) *node[K, V] {
	if nd.black && isred(nd.left) && isred(nd.right) {
		nd.black = false
		nd.left, nd.right = blacken(nd.left), blacken(nd.right)
	}
	return nd
}

// rotate nd toward side d; toleft is the classic left rotation,
// promoting the right child. Exactly two fresh nodes are built, the
// pivot trades colors with nd, in-order key sequence is preserved and
// no published node is touched.
func rotate[K, V any](nd *node[K, V], d side) *node[K, V] {
	e := d.other()
	pivot := nd.child(e).clone()
	top := nd.clone()
	top.setchild(e, pivot.child(d))
	pivot.setchild(d, top)
	pivot.black, top.black = top.black, pivot.black
	return pivot
}
