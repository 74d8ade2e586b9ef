package rbtree

import "fmt"

import "github.com/nahi/avl-tree/api"

// remove return the rebuilt subtree after deleting key. rebalance
// reports that the subtree lost one unit of black height and the
// caller must compensate; it rides the return values in tail position
// since losing a black is routine, not exceptional. deleted is the
// removed node, nil when key was absent, in which case the original
// subtree is handed back untouched.
func (t *tree[K, V]) remove(
	nd *node[K, V], key K) (*node[K, V], bool, *node[K, V], error) {

	if nd == nil {
		return nil, false, nil, nil
	}
	switch t.cmp(key, nd.key) {
	case -1:
		return t.removechild(nd, toleft, key)
	case 0:
		root, rebalance := t.removenode(nd)
		return root, rebalance, nd, nil
	case 1:
		return t.removechild(nd, toright, key)
	}
	return nil, false, nil, api.ErrorUnorderedKeys
}

func (t *tree[K, V]) removechild(
	nd *node[K, V], d side, key K) (*node[K, V], bool, *node[K, V], error) {

	c, rebalance, deleted, err := t.remove(nd.child(d), key)
	if err != nil {
		return nil, false, nil, err
	} else if deleted == nil { // key absent, nothing was rebuilt
		return nd, false, nil, nil
	}
	root := nd.withchild(d, c)
	if rebalance {
		root, rebalance = t.rebalancedelete(root, d)
	}
	return root, rebalance, deleted, nil
}

// removenode splice nd itself out of its subtree.
func (t *tree[K, V]) removenode(nd *node[K, V]) (*node[K, V], bool) {
	switch {
	case nd.left == nil && nd.right == nil:
		// the node vanishes; removing a black leaf leaves the path
		// one black short.
		return nil, nd.black

	case nd.left == nil || nd.right == nil:
		child := nd.left
		if child == nil {
			child = nd.right
		}
		if nd.black == false {
			return child, false
		}
		// keep the path's black count by recoloring the survivor,
		// which must be red.
		if isred(child) == false {
			panic(fmt.Errorf("removenode(): spliced child is black, call the programmer"))
		}
		return blacken(child), false
	}

	// both children present: replace nd with the least entry of the
	// right subtree, keeping nd's color and left child.
	right, rebalance, min := t.removemin(nd.right)
	root := min.clone()
	root.black = nd.black
	root.left, root.right = nd.left, right
	if rebalance {
		return t.rebalancedelete(root, toright)
	}
	return root, false
}

// removemin delete the least entry under nd, returning the rebuilt
// subtree, the rebalance signal and the removed node. nd must not be
// the empty sentinel.
func (t *tree[K, V]) removemin(nd *node[K, V]) (*node[K, V], bool, *node[K, V]) {
	if nd.left == nil {
		root, rebalance := t.removenode(nd)
		return root, rebalance, nd
	}
	c, rebalance, min := t.removemin(nd.left)
	root := nd.withchild(toleft, c)
	if rebalance {
		root, rebalance = t.rebalancedelete(root, toleft)
	}
	return root, rebalance, min
}

// rebalancedelete compensate one missing black on side d of nd. The
// returned flag passes the deficit up when it could not be absorbed
// here. nd must be owned by the ongoing mutation; the sibling subtree
// may be shared and is cloned before any recoloring. The sibling is
// never the empty sentinel while side d is one black short.
func (t *tree[K, V]) rebalancedelete(nd *node[K, V], d side) (*node[K, V], bool) {
	e := d.other()
	sibling := nd.child(e)

	if nd.black {
		if sibling.black {
			if childrenblack(sibling) {
				// lower the whole subtree by one black and pass the
				// deficit to the parent.
				nd.setchild(e, redden(sibling))
				return nd, true
			}
			return balancedrotate(nd, d), false
		}
		// red sibling: rotate the 3-children pattern into a
		// 2-children one, then resolve within the rotated subtree.
		root := rotate(nd, d)
		inner, again := t.rebalancedelete(root.child(d), d)
		if again {
			panic(fmt.Errorf("rebalancedelete(): deficit survived a red parent, call the programmer"))
		}
		return root.setchild(d, inner), false
	}

	if childrenblack(sibling) {
		// red node absorbs the deficit by trading colors with its
		// sibling.
		nd.black = true
		nd.setchild(e, redden(sibling))
		return nd, false
	}
	return balancedrotate(nd, d), false
}

// balancedrotate move one black from the sibling side over to the
// shrunk side d: a double rotation when the sibling's red child sits
// on the inner side, then the single rotation toward d, with both
// children of the new subtree root repainted black.
func balancedrotate[K, V any](nd *node[K, V], d side) *node[K, V] {
	e := d.other()
	sibling := nd.child(e)
	if isred(sibling.child(d)) && isblack(sibling.child(e)) {
		nd.setchild(e, rotate(sibling, e))
	}
	root := rotate(nd, d)
	root.left, root.right = blacken(root.left), blacken(root.right)
	return root
}
