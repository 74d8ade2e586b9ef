package rbtree

import "fmt"
import "io"
import "strings"

// side selects one of a node's two children. Rebalancing logic is
// symmetric left/right and is written once, parameterized by side.
type side byte

const (
	toleft side = iota
	toright
)

func (d side) other() side {
	if d == toleft {
		return toright
	}
	return toleft
}

// node in the persistent red-black tree. The nil *node is the shared
// empty sentinel, colored black. A node is immutable once a version
// of the tree holding it is published; mutations rebuild the path
// from the root to the affected entry and share every subtree off
// that path with older versions.
type node[K, V any] struct {
	left  *node[K, V]
	right *node[K, V]
	key   K
	value V
	black bool
}

// fresh nodes are born red.
func newnode[K, V any](key K, value V) *node[K, V] {
	return &node[K, V]{key: key, value: value}
}

func isred[K, V any](nd *node[K, V]) bool {
	return nd != nil && nd.black == false
}

func isblack[K, V any](nd *node[K, V]) bool {
	return nd == nil || nd.black
}

// childrenblack report whether both children are black, the empty
// sentinel counting as black.
func childrenblack[K, V any](nd *node[K, V]) bool {
	return isblack(nd.left) && isblack(nd.right)
}

// clone return a private copy of nd sharing both children. The copy
// can be recolored and re-wired freely until it is published.
func (nd *node[K, V]) clone() *node[K, V] {
	c := *nd
	return &c
}

func (nd *node[K, V]) child(d side) *node[K, V] {
	if d == toleft {
		return nd.left
	}
	return nd.right
}

// setchild re-wire child d. nd must be owned by the ongoing mutation,
// never a node some published version can reach.
func (nd *node[K, V]) setchild(d side, c *node[K, V]) *node[K, V] {
	if d == toleft {
		nd.left = c
	} else {
		nd.right = c
	}
	return nd
}

// withchild clone nd with child d replaced.
func (nd *node[K, V]) withchild(d side, c *node[K, V]) *node[K, V] {
	return nd.clone().setchild(d, c)
}

// blacken return a black copy of nd, or nd itself when already black.
func blacken[K, V any](nd *node[K, V]) *node[K, V] {
	if isblack(nd) {
		return nd
	}
	nd = nd.clone()
	nd.black = true
	return nd
}

// redden return a red copy of nd. nd must not be the empty sentinel.
func redden[K, V any](nd *node[K, V]) *node[K, V] {
	if isred(nd) {
		return nd
	}
	nd = nd.clone()
	nd.black = false
	return nd
}

func (nd *node[K, V]) count() int64 {
	if nd == nil {
		return 0
	}
	return 1 + nd.left.count() + nd.right.count()
}

// extreme descend along side d to the least (toleft) or the largest
// (toright) entry, nil over the empty sentinel.
func (nd *node[K, V]) extreme(d side) *node[K, V] {
	if nd == nil {
		return nil
	}
	for nd.child(d) != nil {
		nd = nd.child(d)
	}
	return nd
}

// inorder walk entries in ascending key order until yield says stop.
func (nd *node[K, V]) inorder(yield func(K, V) bool) bool {
	if nd == nil {
		return true
	}
	return nd.left.inorder(yield) && yield(nd.key, nd.value) && nd.right.inorder(yield)
}

func entry[K, V any](nd *node[K, V]) (key K, value V, ok bool) {
	if nd == nil {
		return key, value, false
	}
	return nd.key, nd.value, true
}

//---- maintanence methods.

func (nd *node[K, V]) repr() string {
	color := "black"
	if isred(nd) {
		color = "red"
	}
	return fmt.Sprintf("%v %v %v", nd.key, nd.value, color)
}

func (nd *node[K, V]) dump(w io.Writer, prefix string) {
	if nd == nil {
		fmt.Fprintf(w, "nil\n")
		return
	}
	fmt.Fprintf(w, "%v\n", nd.repr())
	prefix += "  "
	fmt.Fprintf(w, "%vleft: ", prefix)
	nd.left.dump(w, prefix)
	fmt.Fprintf(w, "%vright: ", prefix)
	nd.right.dump(w, prefix)
}

func (nd *node[K, V]) dotdump(buffer io.Writer) {
	if nd == nil {
		return
	}

	whatcolor := func(childnd *node[K, V]) string {
		if isred(childnd) {
			return "red"
		}
		return "black"
	}

	lines := []string{
		fmt.Sprintf("  \"%v\" [label=\"{%v}\"];\n", nd.key, nd.key),
	}
	fmsg := "  \"%v\" -> \"%v\" [color=%v];\n"
	if nd.left != nil {
		line := fmt.Sprintf(fmsg, nd.key, nd.left.key, whatcolor(nd.left))
		lines = append(lines, line)
	}
	if nd.right != nil {
		line := fmt.Sprintf(fmsg, nd.key, nd.right.key, whatcolor(nd.right))
		lines = append(lines, line)
	}
	buffer.Write([]byte(strings.Join(lines, "")))
	nd.left.dotdump(buffer)
	nd.right.dotdump(buffer)
}

// dotdump a whole tree version as dot script, visualizable with
// graphviz.
func dotdump[K, V any](root *node[K, V], buffer io.Writer) {
	lines := []string{
		"digraph rbtree {",
		"  node[shape=record];\n",
		"}",
	}
	buffer.Write([]byte(strings.Join(lines[:len(lines)-1], "\n")))
	root.dotdump(buffer)
	buffer.Write([]byte(lines[len(lines)-1]))
}
