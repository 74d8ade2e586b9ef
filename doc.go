// Package avltree is a collection of ordered, in-memory associative
// containers and the libraries supporting them.
//
// api:
//
// Interface specification and error values common to all container
// implementations in this repository.
//
// lib:
//
// Convinience types that can be used by other packages. Package shall
// not import packages other than golang's standard packages.
//
// rbtree:
//
// A persistent red-black tree for sorting and retrieving {key,value}
// entries. Every mutation builds a new version of the tree sharing
// unchanged subtrees with older versions, which makes reads wait-free.
// Two container flavours are supplied, one serializing writers under a
// mutex and one racing writers through an atomic compare-and-swap of
// the root.
package avltree
