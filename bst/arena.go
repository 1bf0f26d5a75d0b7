// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// position of a node in the arena
type index int

// marks a missing child or an empty tree
const absent index = -1

// a node in the tree
type node struct {
	low       index       // sub-tree of smaller keys
	high      index       // sub-tree of greater or equal keys
	key       Item        // key part for ordering
	value     interface{} // value part for data storage
	selfKeyed bool        // inserted without a key, value is the key
}

// the reference that holds a node index: either the root or one of
// the child fields of the parent
type slot struct {
	parent index // absent for the root
	high   bool
}

var rootSlot = slot{parent: absent}

// allocate a new node, reuses reclaimed nodes if any are available
func (tree *Tree) newNode(key Item, value interface{}, selfKeyed bool) index {
	n := node{
		low:       absent,
		high:      absent,
		key:       key,
		value:     value,
		selfKeyed: selfKeyed,
	}
	if absent == tree.free {
		tree.nodes = append(tree.nodes, n)
		return index(len(tree.nodes) - 1)
	}
	i := tree.free
	tree.free = tree.nodes[i].low
	tree.nodes[i] = n
	return i
}

// reclaim a node and keep it in the free list
func (tree *Tree) freeNode(i index) {
	tree.nodes[i] = node{
		low:  tree.free, // use as free list pointer
		high: absent,
	}
	tree.free = i
}

// read the index held by a slot
func (tree *Tree) link(s slot) index {
	switch {
	case absent == s.parent:
		return tree.root
	case s.high:
		return tree.nodes[s.parent].high
	default:
		return tree.nodes[s.parent].low
	}
}

// store an index into a slot
func (tree *Tree) setLink(s slot, i index) {
	switch {
	case absent == s.parent:
		tree.root = i
	case s.high:
		tree.nodes[s.parent].high = i
	default:
		tree.nodes[s.parent].low = i
	}
}

// copy the entry of one node into another, children are untouched
func (tree *Tree) replaceContents(i index, from index) {
	n := &tree.nodes[i]
	f := tree.nodes[from]
	n.key = f.key
	n.value = f.value
	n.selfKeyed = f.selfKeyed
}

// remove node i from the slot that holds it, putting replacement
// (which must be the only child of i, or absent) in its place
//
// the replacement record is moved into i so the slot is only
// rewritten when the node has no children
func (tree *Tree) spliceOut(s slot, i index, replacement index) {
	if absent == replacement {
		tree.setLink(s, absent)
		tree.freeNode(i)
		return
	}
	tree.nodes[i] = tree.nodes[replacement]
	tree.freeNode(replacement)
}
