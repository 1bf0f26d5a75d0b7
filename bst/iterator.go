// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Iterator - in-order walk over the tree
//
// the tree must not be modified while an iterator is in use
type Iterator struct {
	tree    *Tree
	stack   []index
	next    index
	current index
	reverse bool
}

// Keys - iterate over the nodes in ascending key order, or
// descending order if reverse is set
func (tree *Tree) Keys(reverse bool) *Iterator {
	return &Iterator{
		tree:    tree,
		stack:   make([]index, 0, 32),
		next:    tree.root,
		current: absent,
		reverse: reverse,
	}
}

// Next - advance to the next node, false when there are no more
func (it *Iterator) Next() bool {
	nodes := it.tree.nodes
	for absent != it.next {
		it.stack = append(it.stack, it.next)
		if it.reverse {
			it.next = nodes[it.next].high
		} else {
			it.next = nodes[it.next].low
		}
	}
	if 0 == len(it.stack) {
		it.current = absent
		return false
	}
	it.current = it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	if it.reverse {
		it.next = nodes[it.current].low
	} else {
		it.next = nodes[it.current].high
	}
	return true
}

// Key - key of the current node
func (it *Iterator) Key() Item {
	if absent == it.current {
		return nil
	}
	return it.tree.nodes[it.current].key
}

// Value - value of the current node
func (it *Iterator) Value() interface{} {
	if absent == it.current {
		return nil
	}
	return it.tree.nodes[it.current].value
}

// KeyList - all keys in order
func (tree *Tree) KeyList(reverse bool) []Item {
	keys := make([]Item, 0, tree.count)
	for it := tree.Keys(reverse); it.Next(); {
		keys = append(keys, it.Key())
	}
	return keys
}

// First - the lowest key, nil if the tree is empty
func (tree *Tree) First() Item {
	i := tree.root
	if absent == i {
		return nil
	}
	for absent != tree.nodes[i].low {
		i = tree.nodes[i].low
	}
	return tree.nodes[i].key
}

// Last - the highest key, nil if the tree is empty
func (tree *Tree) Last() Item {
	i := tree.root
	if absent == i {
		return nil
	}
	for absent != tree.nodes[i].high {
		i = tree.nodes[i].high
	}
	return tree.nodes[i].key
}
