// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Pop - remove the first node matching key
//
// returns the value and key of the removed entry; if the node was
// inserted without a key the returned key is the value itself
func (tree *Tree) Pop(key Item) (interface{}, Item, error) {
	s, _, err := tree.locate(key)
	if nil != err {
		return nil, nil, err
	}
	value, k, _ := tree.popAt(s)
	return value, k, nil
}

// Delete - remove the first node matching key, discarding its entry
func (tree *Tree) Delete(key Item) error {
	_, _, err := tree.Pop(key)
	return err
}

// remove the node held by slot s and return its entry
//
// a node with two children takes the entry of its in-order neighbour
// from the heavier side, which is then spliced out; the root is not
// re-balanced
func (tree *Tree) popAt(s slot) (interface{}, Item, bool) {
	i := tree.link(s)
	n := tree.nodes[i]

	switch {
	case absent != n.low && absent != n.high:
		var ns slot
		var x index
		var replacement index
		if tree.balanceFactor(i) < 0 {
			// left-most node of the high sub-tree
			ns = slot{parent: i, high: true}
			x = n.high
			for absent != tree.nodes[x].low {
				ns = slot{parent: x, high: false}
				x = tree.nodes[x].low
			}
			replacement = tree.nodes[x].high
		} else {
			// right-most node of the low sub-tree
			ns = slot{parent: i, high: false}
			x = n.low
			for absent != tree.nodes[x].high {
				ns = slot{parent: x, high: true}
				x = tree.nodes[x].high
			}
			replacement = tree.nodes[x].low
		}
		tree.replaceContents(i, x)
		tree.spliceOut(ns, x, replacement)

	case absent != n.low:
		tree.spliceOut(s, i, n.low)

	case absent != n.high:
		tree.spliceOut(s, i, n.high)

	default:
		tree.spliceOut(s, i, absent)
	}

	tree.count -= 1
	return n.value, n.key, n.selfKeyed
}
