// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
)

// find the first node matching key on the path from the root
//
// returns the slot holding the node as well as its index
func (tree *Tree) locate(key Item) (slot, index, error) {
	s := rootSlot
	i := tree.root
	for absent != i {
		n := &tree.nodes[i]
		c, err := compare(key, n.key)
		if nil != err {
			return rootSlot, absent, err
		}
		switch {
		case c < 0:
			s = slot{parent: i, high: false}
			i = n.low
		case c > 0:
			s = slot{parent: i, high: true}
			i = n.high
		default:
			return s, i, nil
		}
	}
	return rootSlot, absent, fault.NewKeyError(fault.ErrNotFound, key)
}

// Find - return the value stored with the first node matching key
func (tree *Tree) Find(key Item) (interface{}, error) {
	_, i, err := tree.locate(key)
	if nil != err {
		return nil, err
	}
	return tree.nodes[i].value, nil
}

// Has - true if some node matches key
func (tree *Tree) Has(key Item) bool {
	_, _, err := tree.locate(key)
	return nil == err
}

// Height - number of nodes on the longest root to leaf path
func (tree *Tree) Height() int {
	type entry struct {
		i     index
		depth int
	}
	height := 0
	stack := []entry{{tree.root, 1}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if absent == e.i {
			continue
		}
		if e.depth > height {
			height = e.depth
		}
		n := &tree.nodes[e.i]
		stack = append(stack, entry{n.low, e.depth + 1}, entry{n.high, e.depth + 1})
	}
	return height
}
