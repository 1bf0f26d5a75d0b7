// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Insert - add a new entry to the tree
//
// if key is nil the value is its own key and must implement Item.
// Duplicates are allowed, a key equal to an existing key is added to
// the high side of that node.
func (tree *Tree) Insert(value interface{}, key Item) error {
	selfKeyed := false
	if nil == key {
		k, ok := value.(Item)
		if !ok {
			return fault.NewKeyError(fault.ErrTypeMismatch, value)
		}
		key = k
		selfKeyed = true
	}
	return tree.insert(key, value, selfKeyed)
}

// internal insert with balancing
func (tree *Tree) insert(key Item, value interface{}, selfKeyed bool) error {
	j, path, err := tree.place(key, value, selfKeyed)
	if nil != err {
		return err
	}
	if tree.options.Balance && len(path) > 2 {
		tree.balancePath(path, j)
		tree.rootBalance()
	}
	return nil
}

// link a new node below the last node of the search path
//
// all comparisons are made before the tree is modified so a type
// mismatch leaves the tree unchanged
func (tree *Tree) place(key Item, value interface{}, selfKeyed bool) (index, []index, error) {
	path := make([]index, 0, 32)
	s := rootSlot
	i := tree.root
	for absent != i {
		path = append(path, i)
		n := &tree.nodes[i]
		c, err := compare(key, n.key)
		if nil != err {
			return absent, nil, err
		}
		if c < 0 {
			s = slot{parent: i, high: false}
			i = n.low
		} else {
			s = slot{parent: i, high: true}
			i = n.high
		}
	}

	j := tree.newNode(key, value, selfKeyed)
	tree.setLink(s, j)
	tree.count += 1
	return j, path, nil
}
