// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Update - replace the value and/or key of the first node matching key
//
// the entry is removed and inserted again.  With neither replacement
// given the entry is re-inserted unchanged, which moves it to a
// balanced position.  Once a value or key is replaced the entry
// always carries an explicit key.
func (tree *Tree) Update(key Item, value interface{}, newKey Item) error {
	s, _, err := tree.locate(key)
	if nil != err {
		return err
	}

	// check the new key before anything is removed
	if nil != newKey && absent != tree.root {
		if _, err := compare(newKey, tree.nodes[tree.root].key); nil != err {
			return err
		}
	}

	oldValue, oldKey, selfKeyed := tree.popAt(s)

	if nil == value && nil == newKey {
		return tree.insert(oldKey, oldValue, selfKeyed)
	}
	if nil == value {
		value = oldValue
	}
	if nil == newKey {
		newKey = oldKey
	}
	return tree.insert(newKey, value, false)
}
