// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"

	"github.com/bitmark-inc/bstree/fault"
)

// sizes of an exported node
const (
	selfKeyedLength = 3 // low, high, value
	keyedLength     = 4 // low, high, value, key
)

// Export - the whole tree as nested sequences
//
//	absent node:      []
//	self keyed node:  [low, high, value]
//	keyed node:       [low, high, value, key]
func (tree *Tree) Export() []interface{} {
	type entry struct {
		i    index
		dest *interface{}
	}

	var result interface{}
	stack := []entry{{tree.root, &result}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if absent == e.i {
			*e.dest = []interface{}{}
			continue
		}

		n := &tree.nodes[e.i]
		var record []interface{}
		if n.selfKeyed {
			record = []interface{}{nil, nil, n.value}
		} else {
			record = []interface{}{nil, nil, n.value, n.key}
		}
		*e.dest = record
		stack = append(stack,
			entry{n.high, &record[1]},
			entry{n.low, &record[0]},
		)
	}
	return result.([]interface{})
}

// Import - replace the contents of the tree with a nested structure
// produced by Export
//
// the structure is validated and the ordering checked before the
// tree is changed, any problem leaves the tree untouched
func (tree *Tree) Import(data []interface{}) error {
	t := NewWithOptions(tree.options)

	type entry struct {
		data interface{}
		s    slot
	}

	stack := []entry{{data, rootSlot}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		record, ok := e.data.([]interface{})
		if !ok {
			return fault.NewKeyError(fault.ErrCorruptData, fmt.Sprintf("node is %T", e.data))
		}

		var key Item
		selfKeyed := false
		switch len(record) {
		case 0:
			continue
		case selfKeyedLength:
			key, ok = record[2].(Item)
			if !ok {
				return fault.NewKeyError(fault.ErrCorruptData, fmt.Sprintf("value without key is %T", record[2]))
			}
			selfKeyed = true
		case keyedLength:
			key, ok = record[3].(Item)
			if !ok {
				return fault.NewKeyError(fault.ErrCorruptData, fmt.Sprintf("key is %T", record[3]))
			}
		default:
			return fault.NewKeyError(fault.ErrCorruptData, fmt.Sprintf("node length %d", len(record)))
		}

		j := t.newNode(key, record[2], selfKeyed)
		t.setLink(e.s, j)
		t.count += 1
		stack = append(stack,
			entry{record[1], slot{parent: j, high: true}},
			entry{record[0], slot{parent: j, high: false}},
		)
	}

	if err := t.Check(); nil != err {
		return err
	}

	tree.nodes = t.nodes
	tree.free = t.free
	tree.root = t.root
	tree.count = t.count
	return nil
}
