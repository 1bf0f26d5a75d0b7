// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"

	"github.com/bitmark-inc/bstree/fault"
)

// Check - verify the ordering and node count of the tree
//
// every key must lie within the bounds set by its ancestors: low
// sub-trees hold keys not greater than the node, high sub-trees keys
// not smaller.  Equality is accepted on both sides since rotations
// can move a duplicate below an equal key.
func (tree *Tree) Check() error {
	type entry struct {
		i     index
		lower Item // nil for unbounded
		upper Item
	}

	count := 0
	stack := []entry{{tree.root, nil, nil}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if absent == e.i {
			continue
		}
		if e.i < 0 || int(e.i) >= len(tree.nodes) {
			return fault.NewKeyError(fault.ErrCorruptData, fmt.Sprintf("node index %d", e.i))
		}
		count += 1
		if count > len(tree.nodes) {
			return fault.NewKeyError(fault.ErrCorruptData, "cycle")
		}

		n := &tree.nodes[e.i]
		if nil == n.key {
			return fault.NewKeyError(fault.ErrCorruptData, "missing key")
		}
		if nil != e.lower {
			c, err := compare(n.key, e.lower)
			if nil != err {
				return fault.NewKeyError(fault.ErrCorruptData, err)
			}
			if c < 0 {
				return fault.NewKeyError(fault.ErrCorruptData, fmt.Sprintf("%v below %v", n.key, e.lower))
			}
		}
		if nil != e.upper {
			c, err := compare(n.key, e.upper)
			if nil != err {
				return fault.NewKeyError(fault.ErrCorruptData, err)
			}
			if c > 0 {
				return fault.NewKeyError(fault.ErrCorruptData, fmt.Sprintf("%v above %v", n.key, e.upper))
			}
		}
		stack = append(stack,
			entry{n.low, e.lower, n.key},
			entry{n.high, n.key, e.upper},
		)
	}

	if count != tree.count {
		return fault.NewKeyError(fault.ErrCorruptData, fmt.Sprintf("count %d expected %d", count, tree.count))
	}
	return nil
}
