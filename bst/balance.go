// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
)

// number of nodes in the sub-tree rooted at i
func (tree *Tree) size(i index) int {
	count := 0
	stack := []index{i}
	for len(stack) > 0 {
		j := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if absent == j {
			continue
		}
		count += 1
		n := &tree.nodes[j]
		stack = append(stack, n.low, n.high)
	}
	return count
}

// low minus high sub-tree size, negative means high heavy
func (tree *Tree) balanceFactor(i index) int {
	n := &tree.nodes[i]
	return tree.size(n.low) - tree.size(n.high)
}

// BalanceFactor - balance of the first node matching key
func (tree *Tree) BalanceFactor(key Item) (int, error) {
	_, i, err := tree.locate(key)
	if nil != err {
		return 0, err
	}
	return tree.balanceFactor(i), nil
}

// the high child takes the place of i, the old entry of i moves into
// the record of the high child which becomes the new low child
//
// returns the index of the record that now holds the old entry
func (tree *Tree) rotateLeft(i index) index {
	n := tree.nodes[i]
	r := n.high
	h := tree.nodes[r]

	tree.nodes[r] = node{
		low:       n.low,
		high:      h.low,
		key:       n.key,
		value:     n.value,
		selfKeyed: n.selfKeyed,
	}
	tree.nodes[i] = node{
		low:       r,
		high:      h.high,
		key:       h.key,
		value:     h.value,
		selfKeyed: h.selfKeyed,
	}
	return r
}

// mirror of rotateLeft
func (tree *Tree) rotateRight(i index) index {
	n := tree.nodes[i]
	l := n.low
	h := tree.nodes[l]

	tree.nodes[l] = node{
		low:       h.high,
		high:      n.high,
		key:       n.key,
		value:     n.value,
		selfKeyed: n.selfKeyed,
	}
	tree.nodes[i] = node{
		low:       h.low,
		high:      l,
		key:       h.key,
		value:     h.value,
		selfKeyed: h.selfKeyed,
	}
	return l
}

// rotate i if it is outside the local tolerance
//
// returns the index of the record exchanged with i, absent if there
// was no rotation
func (tree *Tree) balance(i index) index {
	bf := tree.balanceFactor(i)
	switch {
	case bf < -tree.options.Tolerance:
		return tree.rotateLeft(i)
	case bf > tree.options.Tolerance:
		return tree.rotateRight(i)
	default:
		return absent
	}
}

// balance each node of an insert path except the first, then
// return the index now holding the inserted entry
//
// a rotation moves the rotated entry to another record, so later
// path entries naming that record are redirected to the record that
// now holds the entry originally found there
func (tree *Tree) balancePath(path []index, inserted index) index {
	rest := make([]index, 0, len(path))
	rest = append(rest, path[1:]...)
	rest = append(rest, inserted)

	for x := 0; x < len(rest)-1; x += 1 {
		i := rest[x]
		r := tree.balance(i)
		if absent == r {
			continue
		}
		for y := x + 1; y < len(rest); y += 1 {
			if r == rest[y] {
				rest[y] = i
			}
		}
	}
	return rest[len(rest)-1]
}

// correct the root while its balance is outside the root tolerance
// by re-inserting the root entry and balancing its new position
//
// a correction can leave the imbalance unchanged, typically when the
// root key is duplicated and the entry returns to the same side, so
// the loop stops after two corrections without a new minimum and
// never runs more than count times
func (tree *Tree) rootBalance() {
	const patience = 2

	best := -1
	stale := 0
	for n := 0; n < tree.count && absent != tree.root; n += 1 {
		bf := abs(tree.balanceFactor(tree.root))
		if bf <= tree.options.RootTolerance {
			return
		}
		if best < 0 || bf < best {
			best = bf
			stale = 0
		} else {
			stale += 1
			if stale >= patience {
				return
			}
		}

		value, key, selfKeyed := tree.popAt(rootSlot)
		j, path, err := tree.place(key, value, selfKeyed)
		fault.PanicIfError("root balance re-insert", err)

		if len(path) > 2 {
			j = tree.balancePath(path, j)
		}
		tree.balance(j)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
