// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// default balance limits
const (
	DefaultTolerance     = 1 // rotate a path node when |balance| exceeds this
	DefaultRootTolerance = 2 // correct the root when |balance| exceeds this
)

// Options - fixed at construction
type Options struct {
	Balance       bool
	Tolerance     int
	RootTolerance int
}

// Tree - type to hold the node arena and the root of a tree
type Tree struct {
	nodes   []node
	free    index // linked list of reclaimed nodes
	root    index
	count   int
	options Options
}

// New - create an initially empty tree with default tolerances
func New(balance bool) *Tree {
	return NewWithOptions(Options{
		Balance:       balance,
		Tolerance:     DefaultTolerance,
		RootTolerance: DefaultRootTolerance,
	})
}

// NewWithOptions - create an initially empty tree
//
// tolerances below one are replaced by the defaults
func NewWithOptions(options Options) *Tree {
	if options.Tolerance < 1 {
		options.Tolerance = DefaultTolerance
	}
	if options.RootTolerance < 1 {
		options.RootTolerance = DefaultRootTolerance
	}
	return &Tree{
		nodes:   make([]node, 0, 64),
		free:    absent,
		root:    absent,
		count:   0,
		options: options,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return absent == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Options - the options the tree was created with
func (tree *Tree) Options() Options {
	return tree.options
}

// RootKey - key of the root node, nil if the tree is empty
func (tree *Tree) RootKey() Item {
	if absent == tree.root {
		return nil
	}
	return tree.nodes[tree.root].key
}

// Clear - discard all nodes
func (tree *Tree) Clear() {
	tree.nodes = tree.nodes[:0]
	tree.free = absent
	tree.root = absent
	tree.count = 0
}
