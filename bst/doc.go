// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - an approximately balanced binary search tree
//
// Note: an individual tree is not thread safe, so either access only
// in a single go routine or use mutex/rwmutex to restrict access.
//
// Nodes live in an index arena owned by the tree, children are
// arena indices and there are no parent pointers.  Rotations
// exchange node records in place so the index held by the parent
// always refers to the root of the rotated sub-tree.
//
// Balance is measured as the difference in node counts of the low
// and high sub-trees.  After each insert every node on the insert
// path is rotated if its balance exceeds the local tolerance, then
// the root is corrected by re-inserting its entry until the root
// balance is within the root tolerance.  Deletion does not perform
// the root correction.
//
// Duplicate keys are allowed and are inserted into the high
// sub-tree; find, pop and update act on the first match from the
// root.
package bst
