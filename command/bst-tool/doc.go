// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Offline utilities for tree snapshots
//
// e.g. generate a random list, build a snapshot from it and show it:
//
//	bst-tool generate --count=200 --output=list200.txt
//	bst-tool build --input=list200.txt --output=saved_tree.bst
//	bst-tool print --depth=5 saved_tree.bst
//	bst-tool check saved_tree.bst
package main
