// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package snapshot - byte encoding and storage of exported trees
//
// An exported tree is a nested structure of []interface{} (see
// bst.Tree.Export).  It is encoded as a sequence of tagged records:
//
//	BOF record carrying the format version
//	nodes in pre-order:
//	  absent record
//	  node record, value record
//	  keyed node record, value record, key record
//	EOF record
//
// Each record is a one byte tag, a varint length and the data.
package snapshot
