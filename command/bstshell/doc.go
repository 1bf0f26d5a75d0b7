// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command bstshell - interactive editing of a single tree
//
// Keys are strings.  Each command is a single letter followed by
// comma separated arguments:
//
//	i value[,key]           insert, no key means the value is the key
//	d key                   delete
//	f key                   find
//	u key[,value[,new-key]] update, empty fields are left unchanged
//	s [name]                save a snapshot
//	r [name]                restore a snapshot
//	a                       list available snapshots
//	p                       print the tree
//	l [-r]                  list keys, -r for descending order
//	c                       count, height and consistency check
//	h                       help
//	q                       quit
//
// The tree is printed after each command that changes it.
package main
