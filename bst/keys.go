// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/bitmark-inc/bstree/fault"
)

// Item - a key item must implement the Compare function
//
// Compare is only called with an argument of the same dynamic type
// as the receiver
type Item interface {
	Compare(interface{}) int // for low/high ordering of items
}

// String - a string key
type String string

// Compare - lexical ordering
func (s String) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(String)))
}

func (s String) String() string {
	return string(s)
}

// Integer - a signed integer key
type Integer int64

// Compare - numeric ordering
func (i Integer) Compare(x interface{}) int {
	j := x.(Integer)
	switch {
	case i < j:
		return -1
	case i > j:
		return 1
	default:
		return 0
	}
}

func (i Integer) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// compare two keys, failing if their types differ
func compare(a Item, b Item) (int, error) {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return 0, fault.NewKeyError(fault.ErrTypeMismatch, a)
	}
	return a.Compare(b), nil
}
