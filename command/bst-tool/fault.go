// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/bstree/fault"
)

// common errors - keep in alphabetic order
const (
	ErrMissingFileName = fault.InvalidError("file name is required")
	ErrNonPositiveSize = fault.InvalidError("count must be positive")
)
