// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - settings for the tree shell
//
// The configuration file is a Lua script that returns a table, so
// values can be computed, read from other files or taken from the
// environment with os.getenv.  Table fields map onto Configuration
// by their gluamapper tags, anything not given keeps its default.
package configuration
