// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Each error is a typed constant so callers compare against the
// instance or test its class with the IsErrXxx functions.  Errors
// about a particular key are wrapped in a KeyError, the class tests
// and errors.Is still see the instance inside.
package fault
