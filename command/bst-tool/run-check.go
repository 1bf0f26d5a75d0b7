// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

// the import already verifies ordering, so a tree that loads is valid
func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, err := loadTree(c.Args().First())
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "first: %v  last: %v\n", tree.First(), tree.Last())
	}

	balance := 0
	if !tree.IsEmpty() {
		balance, _ = tree.BalanceFactor(tree.RootKey())
	}
	fmt.Fprintf(m.w, "nodes: %d  height: %d  balance: %d  check: ok\n", tree.Count(), tree.Height(), balance)
	return nil
}
