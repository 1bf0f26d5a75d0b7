// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/snapshot"
)

func runPrint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, err := loadTree(c.Args().First())
	if nil != err {
		return err
	}

	return tree.Print(m.w, c.Int("depth"), !c.Bool("no-frame"), c.Bool("values"))
}

// read a snapshot file into a new tree
func loadTree(fileName string) (*bst.Tree, error) {
	if "" == fileName {
		return nil, ErrMissingFileName
	}

	f, err := os.Open(fileName)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	data, err := snapshot.Decode(f)
	if nil != err {
		return nil, err
	}

	tree := bst.New(true)
	if err := tree.Import(data); nil != err {
		return nil, err
	}
	return tree, nil
}
