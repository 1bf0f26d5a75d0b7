// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/snapshot"
)

func runBuild(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	input := c.String("input")
	output := c.String("output")
	if "" == input || "" == output {
		return ErrMissingFileName
	}

	in, err := os.Open(input)
	if nil != err {
		return err
	}
	defer in.Close()

	tree := bst.New(!c.Bool("no-balance"))
	n, err := readList(tree, in)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "read: %d entries from: %s\n", n, input)
	}

	out, err := os.Create(output)
	if nil != err {
		return err
	}
	err = snapshot.Encode(out, tree.Export())
	if e := out.Close(); nil == err {
		err = e
	}
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "nodes: %d  height: %d  root: %v\n", tree.Count(), tree.Height(), tree.RootKey())
	return nil
}

// readList - insert each "value,key" line, a missing key makes the
// value its own key
func readList(tree *bst.Tree, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if "" == line {
			continue
		}
		var err error
		if i := strings.IndexByte(line, ','); i < 0 {
			err = tree.Insert(bst.String(line), nil)
		} else {
			err = tree.Insert(line[:i], bst.String(line[i+1:]))
		}
		if nil != err {
			return n, err
		}
		n += 1
	}
	return n, scanner.Err()
}
