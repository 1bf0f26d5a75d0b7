// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/bstree/bst"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "bst-tool"
	app.Usage = "create and inspect tree snapshots"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a random value,key list",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, c",
					Value: 200,
					Usage: " number of entries `COUNT`",
				},
				cli.Int64Flag{
					Name:  "seed, s",
					Value: 0,
					Usage: " random `SEED` [default: current time]",
				},
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: " write list to `FILE` [default: stdout]",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "build",
			Usage:     "insert a value,key list into a tree and save it as a snapshot",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "input, i",
					Value: "",
					Usage: "*value,key list `FILE`",
				},
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: "*snapshot `FILE`",
				},
				cli.BoolFlag{
					Name:  "no-balance, n",
					Usage: " build an unbalanced tree",
				},
			},
			Action: runBuild,
		},
		{
			Name:      "print",
			Usage:     "display the tree held in a snapshot",
			ArgsUsage: "FILE\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "depth, d",
					Value: bst.DefaultMaxDepth,
					Usage: " maximum depth to show `DEPTH`",
				},
				cli.BoolFlag{
					Name:  "values",
					Usage: " show values as well as keys",
				},
				cli.BoolFlag{
					Name:  "no-frame",
					Usage: " omit the surrounding frame",
				},
			},
			Action: runPrint,
		},
		{
			Name:      "check",
			Usage:     "verify the ordering of a snapshot",
			ArgsUsage: "FILE\n   (* = required)",
			Action:    runCheck,
		},
		{
			Name:  "version",
			Usage: "display bst-tool version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
