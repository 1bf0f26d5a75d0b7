// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/urfave/cli"
)

const (
	valueSource = "1234567890qwertyuiopasdfghjklzxcvbnm"
	keySource   = "qwertyuiopasdfghjklzxcvbnm"
	valueLength = 4
	keyLength   = 3
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	if count <= 0 {
		return ErrNonPositiveSize
	}

	seed := c.Int64("seed")
	if 0 == seed {
		seed = time.Now().UnixNano()
	}

	if m.verbose {
		fmt.Fprintf(m.e, "count: %d  seed: %d\n", count, seed)
	}

	output := c.String("output")
	if "" == output {
		return generate(m.w, count, seed)
	}

	f, err := os.Create(output)
	if nil != err {
		return err
	}
	err = generate(f, count, seed)
	if e := f.Close(); nil == err {
		err = e
	}
	return err
}

// generate - write count random "value,key" lines
func generate(w io.Writer, count int, seed int64) error {
	r := rand.New(rand.NewSource(seed))
	b := bufio.NewWriter(w)
	for i := 0; i < count; i += 1 {
		value := randomString(r, valueSource, valueLength)
		key := randomString(r, keySource, keyLength)
		if _, err := fmt.Fprintf(b, "%s,%s\n", value, key); nil != err {
			return err
		}
	}
	return b.Flush()
}

func randomString(r *rand.Rand, source string, n int) string {
	s := make([]byte, n)
	for i := range s {
		s[i] = source[r.Intn(len(source))]
	}
	return string(s)
}
