// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// rendering limits
const (
	DefaultMaxDepth = 7
	MaximumDepth    = 64 // render recurses once per level
	MaximumWidth    = 160
)

// horizontal indent of each level
const spacer = 4

// PrettyPrint - render the tree sideways, high keys at the top
//
// nodes deeper than maxDepth are shown as "- ..." and a maxDepth of
// zero or less selects DefaultMaxDepth, values above MaximumDepth are
// reduced to it.  The frame is as wide as the longest line up to
// MaximumWidth, longer lines are truncated.
func (tree *Tree) PrettyPrint(maxDepth int, frame bool, showValue bool) string {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	} else if maxDepth > MaximumDepth {
		maxDepth = MaximumDepth
	}
	upper, mid, lower := tree.render(tree.root, maxDepth, showValue)

	lines := make([]string, 0, len(upper)+1+len(lower))
	lines = append(lines, upper...)
	lines = append(lines, mid)
	lines = append(lines, lower...)

	b := strings.Builder{}
	if !frame {
		for _, l := range lines {
			b.WriteString(truncate(l, MaximumWidth))
			b.WriteByte('\n')
		}
		return b.String()
	}

	width := 0
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > width {
			width = n
		}
	}
	if width > MaximumWidth {
		width = MaximumWidth
	}

	b.WriteString("+-" + padLeft("UPPER", width, '-') + "-+\n")
	for _, l := range lines {
		b.WriteString("| " + padRight(truncate(l, width), width, ' ') + " |\n")
	}
	b.WriteString("+-" + padLeft("LOWER", width, '-') + "-+\n")
	return b.String()
}

// Print - write the rendered tree
func (tree *Tree) Print(w io.Writer, maxDepth int, frame bool, showValue bool) error {
	_, err := io.WriteString(w, tree.PrettyPrint(maxDepth, frame, showValue))
	return err
}

// returns the lines above the node, the node line and the lines below
func (tree *Tree) render(i index, depth int, showValue bool) ([]string, string, []string) {
	if 0 == depth {
		return nil, "- ...", nil
	}
	if absent == i {
		return nil, "- EMPTY", nil
	}

	n := &tree.nodes[i]
	mid := fmt.Sprintf("-%v", n.key)
	if showValue && !n.selfKeyed {
		mid += fmt.Sprintf(" (value: %v)", n.value)
	}

	upper := make([]string, 0, 8)
	lower := make([]string, 0, 8)

	if absent != n.high {
		u, m, d := tree.render(n.high, depth-1, showValue)
		indent := spaces(len(d) + spacer)
		for _, l := range u {
			upper = append(upper, indent+l)
		}
		upper = append(upper, indent+"/"+m)
		for k, l := range d {
			upper = append(upper, spaces(len(d)-k+spacer-1)+"/"+spaces(k+1)+l)
		}
	}

	if absent != n.low {
		u, m, d := tree.render(n.low, depth-1, showValue)
		indent := spaces(len(u) + spacer)
		for k, l := range u {
			lower = append(lower, spaces(k+spacer)+"\\"+spaces(len(u)-k)+l)
		}
		lower = append(lower, indent+"\\"+m)
		for _, l := range d {
			lower = append(lower, indent+l)
		}
	}
	return upper, mid, lower
}

func spaces(n int) string {
	return strings.Repeat(" ", n)
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	return string([]rune(s)[:width])
}

func padLeft(s string, width int, fill rune) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(string(fill), width-n) + s
}

func padRight(s string, width int, fill rune) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(string(fill), width-n)
}
