// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrgen

import (
	"io"
	"strings"
)

// Quiet zone width in modules.
const border = 4

// blocks maps a pair of vertically adjacent modules, upper dark in
// bit 1, lower dark in bit 0, to a half-block character.
var blocks = [4]string{" ", "▄", "▀", "█"}

// String renders the code as text, two module rows per line, with a
// four module quiet zone on all sides.  The grid is 4v+17 modules
// plus the quiet zone, an odd number of rows, so the last line pairs
// the bottom quiet row with a phantom light row.
func (c *Code) String() string {
	var b strings.Builder
	pix := c.Size + 2*border
	b.Grow((pix + 1) * (pix/2 + 1) * 3)
	for y := -border; y < c.Size+border; y += 2 {
		for x := -border; x < c.Size+border; x++ {
			n := 0
			if c.Dark(x, y) {
				n = 2
			}
			if c.Dark(x, y+1) {
				n++
			}
			b.WriteString(blocks[n])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteText writes the text rendering of c to w.
func (c *Code) WriteText(w io.Writer) error {
	_, err := io.WriteString(w, c.String())
	return err
}
