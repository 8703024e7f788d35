// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrgen

import (
	"fmt"
	"io"
	"strings"
)

// WriteSVG writes an SVG rendering of c to w: one unit per module
// with a four module quiet zone, a white background and a black
// rectangle per dark module.
func (c *Code) WriteSVG(w io.Writer) error {
	t := c.Size + 2*border
	_, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d">
<rect width="%d" height="%d" fill="white"/>
<g fill="black" shape-rendering="crispEdges">
`, t, t, t, t)
	if err != nil {
		return err
	}
	for y := 0; y < c.Size; y++ {
		for x := 0; x < c.Size; x++ {
			if c.Modules[y*c.Size+x] == Dark {
				_, err = fmt.Fprintf(w,
					`<rect x="%d" y="%d" width="1" height="1"/>`+
						"\n", x+border, y+border)
				if err != nil {
					return err
				}
			}
		}
	}
	_, err = io.WriteString(w, "</g>\n</svg>\n")
	return err
}

// SVG returns the SVG rendering of c.
func (c *Code) SVG() string {
	var b strings.Builder
	c.WriteSVG(&b)
	return b.String()
}
