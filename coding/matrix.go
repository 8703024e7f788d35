// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Grid is a square module matrix under construction, with a
// parallel grid marking function modules: finders, separators,
// timing and alignment patterns, the dark module and the format and
// version information areas.  Function modules are written by the
// pattern placers and the format and version writers, never by the
// data placer or the masker.
type Grid struct {
	Version Version
	Size    int
	pix     []byte // 1 is dark
	fun     []byte // 1 is function module
}

// Dark reports whether the module at row r, column c is dark.
func (g *Grid) Dark(r, c int) bool { return g.pix[r*g.Size+c] != 0 }

// Function reports whether the module at row r, column c is a
// function module.
func (g *Grid) Function(r, c int) bool { return g.fun[r*g.Size+c] != 0 }

// setf writes a function module.
func (g *Grid) setf(r, c int, dark byte) {
	i := r*g.Size + c
	g.pix[i] = dark
	g.fun[i] = 1
}

// newGrid returns a Grid for version v with all function patterns
// placed and the format and version areas reserved.
func newGrid(v Version) *Grid {
	n := v.Size()
	g := &Grid{
		Version: v,
		Size:    n,
		pix:     make([]byte, n*n),
		fun:     make([]byte, n*n),
	}

	// Finder patterns and separators.
	g.finder(0, 0)
	g.finder(0, n-7)
	g.finder(n-7, 0)

	// Timing patterns: row and column 6, dark on even offsets.
	for i := 8; i < n-8; i++ {
		dot := byte(1) &^ byte(i)
		g.setf(6, i, dot)
		g.setf(i, 6, dot)
	}

	// Alignment patterns, skipping the three finder corners.
	centers := v.AlignCenters()
	for _, r := range centers {
		for _, c := range centers {
			if r <= 8 && c <= 8 || r <= 8 && c >= n-8 ||
				r >= n-8 && c <= 8 {
				continue
			}
			g.align(r, c)
		}
	}

	// The dark module.
	g.setf(int(v)*4+9, 8, 1)

	// Reserve the format information modules.
	fa, fb := formatPos(n)
	for i := range fa {
		g.setf(fa[i][0], fa[i][1], 0)
		g.setf(fb[i][0], fb[i][1], 0)
	}

	// Reserve the version information blocks.
	if v >= 7 {
		for i := 0; i < 18; i++ {
			g.setf(n-11+i%3, i/3, 0)
			g.setf(i/3, n-11+i%3, 0)
		}
	}
	return g
}

// finder places a 7x7 finder pattern with its upper left corner at
// row r0, column c0, and the light separator around it.
func (g *Grid) finder(r0, c0 int) {
	for r := r0 - 1; r <= r0+7; r++ {
		if r < 0 || r >= g.Size {
			continue
		}
		for c := c0 - 1; c <= c0+7; c++ {
			if c < 0 || c >= g.Size {
				continue
			}
			var dark byte
			if d := max(abs(r-r0-3), abs(c-c0-3)); d == 3 || d <= 1 {
				dark = 1
			}
			g.setf(r, c, dark)
		}
	}
}

// align places a 5x5 alignment pattern centred on row r, column c.
func (g *Grid) align(r, c int) {
	for i := -2; i <= 2; i++ {
		for j := -2; j <= 2; j++ {
			var dark byte
			if d := max(abs(i), abs(j)); d != 1 {
				dark = 1
			}
			g.setf(r+i, c+j, dark)
		}
	}
}

// formatPos returns the module coordinates of the two format
// information copies, most significant bit first.
func formatPos(n int) (a, b [15][2]int) {
	a = [15][2]int{
		{8, 0}, {8, 1}, {8, 2}, {8, 3}, {8, 4}, {8, 5}, {8, 7},
		{8, 8}, {7, 8}, {5, 8}, {4, 8}, {3, 8}, {2, 8}, {1, 8},
		{0, 8},
	}
	for i := 0; i < 7; i++ {
		b[i] = [2]int{n - 1 - i, 8}
	}
	for i := 7; i < 15; i++ {
		b[i] = [2]int{8, n - 15 + i}
	}
	return
}

// place writes bits from s into the data modules in zig-zag order:
// column pairs right to left, skipping the vertical timing column,
// alternating upward and downward, right module before left.
// Once s runs out it yields zeroes, leaving the remainder modules
// light.
func (g *Grid) place(s *BitStream) {
	n := g.Size
	up := true
	for right := n - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for i := 0; i < n; i++ {
			r := i
			if up {
				r = n - 1 - i
			}
			for _, c := range [2]int{right, right - 1} {
				if g.fun[r*n+c] == 0 && s.Next() != 0 {
					g.pix[r*n+c] = 1
				}
			}
		}
		up = !up
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
