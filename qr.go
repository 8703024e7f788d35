// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qrgen generates QR codes.

A code is built from a Config holding the text and encoding options.
New returns a Config with the defaults, level M and minimum version 1:

	code, err := qrgen.New("HELLO WORLD").Generate()

The result is a square grid of modules rendered with String, SVG or
the Code accessors.
*/
package qrgen // import "github.com/unixdj/qrgen"

import (
	"unicode/utf8"

	"github.com/unixdj/qrgen/coding"
)

// A Module is a single cell of a QR symbol.
type Module byte

const (
	Light Module = iota
	Dark
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level = coding.Level

const (
	L = coding.L
	M = coding.M
	Q = coding.Q
	H = coding.H
)

// Errors returned by Generate, re-exported from package coding.
var (
	ErrEmpty = coding.ErrEmpty
	ErrLevel = coding.ErrLevel
)

// A Config describes a QR code to generate.
type Config struct {
	Value      string // text to encode
	Level      Level  // error correction level; default M
	MinVersion int    // lowest acceptable version; default 1
	Latin1     bool   // encode byte mode text as ISO 8859-1
}

// New returns a Config encoding value at level M starting from
// version 1.
func New(value string) *Config {
	return &Config{Value: value, Level: M, MinVersion: 1}
}

// Encode encodes value at the given error correction level.
func Encode(value string, level Level) (*Code, error) {
	return (&Config{Value: value, Level: level, MinVersion: 1}).Generate()
}

// detect chooses the encoding mode for value by monotonic promotion:
// Numeric if all characters are digits, Alphanumeric if all belong
// to the alphanumeric set, Byte otherwise.  Byte mode covers the
// UTF-8 serialisation of the text and requires it to be valid.
func detect(value string) (coding.Mode, error) {
	if value == "" {
		return 0, ErrEmpty
	}
	mode := coding.Numeric
	for i := 0; i < len(value); i++ {
		r := rune(value[i])
		if coding.IsDigit(r) {
			continue
		}
		if coding.IsAlphanumeric(r) {
			mode = coding.Alphanumeric
			continue
		}
		mode = coding.Byte
		break
	}
	if mode == coding.Byte && !utf8.ValidString(value) {
		return 0, coding.SegmentError{Text: value, Mode: coding.Byte}
	}
	return mode, nil
}

// pickVersion returns the smallest version from min up whose data
// capacity at level l fits seg.
func pickVersion(seg coding.Segment, l Level, min int) (coding.Version, error) {
	if min < int(coding.MinVersion) || min > int(coding.MaxVersion) {
		return 0, coding.VersionError(min)
	}
	for v := coding.Version(min); v <= coding.MaxVersion; v++ {
		if seg.EncodedLength(v.SizeClass()) <= v.DataBytes(l)*8 {
			return v, nil
		}
	}
	return 0, coding.CapacityError{
		Length:   len(seg.Text),
		Capacity: coding.Capacity(seg.Mode),
	}
}

// Generate encodes the configured value and returns its module grid.
func (c *Config) Generate() (*Code, error) {
	if c.Level < L || c.Level > H {
		return nil, ErrLevel
	}
	mode, err := detect(c.Value)
	if err != nil {
		return nil, err
	}
	value := c.Value
	if c.Latin1 && mode == coding.Byte {
		if value, err = toLatin1(value); err != nil {
			return nil, err
		}
	}
	seg := coding.Segment{Text: value, Mode: mode}
	v, err := pickVersion(seg, c.Level, c.MinVersion)
	if err != nil {
		return nil, err
	}
	g, err := coding.Encode(v, c.Level, seg)
	if err != nil {
		return nil, err
	}
	code := &Code{Size: g.Size, Modules: make([]Module, g.Size*g.Size)}
	for i := range code.Modules {
		if g.Dark(i/g.Size, i%g.Size) {
			code.Modules[i] = Dark
		}
	}
	return code, nil
}

// A Code is a square module grid, row-major.
type Code struct {
	Size    int
	Modules []Module
}

// At returns the module at row r, column col.
func (c *Code) At(r, col int) Module { return c.Modules[r*c.Size+col] }

// Dark reports whether the module at column x, row y is dark.
// Modules outside the grid are light.
func (c *Code) Dark(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Modules[y*c.Size+x] == Dark
}
