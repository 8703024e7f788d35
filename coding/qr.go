// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: bit stream
// assembly, error correction, matrix construction and masking.
package coding // import "github.com/unixdj/qrgen/coding"

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/unixdj/qrgen/gf256"
)

var (
	ErrEmpty     = errors.New("qr: empty input")
	ErrLevel     = errors.New("qr: invalid level")
	ErrAlignment = errors.New("qr: bit stream not aligned to a codeword")
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// A Version represents a QR version.  A QR code with version v has
// 4v+17 modules on a side: the larger the version, the more
// information the code can store.
type Version int

const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// Size returns the number of modules on a side of a QR code with
// version v.
func (v Version) Size() int { return int(v)*4 + 17 }

// QR version size classes, determining header field widths.
const (
	Class0 = iota // versions 1 to 9
	Class1        // versions 10 to 26
	Class2        // versions 27 to 40
)

// SizeClass returns the size class of v.
func (v Version) SizeClass() int {
	switch {
	case v <= 9:
		return Class0
	case v <= 26:
		return Class1
	}
	return Class2
}

// VersionError represents an invalid QR version number.
type VersionError int

func (e VersionError) Error() string {
	return "qr: invalid version " + strconv.Itoa(int(e))
}

// CapacityError reports input exceeding the capacity of version 40
// at the requested error correction level.
type CapacityError struct {
	Length   int // input length in characters; in bytes for byte mode
	Capacity int // maximum capacity for the detected mode
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("qr: %d characters exceed capacity of %d",
		e.Length, e.Capacity)
}

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota
	M
	Q
	H
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// fbits returns the two level bits of the format word:
// L=01, M=00, Q=11, H=10.
func (l Level) fbits() uint32 { return uint32(l) ^ 1 }

// A Mode is a QR data encoding mode.
type Mode int

const (
	Numeric      Mode = iota // decimal digits
	Alphanumeric             // digits, upper case letters, " $%*+-./:"
	Byte                     // raw bytes, by convention UTF-8
)

func (m Mode) String() string {
	switch m {
	case Numeric:
		return "numeric"
	case Alphanumeric:
		return "alphanumeric"
	case Byte:
		return "byte"
	}
	return strconv.Itoa(int(m))
}

// Indicator returns the four bit mode indicator.
func (m Mode) Indicator() uint32 { return 1 << m }

// CountLen returns the length in bits of the character count field
// for m in the given version size class.
func (m Mode) CountLen(class int) int { return countLen[m][class] }

const alphamask uint64 = 0x07fffffe_07ffec31 // SPACE $% *+ -./ [0-9] : [A-Z]

// Alphanumeric encoding table, indexed by the low six bits of the
// character.  Used after validation.
// "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
var alpha = [64]byte{
	00, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, // 0x40
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 00, 00, 00, 00, 00, // 0x50
	36, 00, 00, 00, 37, 38, 00, 00, 00, 00, 39, 40, 00, 41, 42, 43, // 0x20
	00, 01, 02, 03, 04, 05, 06, 07, 010, 9, 44, 00, 00, 00, 00, 00, // 0x30
}

// IsAlphanumeric reports whether r belongs to the QR alphanumeric
// character set.
func IsAlphanumeric(r rune) bool {
	return uint32(r)-' ' < 64 && alphamask>>(uint32(r)-' ')&1 != 0
}

// IsDigit reports whether r is a decimal digit.
func IsDigit(r rune) bool { return uint32(r)-'0' < 10 }

// ECInfo describes the error correction block structure for a
// version and level.  Data codewords are split into Blocks1 blocks
// of Size1 codewords followed by Blocks2 blocks of Size2 codewords;
// every block gets Check check codewords.
type ECInfo struct {
	Data    int // data codewords
	Check   int // check codewords per block
	Blocks1 int // group 1 block count
	Size1   int // group 1 block size
	Blocks2 int // group 2 block count; may be 0
	Size2   int // Size1 + 1, or 0 if Blocks2 == 0
}

// ECInfo returns the error correction block structure for v and l.
func (v Version) ECInfo(l Level) ECInfo {
	lev := &vtab[v].level[l]
	nd := vtab[v].bytes - lev.nblock*lev.check
	e := ECInfo{
		Data:    nd,
		Check:   lev.check,
		Blocks1: lev.nblock - nd%lev.nblock,
		Size1:   nd / lev.nblock,
		Blocks2: nd % lev.nblock,
	}
	if e.Blocks2 != 0 {
		e.Size2 = e.Size1 + 1
	}
	return e
}

// DataBytes returns the number of data codewords that can be stored
// in a QR code with the given version and level.
func (v Version) DataBytes(l Level) int {
	lev := &vtab[v].level[l]
	return vtab[v].bytes - lev.nblock*lev.check
}

// Capacity returns the character capacity of mode m at version 40,
// level L, the largest any input can hope for.
func Capacity(m Mode) int {
	n := MaxVersion.DataBytes(L)*8 - 4 - m.CountLen(Class2)
	switch m {
	case Numeric:
		return n * 3 / 10
	case Alphanumeric:
		return n * 2 / 11
	}
	return n / 8
}

// Bits is a bit stream under construction.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for the data codewords
// of a QR code with the given version and level.
func NewBits(v Version, l Level) *Bits {
	return &Bits{b: make([]byte, 0, v.DataBytes(l))}
}

func (b *Bits) Bits() int { return b.nbit }

// Bytes returns the stream as codewords.
// It panics if the stream is not a whole number of codewords.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional codeword")
	}
	return b.b
}

// Write appends the low nbit bits of v, most significant first.
func (b *Bits) Write(v uint32, nbit int) {
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// PadTo pads b to n bits, which must be a multiple of 8: up to four
// zero terminator bits, zero bits to the next codeword boundary,
// then alternating pad codewords 0xec and 0x11.  PadTo fails with
// ErrAlignment if the terminated stream cannot be aligned within n
// bits.
func (b *Bits) PadTo(n int) error {
	b.nbit = min(b.nbit+4, n)
	for len(b.b)*8 < b.nbit {
		b.b = append(b.b, 0)
	}
	if len(b.b)*8 > n {
		return ErrAlignment
	}
	b.nbit = len(b.b) * 8
	for pad := byte(0xec); len(b.b)*8 < n; pad ^= 0xec ^ 0x11 {
		b.b = append(b.b, pad)
		b.nbit += 8
	}
	return nil
}

// A Segment is a run of text with its encoding mode.
type Segment struct {
	Text string
	Mode Mode
}

// SegmentError represents text not encodable in its mode.
type SegmentError Segment

func (e SegmentError) Error() string {
	if e.Mode == Byte {
		return fmt.Sprintf("qr: invalid utf-8 string %#q", e.Text)
	}
	return fmt.Sprintf("qr: non-%s string %#q", e.Mode, e.Text)
}

// EncodedLength returns the encoded length of seg in bits in the
// given version size class, including the mode indicator and
// character count field.
func (seg Segment) EncodedLength(class int) int {
	n := 4 + seg.Mode.CountLen(class)
	switch b := len(seg.Text); seg.Mode {
	case Numeric:
		n += (10*b + 2) / 3
	case Alphanumeric:
		n += (11*b + 1) / 2
	default:
		n += b * 8
	}
	return n
}

// Encode appends the header and payload of seg to b.
// The character count is the length of the text in bytes, which for
// the numeric and alphanumeric sets equals its length in characters.
func (seg Segment) Encode(b *Bits, class int) error {
	b.Write(seg.Mode.Indicator(), 4)
	b.Write(uint32(len(seg.Text)), seg.Mode.CountLen(class))
	s := seg.Text
	switch seg.Mode {
	case Numeric:
		for ; len(s) >= 3; s = s[3:] {
			v, ok := digits(s[:3])
			if !ok {
				return SegmentError(seg)
			}
			b.Write(v, 10)
		}
		if len(s) != 0 {
			v, ok := digits(s)
			if !ok {
				return SegmentError(seg)
			}
			b.Write(v, 1+3*len(s))
		}
	case Alphanumeric:
		for ; len(s) >= 2; s = s[2:] {
			if !IsAlphanumeric(rune(s[0])) ||
				!IsAlphanumeric(rune(s[1])) {
				return SegmentError(seg)
			}
			b.Write(uint32(alpha[s[0]&0x3f])*45+
				uint32(alpha[s[1]&0x3f]), 11)
		}
		if s != "" {
			if !IsAlphanumeric(rune(s[0])) {
				return SegmentError(seg)
			}
			b.Write(uint32(alpha[s[0]&0x3f]), 6)
		}
	default:
		for i := 0; i < len(s); i++ {
			b.Write(uint32(s[i]), 8)
		}
	}
	return nil
}

// digits parses up to three digits by integer arithmetic.
func digits(s string) (uint32, bool) {
	var v uint32
	for i := 0; i < len(s); i++ {
		d := uint32(s[i]) - '0'
		if d > 9 {
			return 0, false
		}
		v = v*10 + d
	}
	return v, true
}

// Interleaved splits the data codewords in b into error correction
// blocks, computes check codewords for each block and returns the
// final codeword sequence: data blocks interleaved column-major,
// then check blocks likewise.
func (b *Bits) Interleaved(v Version, l Level) []byte {
	info := v.ECInfo(l)
	data := b.Bytes()
	if len(data) != info.Data {
		panic("qr: wrong data length")
	}

	nblock := info.Blocks1 + info.Blocks2
	blocks := make([][]byte, nblock)
	checks := make([][]byte, nblock)
	rs := gf256.NewRSEncoder(Field, info.Check)
	chk := make([]byte, nblock*info.Check)
	for i, rest := 0, data; i < nblock; i++ {
		n := info.Size1
		if i >= info.Blocks1 {
			n = info.Size2
		}
		blocks[i], rest = rest[:n], rest[n:]
		checks[i], chk = chk[:info.Check], chk[info.Check:]
		rs.ECC(blocks[i], checks[i])
	}

	out := make([]byte, 0, vtab[v].bytes)
	for i := 0; len(out) < info.Data; i++ {
		for _, blk := range blocks {
			if i < len(blk) {
				out = append(out, blk[i])
			}
		}
	}
	for i := 0; i < info.Check; i++ {
		for _, blk := range checks {
			out = append(out, blk[i])
		}
	}
	return out
}

// BitStream reads bits from an underlying buffer.
type BitStream struct {
	b   []byte
	pos int
}

// NewBitStream returns a BitStream reading from b.
func NewBitStream(b []byte) BitStream { return BitStream{b: b} }

// Next returns the next bit from s as 0 or 1.
// Past the end of the buffer Next returns 0.
func (s *BitStream) Next() byte {
	var b byte
	if i := s.pos >> 3; i < len(s.b) {
		b = s.b[i] >> (7 &^ s.pos) & 1
		s.pos++
	}
	return b
}

// Encode encodes one segment into a QR symbol with the given version
// and level.
func Encode(v Version, l Level, seg Segment) (*Grid, error) {
	if v < MinVersion || v > MaxVersion {
		return nil, VersionError(v)
	}
	if l < L || l > H {
		return nil, ErrLevel
	}
	b := NewBits(v, l)
	if err := seg.Encode(b, v.SizeClass()); err != nil {
		return nil, err
	}
	nb := v.DataBytes(l) * 8
	if b.Bits() > nb {
		panic("qr: too much data")
	}
	if err := b.PadTo(nb); err != nil {
		return nil, err
	}
	g := newGrid(v)
	stream := NewBitStream(b.Interleaved(v, l))
	g.place(&stream)
	return g.mask(l), nil
}
