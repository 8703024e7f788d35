// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"bytes"
	"testing"
)

func TestECInfo(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		for l := L; l <= H; l++ {
			e := v.ECInfo(l)
			if n := e.Blocks1*e.Size1 + e.Blocks2*e.Size2; n != e.Data {
				t.Errorf("%v-%v: blocks sum to %d, want %d",
					v, l, n, e.Data)
			}
			if e.Blocks2 == 0 && e.Size2 != 0 ||
				e.Blocks2 != 0 && e.Size2 != e.Size1+1 {
				t.Errorf("%v-%v: group 2 size %d of %d",
					v, l, e.Size2, e.Size1)
			}
			total := e.Data + (e.Blocks1+e.Blocks2)*e.Check
			if total != vtab[v].bytes {
				t.Errorf("%v-%v: %d codewords, want %d",
					v, l, total, vtab[v].bytes)
			}
		}
	}
	for l, want := range [4]int{19, 16, 13, 9} {
		if got := MinVersion.DataBytes(Level(l)); got != want {
			t.Errorf("version 1-%v: %d data codewords, want %d",
				Level(l), got, want)
		}
	}
}

func TestCapacity(t *testing.T) {
	for _, tc := range []struct {
		mode Mode
		want int
	}{
		{Numeric, 7089},
		{Alphanumeric, 4296},
		{Byte, 2953},
	} {
		if got := Capacity(tc.mode); got != tc.want {
			t.Errorf("Capacity(%v) = %d, want %d",
				tc.mode, got, tc.want)
		}
	}
}

func TestBitsWrite(t *testing.T) {
	var b Bits
	b.Write(0b101, 3)
	b.Write(0b0111011, 7)
	b.Write(0x5c, 8)
	b.Write(0x3ffff, 18)
	if b.Bits() != 36 {
		t.Fatalf("Bits() = %d", b.Bits())
	}
	b.Write(0xa, 4)
	if b.Bits() != 40 {
		t.Fatalf("Bits() = %d", b.Bits())
	}
	want := []byte{0b10101110, 0b11010111, 0b00111111,
		0xff, 0b11111010}
	if !bytes.Equal(b.b, want) {
		t.Fatalf("bits = %08b, want %08b", b.b, want)
	}
}

func TestEncodeAlphanumeric(t *testing.T) {
	seg := Segment{"HELLO WORLD", Alphanumeric}
	if n := seg.EncodedLength(Class0); n != 4+9+61 {
		t.Fatalf("EncodedLength = %d", n)
	}
	b := NewBits(1, M)
	if err := seg.Encode(b, Class0); err != nil {
		t.Fatal(err)
	}
	if err := b.PadTo(Version(1).DataBytes(M) * 8); err != nil {
		t.Fatal(err)
	}
	want := []byte{
		0x20, 0x5b, 0x0b, 0x78, 0xd1, 0x72, 0xdc, 0x4d,
		0x43, 0x40, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11,
	}
	if !bytes.Equal(b.Bytes(), want) {
		t.Fatalf("codewords %#02x, want %#02x", b.Bytes(), want)
	}
}

func TestEncodeNumeric(t *testing.T) {
	b := NewBits(1, M)
	if err := (Segment{"1234567890", Numeric}).Encode(b, Class0); err != nil {
		t.Fatal(err)
	}
	if err := b.PadTo(Version(1).DataBytes(M) * 8); err != nil {
		t.Fatal(err)
	}
	want := []byte{
		16, 40, 123, 114, 49, 80, 0, 236,
		17, 236, 17, 236, 17, 236, 17, 236,
	}
	if !bytes.Equal(b.Bytes(), want) {
		t.Fatalf("codewords %d, want %d", b.Bytes(), want)
	}
}

func TestEncodeByte(t *testing.T) {
	b := NewBits(1, M)
	if err := (Segment{"Hello, 世界!", Byte}).Encode(b, Class0); err != nil {
		t.Fatal(err)
	}
	if err := b.PadTo(Version(1).DataBytes(M) * 8); err != nil {
		t.Fatal(err)
	}
	want := []byte{
		64, 228, 134, 86, 198, 198, 242, 194,
		14, 75, 137, 110, 121, 88, 194, 16,
	}
	if !bytes.Equal(b.Bytes(), want) {
		t.Fatalf("codewords %d, want %d", b.Bytes(), want)
	}
}

func TestEncodeInvalid(t *testing.T) {
	for _, seg := range []Segment{
		{"12a", Numeric},
		{"hello", Alphanumeric},
	} {
		var b Bits
		err := seg.Encode(&b, Class0)
		if _, ok := err.(SegmentError); !ok {
			t.Errorf("%v %#q: error %v, want SegmentError",
				seg.Mode, seg.Text, err)
		}
	}
}

func TestInterleave(t *testing.T) {
	// Version 5-Q: blocks of 15, 15, 16, 16 data codewords with
	// 18 check codewords each.
	info := Version(5).ECInfo(Q)
	if info.Blocks1 != 2 || info.Size1 != 15 ||
		info.Blocks2 != 2 || info.Size2 != 16 {
		t.Fatalf("5-Q geometry: %+v", info)
	}
	b := NewBits(5, Q)
	for i := 0; i < info.Data; i++ {
		b.Write(uint32(i), 8)
	}
	out := b.Interleaved(5, Q)
	want := []byte{
		0, 15, 30, 46, 1, 16, 31, 47, 2, 17, 32, 48, 3, 18,
		33, 49, 4, 19, 34, 50, 5, 20, 35, 51, 6, 21, 36, 52,
		7, 22, 37, 53, 8, 23, 38, 54, 9, 24, 39, 55, 10, 25,
		40, 56, 11, 26, 41, 57, 12, 27, 42, 58, 13, 28, 43,
		59, 14, 29, 44, 60, 45, 61, 130, 85, 18, 68, 32, 216,
		2, 224, 57, 131, 146, 231, 226, 28, 45, 112, 33, 81,
		123, 173, 156, 77, 16, 95, 128, 94, 142, 235, 158,
		171, 131, 68, 216, 213, 65, 131, 211, 75, 97, 242,
		13, 249, 218, 131, 67, 118, 220, 87, 241, 74, 235,
		110, 175, 28, 199, 110, 158, 36, 3, 65, 188, 164,
		223, 29, 139, 168, 149, 132, 103, 154, 138, 19,
	}
	if !bytes.Equal(out, want) {
		t.Fatalf("interleaved = %d, want %d", out, want)
	}
}

func TestPadAlternation(t *testing.T) {
	var b Bits
	b.Write(0, 8)
	// The four terminator bits force one more alignment codeword
	// before the pad codewords start.
	if err := b.PadTo(64); err != nil {
		t.Fatal(err)
	}
	want := []byte{0, 0, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11}
	if !bytes.Equal(b.Bytes(), want) {
		t.Fatalf("padded = %#02x, want %#02x", b.Bytes(), want)
	}
}

func TestEncodeErrors(t *testing.T) {
	seg := Segment{"1", Numeric}
	if _, err := Encode(0, M, seg); err != VersionError(0) {
		t.Errorf("version 0: %v", err)
	}
	if _, err := Encode(41, M, seg); err != VersionError(41) {
		t.Errorf("version 41: %v", err)
	}
	if _, err := Encode(1, Level(4), seg); err != ErrLevel {
		t.Errorf("level 4: %v", err)
	}
}
