// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over the Galois Field GF(256)
// and Reed-Solomon error correction encoding over it.
package gf256

import "strconv"

// A Field represents an instance of GF(256) defined by a reduction
// polynomial and a generator.
type Field struct {
	exp [510]byte // exp table, doubled to avoid mod 255 in Mul
	log [256]byte // log table; log[0] is unused
}

// mulSlow multiplies x by y modulo the polynomial poly, one bit at a
// time.  Used only while building the tables.
func mulSlow(x, y, poly int) int {
	z := 0
	for ; x > 0; x >>= 1 {
		if x&1 != 0 {
			z ^= y
		}
		if y <<= 1; y&0x100 != 0 {
			y ^= poly
		}
	}
	return z
}

// NewField returns the field defined by the degree-8 reduction
// polynomial poly with the generator α.  QR error correction uses
// polynomial 0x11d with generator 2.  NewField panics if poly is out
// of range or α does not generate the multiplicative group.
func NewField(poly, α int) *Field {
	if poly < 0x100 || poly >= 0x200 {
		panic("gf256: invalid polynomial " + strconv.Itoa(poly))
	}
	var f Field
	for i, x := 0, 1; i < 255; i++ {
		if i != 0 && (x <= 1 || f.log[x] != 0) {
			panic("gf256: invalid generator " + strconv.Itoa(α) +
				" for polynomial " + strconv.Itoa(poly))
		}
		f.exp[i] = byte(x)
		f.exp[i+255] = byte(x)
		f.log[x] = byte(i)
		x = mulSlow(x, α, poly)
	}
	return &f
}

// Exp returns the base-α exponential of e.
func (f *Field) Exp(e int) byte {
	return f.exp[e%255]
}

// Log returns the base-α logarithm of x.
// Log of zero is undefined; Log returns -1.
func (f *Field) Log(x byte) int {
	if x == 0 {
		return -1
	}
	return int(f.log[x])
}

// Mul returns the product of x and y in the field.
func (f *Field) Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[int(f.log[x])+int(f.log[y])]
}

// An RSEncoder computes Reed-Solomon error correction codewords over
// a field.  It is safe for concurrent use.
type RSEncoder struct {
	f   *Field
	c   int    // number of check codewords
	gen []byte // generator polynomial, descending degree, gen[0] = 1
}

// NewRSEncoder returns a Reed-Solomon encoder producing c check
// codewords over the field f.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	// G(x) = Π (x - αⁱ) for i in 0..c-1, built one root at a time.
	gen := make([]byte, 1, c+1)
	gen[0] = 1
	for i := 0; i < c; i++ {
		r := f.Exp(i)
		gen = append(gen, 0)
		for j := len(gen) - 1; j > 0; j-- {
			gen[j] ^= f.Mul(gen[j-1], r)
		}
	}
	return &RSEncoder{f: f, c: c, gen: gen}
}

// Gen returns the coefficients of the generator polynomial in
// descending degree order.  The returned slice must not be modified.
func (rs *RSEncoder) Gen() []byte { return rs.gen }

// ECC writes the error correction codewords for data to check, which
// must be at least rs.c bytes long.  The codewords are the remainder
// of the data polynomial times x^c divided by the generator
// polynomial, in descending degree order.
func (rs *RSEncoder) ECC(data, check []byte) {
	if len(check) < rs.c {
		panic("gf256: invalid check byte length")
	}
	check = check[:rs.c]
	for i := range check {
		check[i] = 0
	}
	if rs.c == 0 {
		return
	}
	f := rs.f
	// Long division, keeping only the sliding remainder in check.
	// gen[0] is 1, so the quotient digit is the byte shifted out.
	for _, v := range data {
		lead := v ^ check[0]
		copy(check, check[1:])
		check[rs.c-1] = 0
		if lead == 0 {
			continue
		}
		lg := int(f.log[lead])
		for j, g := range rs.gen[1:] {
			if g != 0 {
				check[j] ^= f.exp[lg+int(f.log[g])]
			}
		}
	}
}
