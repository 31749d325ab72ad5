// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

// Generator returns the Reed-Solomon generator polynomial of degree n,
// the product of (x + α^i) for i from 0 to n-1.  Generator(0) is 1.
func (f *Field) Generator(n int) Poly {
	g := Poly{f.Term(0, 1)}
	for i := 0; i < n; i++ {
		g = f.PolyMul(g, Poly{f.Term(1, 1), f.Term(0, f.Exp(i))})
	}
	return g
}

// Divide returns the ec check bytes for msg: the coefficients of the
// remainder of msg·x^ec divided by Generator(ec), most significant
// first.  The result is always ec bytes long.
func (f *Field) Divide(msg []byte, ec int) []byte {
	return f.divide(msg, ec, f.Generator(ec))
}

// divide implements Divide with a prebuilt generator polynomial.
func (f *Field) divide(msg []byte, ec int, gen Poly) []byte {
	if len(msg) == 0 || ec < 0 || len(gen) != ec+1 {
		panic("gf256: invalid division")
	}

	// p = msg·x^ec, with every exponent down to x^0 present,
	// so the generator aligned to the leading term always
	// covers the first ec+1 terms of the remainder.
	p := make([]byte, len(msg)+ec)
	copy(p, msg)
	rem := f.NewPoly(p, 0)
	g := gen.Shift(len(msg) - 1)

	for rem.Degree() >= ec {
		if lead := rem[0]; lead.Value != 0 {
			head := f.PolyAdd(rem[:len(g)], f.MulMonomial(g, lead.Log))
			rem = append(head, rem[len(g):]...)
		}
		// The leading term is now zero.  Strip it and any zero
		// terms following it, moving the generator along.
		for rem.Degree() >= ec && rem[0].Value == 0 {
			rem = rem[1:]
			g = g.Shift(-1)
		}
	}
	return rem.Coefficients(ec)
}

// An RSEncoder implements Reed-Solomon encoding
// over a given field using a given number of error correction bytes.
type RSEncoder struct {
	f   *Field
	c   int
	gen Poly
}

// NewRSEncoder returns a new Reed-Solomon encoder
// over the given field and number of error correction bytes.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	return &RSEncoder{f: f, c: c, gen: f.Generator(c)}
}

// Generator returns the generator polynomial used by rs.
func (rs *RSEncoder) Generator() Poly { return rs.gen }

// ECC writes to check the error correcting code bytes
// for data using the given Reed-Solomon parameters.
func (rs *RSEncoder) ECC(data []byte, check []byte) {
	if len(check) < rs.c {
		panic("gf256: invalid check byte length")
	}
	if rs.c == 0 {
		return
	}
	copy(check, rs.f.divide(data, rs.c, rs.gen))
}
