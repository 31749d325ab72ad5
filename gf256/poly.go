// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import (
	"slices"
	"strconv"
	"strings"
)

// A Term is the monomial Value·x^X.  Log caches the base-α logarithm of
// Value; it is meaningless when Value is zero.
type Term struct {
	X     int  // exponent of x
	Log   int  // logarithm of Value
	Value byte // coefficient
}

// A Poly is a polynomial over a Field.  Its terms have distinct
// exponents and are sorted by descending X.  Zero coefficients may be
// present as explicit terms.
type Poly []Term

// Term returns the term v·x^x with its logarithm filled in.
func (f *Field) Term(x int, v byte) Term {
	return Term{X: x, Log: f.Log(v), Value: v}
}

// NewPoly returns the polynomial with the given coefficients, most
// significant first, whose last coefficient is that of x^shift.
func (f *Field) NewPoly(coef []byte, shift int) Poly {
	p := make(Poly, len(coef))
	top := shift + len(coef) - 1
	for i, c := range coef {
		p[i] = f.Term(top-i, c)
	}
	return p
}

// Degree returns the exponent of the leading term of p,
// or -1 if p has no terms.
func (p Poly) Degree() int {
	if len(p) == 0 {
		return -1
	}
	return p[0].X
}

// Shift returns p multiplied by x^n.  A negative n divides p by x^-n,
// moving terms below x^0 to negative exponents.
func (p Poly) Shift(n int) Poly {
	q := make(Poly, len(p))
	for i, t := range p {
		t.X += n
		q[i] = t
	}
	return q
}

// Coefficients returns the coefficients of x^(n-1) down to x^0.
// Missing terms are zero, terms of degree n and above are ignored.
func (p Poly) Coefficients(n int) []byte {
	c := make([]byte, n)
	for _, t := range p {
		if 0 <= t.X && t.X < n {
			c[n-1-t.X] = t.Value
		}
	}
	return c
}

func (p Poly) String() string {
	if len(p) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, t := range p {
		if i != 0 {
			b.WriteString(" + ")
		}
		b.WriteString(strconv.Itoa(int(t.Value)))
		switch t.X {
		case 0:
		case 1:
			b.WriteString("x")
		default:
			b.WriteString("x^" + strconv.Itoa(t.X))
		}
	}
	return b.String()
}

// collect returns the polynomial accumulated in acc, keyed by exponent,
// with logarithms recomputed and terms sorted by descending exponent.
func (f *Field) collect(acc map[int]byte) Poly {
	p := make(Poly, 0, len(acc))
	for x, v := range acc {
		p = append(p, f.Term(x, v))
	}
	slices.SortFunc(p, func(a, b Term) int { return b.X - a.X })
	return p
}

// mulTerm returns the coefficient of the product of s and t.
func (f *Field) mulTerm(s, t Term) byte {
	if s.Value == 0 || t.Value == 0 {
		return 0
	}
	return f.Exp(s.Log + t.Log)
}

// PolyMul returns the product of a and b.  Every pair of terms is
// multiplied and products with equal exponents are added.
func (f *Field) PolyMul(a, b Poly) Poly {
	acc := make(map[int]byte, len(a)+len(b))
	for _, s := range a {
		for _, t := range b {
			acc[s.X+t.X] ^= f.mulTerm(s, t)
		}
	}
	return f.collect(acc)
}

// MulMonomial returns a scaled by α^lg.
func (f *Field) MulMonomial(a Poly, lg int) Poly {
	return f.PolyMul(a, Poly{{X: 0, Log: lg, Value: f.Exp(lg)}})
}

// PolyAdd returns the sum of a and b.  Terms cancelling each other out
// remain in the result with zero coefficients.
func (f *Field) PolyAdd(a, b Poly) Poly {
	acc := make(map[int]byte, len(a)+len(b))
	for _, t := range a {
		acc[t.X] ^= t.Value
	}
	for _, t := range b {
		acc[t.X] ^= t.Value
	}
	return f.collect(acc)
}
