// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "math/bits"

// bch returns the BCH check bits of v for the generator polynomial g:
// the remainder of v·x^n divided by g, where n is the degree of g.
func bch(v, g uint32) uint32 {
	n := bits.Len32(g) - 1
	v <<= n
	for d := bits.Len32(v); d > n; d = bits.Len32(v) {
		v ^= g << (d - 1 - n)
	}
	return v
}

// FormatBits returns the 15 bit format information for level l and
// mask k: two level bits and three mask bits, followed by ten BCH
// check bits, masked with FormatMask.
func FormatBits(l Level, k Mask) uint32 {
	d := uint32(l^1)<<3 | uint32(k) // L=01, M=00, Q=11, H=10
	return (d<<10 | bch(d, FormatPoly)) ^ FormatMask
}

// VersionBits returns the 18 bit version information for v: six
// version bits followed by twelve BCH check bits.  Versions below 7
// carry no version information and VersionBits returns 0.
func VersionBits(v Version) uint32 {
	if v < 7 || !v.valid() {
		return 0
	}
	return uint32(v)<<12 | bch(uint32(v), VersionPoly)
}

// DecodeFormat returns the level and mask encoded in the format
// information f.  Up to three bit errors are corrected.
func DecodeFormat(f uint32) (Level, Mask, error) {
	best, bl, bk := 4, L, Mask(0)
	for l := L; l <= H; l++ {
		for k := Mask(0); k < NumMasks; k++ {
			if d := bits.OnesCount32(f ^ FormatBits(l, k)); d < best {
				best, bl, bk = d, l, k
			}
		}
	}
	if best > 3 {
		return 0, 0, &LookupError{Table: "format", Key: int(f)}
	}
	return bl, bk, nil
}

// formatCoords returns the coordinates of format information bit i
// in both copies for a matrix with the given size.  The first copy
// surrounds the top left finder pattern, the second is split between
// the top right and bottom left ones.
func formatCoords(i, size int) (x0, y0, x1, y1 int) {
	switch {
	case i < 6:
		x0, y0 = 8, i
	case i < 8:
		x0, y0 = 8, i+1
	case i == 8:
		x0, y0 = 7, 8
	default:
		x0, y0 = 14-i, 8
	}
	if i < 8 {
		x1, y1 = size-1-i, 8
	} else {
		x1, y1 = 8, size-15+i
	}
	return
}

// placeFormat draws both copies of the format information f.
func (r *renderer) placeFormat(f uint32) {
	r.region = "format"
	for i := 0; i < 15; i++ {
		x0, y0, x1, y1 := formatCoords(i, r.m.Size)
		dark := f>>i&1 != 0
		r.set(x0, y0, dark)
		r.set(x1, y1, dark)
	}
}

// placeVersion draws both copies of the version information v: a 6x3
// block left of the top right finder pattern and its transpose above
// the bottom left one.
func (r *renderer) placeVersion(v uint32) {
	r.region = "version"
	if v == 0 {
		return
	}
	for i := 0; i < 18; i++ {
		a, b := r.m.Size-11+i%3, i/3
		dark := v>>i&1 != 0
		r.set(a, b, dark)
		r.set(b, a, dark)
	}
}
