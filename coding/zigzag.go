// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Zigzag iterates over module positions in data placement order.
// Columns are taken in pairs from right to left, alternately upwards
// and downwards starting upwards, the right module of each row first.
// The column of the vertical timing pattern is skipped.
type Zigzag struct {
	size int
	x, y int  // right column of the current pair, current row
	left bool // next module is in the left column
	up   bool // moving upwards
}

// NewZigzag returns a Zigzag for a matrix with the given size.
func NewZigzag(size int) *Zigzag {
	z := &Zigzag{size: size}
	z.Reset()
	return z
}

// Reset restarts the iteration.
func (z *Zigzag) Reset() {
	z.x, z.y = z.size-1, z.size-1
	z.left, z.up = false, true
}

// Next returns the next position and true, or false when all
// positions have been visited.
func (z *Zigzag) Next() (x, y int, ok bool) {
	if z.x < 1 {
		return 0, 0, false
	}
	x, y = z.x, z.y
	if !z.left {
		z.left = true
		return x, y, true
	}
	x--
	z.left = false
	if z.up {
		z.y--
	} else {
		z.y++
	}
	if z.y < 0 || z.y >= z.size {
		z.up = !z.up
		z.y = min(max(z.y, 0), z.size-1)
		z.x -= 2
		if z.x == 6 { // vertical timing pattern
			z.x--
		}
	}
	return x, y, true
}
