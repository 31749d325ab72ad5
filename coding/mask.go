// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strconv"

// A Mask is a QR data mask pattern number.
//
// Mask patterns, with inverted modules blank:
//
//	0: ▄▀▄▀▄▀▄▀▄▀▄▀  1: ▄▄▄▄▄▄▄▄▄▄▄▄  2:  ██ ██ ██ ██  3: ▄█▀▄█▀▄█▀▄█▀
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     ▀▄█▀▄█▀▄█▀▄█
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     █▀▄█▀▄█▀▄█▀▄
//
//	4:    ███   ███  5:  ▄▄▄▄▄ ▄▄▄▄▄  6:    ▄▄▄   ▄▄▄  7: ▄█▄▀ ▀▄█▄▀ ▀
//	   ███   ███         █▀▄▀█ █▀▄▀█      ▄▀▄ █ ▄▀▄ █     ▄▀█▀▄ ▄▀█▀▄
//	      ███   ███      ██▄██ ██▄██      █▄▄▀  █▄▄▀      ▄  ▀██▄  ▀██
type Mask int

// NumMasks is the number of mask patterns.
const NumMasks Mask = 8

var maskFunc = [NumMasks]func(c, r int) bool{
	func(c, r int) bool { return (c+r)%2 == 0 },
	func(c, r int) bool { return r%2 == 0 },
	func(c, r int) bool { return c%3 == 0 },
	func(c, r int) bool { return (c+r)%3 == 0 },
	func(c, r int) bool { return (c/3+r/2)%2 == 0 },
	func(c, r int) bool { return r*c%2+r*c%3 == 0 },
	func(c, r int) bool { return (r*c%2+r*c%3)%2 == 0 },
	func(c, r int) bool { return ((r+c)%2+r*c%3)%2 == 0 },
}

func (k Mask) valid() bool { return 0 <= k && k < NumMasks }

func (k Mask) String() string { return strconv.Itoa(int(k)) }

// Apply returns bit masked for the module at column col, row row:
// inverted where the mask pattern is dark.  Applying a mask twice
// restores the original bit.
func (k Mask) Apply(bit bool, col, row int) bool {
	return bit != maskFunc[k](col, row)
}
