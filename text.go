// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrenc

import (
	"fmt"
	"io"
	"strings"
)

// A Grid is a square grid of modules, such as a Symbol.
type Grid interface {
	Size() int
	Dark(x, y int) bool
}

// A Style is a text rendering style.  Each style is followed by its
// inverted variant, which draws light modules instead of dark ones,
// for terminals with light text on dark background.
type Style int

const (
	UTF8              Style = iota // two full blocks per dark module
	UTF8Inverted                   // two full blocks per light module
	HalfBlock                      // one character per two rows
	HalfBlockInverted              // HalfBlock with light modules drawn
	ASCII                          // "##" per dark module
	ASCIIInverted                  // "##" per light module
	numStyles
)

var styleNames = [numStyles]string{
	"utf8", "utf8i", "half", "halfi", "ascii", "asciii",
}

// StyleNames returns the names of all styles, in order.
func StyleNames() []string { return styleNames[:] }

func (t Style) String() string {
	if 0 <= t && t < numStyles {
		return styleNames[t]
	}
	return fmt.Sprintf("Style(%d)", int(t))
}

// ParseStyle returns the Style with the given name.
func ParseStyle(name string) (Style, error) {
	for i, v := range styleNames {
		if v == name {
			return Style(i), nil
		}
	}
	return 0, fmt.Errorf("qr: unknown text style %q", name)
}

// Inverted reports whether t draws light modules.
func (t Style) Inverted() bool { return t&1 != 0 }

// Width returns the width in terminal columns of a grid of siz
// modules rendered in style t.
func (t Style) Width(siz int) int {
	if t>>1 == HalfBlock>>1 {
		return siz
	}
	return siz * 2
}

// Module pictures, indexed by drawn bits.
var (
	fullPix  = [2]string{"  ", "██"}
	asciiPix = [2]string{"  ", "##"}
	halfPix  = [4]string{" ", "▄", "▀", "█"} // top<<1 | bottom
)

// WriteText writes g to w as text in the given style, one line per
// row, or per two rows for HalfBlock.
func WriteText(w io.Writer, g Grid, t Style) error {
	if t < 0 || t >= numStyles {
		return fmt.Errorf("qr: invalid text style %d", int(t))
	}
	_, err := io.WriteString(w, text(g, t))
	return err
}

func text(g Grid, t Style) string {
	siz := g.Size()
	inv := t.Inverted()
	drawn := func(x, y int) int {
		if y < siz && g.Dark(x, y) != inv {
			return 1
		}
		return 0
	}
	var b strings.Builder
	if t>>1 == HalfBlock>>1 {
		b.Grow((siz*len("█") + 1) * (siz + 1) / 2)
		for y := 0; y < siz; y += 2 {
			for x := 0; x < siz; x++ {
				b.WriteString(halfPix[drawn(x, y)<<1|drawn(x, y+1)])
			}
			b.WriteByte('\n')
		}
		return b.String()
	}
	pix := &fullPix
	if t>>1 == ASCII>>1 {
		pix = &asciiPix
	}
	b.Grow((siz*len(pix[1]) + 1) * siz)
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			b.WriteString(pix[drawn(x, y)])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteText writes s to w as text in the given style.
func (s *Symbol) WriteText(w io.Writer, t Style) error {
	return WriteText(w, s, t)
}

// String returns s rendered with two full block characters per dark
// module.
func (s *Symbol) String() string { return text(s, UTF8) }

// HalfBlock returns s rendered with half block characters, two rows
// per line.
func (s *Symbol) HalfBlock() string { return text(s, HalfBlock) }
