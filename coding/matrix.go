// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strings"

// A Cell is the state of a QR module.
type Cell byte

const (
	Unset Cell = iota // not yet placed
	Light
	Dark
)

func cell(dark bool) Cell {
	if dark {
		return Dark
	}
	return Light
}

// A Matrix is a square grid of modules.
type Matrix struct {
	Size  int // modules on a side
	cells []Cell
}

// NewMatrix returns a matrix of size×size unset modules.
func NewMatrix(size int) *Matrix {
	return &Matrix{Size: size, cells: make([]Cell, size*size)}
}

func (m *Matrix) inside(x, y int) bool {
	return 0 <= x && x < m.Size && 0 <= y && y < m.Size
}

// At returns the module at column x, row y.  Modules outside the
// matrix are Light.
func (m *Matrix) At(x, y int) Cell {
	if !m.inside(x, y) {
		return Light
	}
	return m.cells[y*m.Size+x]
}

// Dark reports whether the module at column x, row y is dark.
func (m *Matrix) Dark(x, y int) bool { return m.At(x, y) == Dark }

// place sets the module at column x, row y, reporting modules outside
// the matrix as belonging to region.
func (m *Matrix) place(region string, x, y int, c Cell) error {
	if !m.inside(x, y) {
		return &PlacementError{Region: region, X: x, Y: y, Size: m.Size}
	}
	m.cells[y*m.Size+x] = c
	return nil
}

// Unset returns the coordinates of the first unset module in row
// order, and whether there is one.
func (m *Matrix) Unset() (x, y int, ok bool) {
	for i, c := range m.cells {
		if c == Unset {
			return i % m.Size, i / m.Size, true
		}
	}
	return 0, 0, false
}

// Frame returns a copy of m surrounded by n light modules on every
// side.
func (m *Matrix) Frame(n int) *Matrix {
	f := NewMatrix(m.Size + 2*n)
	for i := range f.cells {
		f.cells[i] = Light
	}
	for y := 0; y < m.Size; y++ {
		copy(f.cells[(y+n)*f.Size+n:], m.cells[y*m.Size:(y+1)*m.Size])
	}
	return f
}

// String returns the matrix one row per line, with dark modules as
// '#', light ones as '.' and unset ones as '?'.
func (m *Matrix) String() string {
	var b strings.Builder
	b.Grow((m.Size + 1) * m.Size)
	for i, c := range m.cells {
		b.WriteByte("?.#"[c])
		if i%m.Size == m.Size-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
