// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: version and
// level selection, codeword assembly with Reed-Solomon error
// correction, and layout of the module matrix.
package coding // import "github.com/unixdj/qrenc/coding"

//go:generate sh -c "go run gen.go | gofmt > tables.go"

import (
	"errors"
	"sort"
	"strconv"

	"github.com/unixdj/qrenc/gf256"
)

var (
	ErrLevel   = errors.New("qr: invalid level")
	ErrVersion = errors.New("qr: invalid version")
	ErrMask    = errors.New("qr: invalid mask")
	ErrMargin  = errors.New("qr: invalid margin")
)

// QR code constants.
const (
	FieldReduction = 0x1d   // field polynomial x^8+x^4+x^3+x^2+1 less x^8
	FormatPoly     = 0x537  // BCH(15,5) generator for format information
	FormatMask     = 0x5412 // XOR mask for format information
	VersionPoly    = 0x1f25 // BCH(18,6) generator for version information
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x100|FieldReduction, 2)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 modules on a side.
// Versions run from 1 to 40: the larger the version, the more
// information the code can store.
type Version int

// Code versions.
const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

func (v Version) valid() bool { return MinVersion <= v && v <= MaxVersion }

// QR version size classes.  The width of character count fields
// depends on the class.
const (
	Class0 = iota // versions 1 to 9
	Class1        // versions 10 to 26
	Class2        // versions 27 to 40
)

// SizeClass returns the size class of v, as documented under Class0.
func (v Version) SizeClass() int {
	if v <= 9 {
		return Class0
	}
	if v <= 26 {
		return Class1
	}
	return Class2
}

// Size returns the number of modules on a side of a QR code with
// version v, excluding the quiet zone.
func (v Version) Size() int { return int(v)*4 + 17 }

// info returns the version table entry for v.
func (v Version) info() (*version, error) {
	if !v.valid() {
		return nil, &LookupError{Table: "version", Key: int(v)}
	}
	return &vtab[v], nil
}

// dataBytes returns the number of data bytes that can be
// stored in a QR code with the given version and level.
func (v Version) dataBytes(l Level) int {
	vt := &vtab[v]
	lev := vt.level[l]
	return vt.bytes - lev.nblock*lev.check
}

// DataBytes returns the number of data codewords in a QR code with
// the given version and level.
func (v Version) DataBytes(l Level) (int, error) {
	if _, err := v.info(); err != nil {
		return 0, err
	}
	if !l.valid() {
		return 0, ErrLevel
	}
	return v.dataBytes(l), nil
}

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 7% of codewords recoverable
	M              // 15% of codewords recoverable
	Q              // 25% of codewords recoverable
	H              // 30% of codewords recoverable
)

func (l Level) String() string {
	if l.valid() {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

func (l Level) valid() bool { return L <= l && l <= H }

// ParseLevel returns the Level named by s, one of "L", "M", "Q" or "H"
// in either case.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "l", "L":
		return L, nil
	case "m", "M":
		return M, nil
	case "q", "Q":
		return Q, nil
	case "h", "H":
		return H, nil
	}
	return 0, ErrLevel
}

// levelOrder is the order in which Select tries error correction
// levels.  Q comes before M.
var levelOrder = [4]Level{L, Q, M, H}

// A version describes metadata associated with a version.
type version struct {
	apos      int // centre of the 2nd alignment pattern, 0 if none
	astride   int // distance between further alignment patterns
	bytes     int // total codewords
	remainder int // remainder bits after the codewords
	level     [4]level
}

type level struct {
	nblock int // number of blocks
	check  int // check bytes per block
}

// Capacity returns the maximum number of characters (digits for
// Numeric, bytes for Byte) encodable in mode in a single segment of a
// QR code with the given version and level.
func Capacity(v Version, l Level, mode Mode) (int, error) {
	n, err := v.DataBytes(l)
	if err != nil {
		return 0, err
	}
	m := getMode(mode)
	if m == nil {
		return 0, &LookupError{Table: "mode", Key: int(mode)}
	}
	return m.capacity(n*8, v.SizeClass()), nil
}

// capacity returns the number of characters that fit in nbit bits,
// header included, at the given size class.
func (m *ModeEncoder) capacity(nbit, class int) int {
	avail := nbit - 4 - int(m.CountLength[class])
	if avail < 0 {
		return 0
	}
	n := sort.Search(avail+1, func(n int) bool {
		return m.encodedLength(n) > avail
	}) - 1
	return min(n, 1<<m.CountLength[class]-1)
}

// Select returns the version and level of the smallest QR code
// holding n characters encoded in mode.  Levels are tried in the
// order L, Q, M, H, starting with minLevel; for each level, versions
// from minVersion to MaxVersion.  The first combination with
// sufficient capacity is returned.
func Select(n int, mode Mode, minLevel Level, minVersion Version) (Version, Level, error) {
	if !minLevel.valid() {
		return 0, 0, ErrLevel
	}
	if !minVersion.valid() {
		return 0, 0, ErrVersion
	}
	m := getMode(mode)
	if m == nil {
		return 0, 0, ModeError(mode)
	}
	start := 0
	for levelOrder[start] != minLevel {
		start++
	}
	for _, l := range levelOrder[start:] {
		for v := minVersion; v <= MaxVersion; v++ {
			if m.capacity(v.dataBytes(l)*8, v.SizeClass()) >= n {
				return v, l, nil
			}
		}
	}
	l := levelOrder[start]
	return 0, 0, &CapacityError{
		Mode:     mode,
		Count:    n,
		Capacity: m.capacity(MaxVersion.dataBytes(l)*8, Class2),
		Version:  MaxVersion,
		Level:    l,
	}
}
