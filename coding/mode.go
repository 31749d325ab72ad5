// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

// Predefined encoding modes.
const (
	Numeric       Mode = iota // numeric mode, ASCII-compatible text
	Alphanumeric              // alphanumeric mode, ASCII-compatible text
	Byte                      // byte mode, any data
	Kanji                     // kanji mode, UTF-8 text
	Latin1                    // byte mode, UTF-8 text encoded as ISO 8859-1
	ShiftJISKanji             // kanji mode, Shift JIS text
)

// A Mode is a QR segment encoder.
type Mode int

// ModeEncoder implements a QR segment encoding.
//
// The segment is validated using CutRune and Accepts.  Text mode
// encoders other than Numeric, Alphanumeric, Byte and ShiftJISKanji
// have a Transform function returning a segment of one of those modes.
// The encoder validates the segment, transforms it, and validates the
// transformed segment before encoding.
type ModeEncoder struct {
	Name      string // Name for error reporting
	Indicator byte   // 4 bit mode indicator

	// CountLength lists lengths of the character count field in
	// the three QR version size classes.
	CountLength [3]byte

	// EncodedLength returns the encoded data length in bits of n
	// characters.  If nil, each character is 8 bits.
	EncodedLength func(n int) int

	// CutRune returns the first rune in the string and its width in
	// bytes.  If nil, utf8.DecodeRuneInString is used.  It should be
	// set if and only if the Mode requires non-UTF-8 rune decoding.
	CutRune func(string) (rune, int)

	// Accepts reports whether the encoding mode accepts the rune.
	// If nil, any rune is accepted.  It is called by Is.
	Accepts func(rune) bool

	// Transform returns a segment of another Mode with the string
	// transformed for encoding and a boolean indicating whether the
	// transform was successful.  The target Mode must have Transform
	// unset.  If nil, the original segment is used.
	Transform func(string) (Segment, bool)

	// Count returns the character count of the transformed string.
	// If nil, the length of the string in bytes is used.
	Count func(string) int

	// Encode3, Encode2 and Encode1 return the encoding of the bytes
	// and its length in bits.  The encoder calls a non-nil Encode{N}
	// repeatedly as long as N source bytes are available, in
	// descending order of N.  If all are nil, each byte is encoded as
	// 8 bits.  The encoder panics if not all bytes are consumed.
	Encode3 func([3]byte) (uint32, int)
	Encode2 func([2]byte) (uint32, int)
	Encode1 func(byte) (uint32, int)
}

const alphamask uint64 = 0x07fffffe_07ffec31 // SPACE $% *+ -./ [0-9] : [A-Z]

// Alphanumeric encoding table.  Used after validation.
// "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
var alpha = [64]byte{
	00, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, // 0x40
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 00, 00, 00, 00, 00, // 0x50
	36, 00, 00, 00, 37, 38, 00, 00, 00, 00, 39, 40, 00, 41, 42, 43, // 0x20
	00, 01, 02, 03, 04, 05, 06, 07, 010, 9, 44, 00, 00, 00, 00, 00, // 0x30
}

// Shift JIS table for ShiftJISKanji CutRune.
// Bit fields:
//
//	1 = valid 1st byte of multibyte character  0x81-0x9f, 0xe0-0xfc
//	2 = valid 2nd byte of multibyte character  0x40-0x7e, 0x80-0xfc
var sjistbl = [256]byte{
	0x40: 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 0x40
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 0x50
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 0x60
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 0, // 0x70
	2, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, // 0x80
	3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, // 0x90
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 0xa0
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 0xb0
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 0xc0
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 0xd0
	3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, // 0xe0
	3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 0, 0, 0, // 0xf0
}

// sjisCutRune returns the first Shift JIS character in s, a double
// byte character as its two bytes, and its width.
func sjisCutRune(s string) (rune, int) {
	r, sz := rune(s[0]), 1
	if sjistbl[s[0]]&1 != 0 && len(s) > 1 && sjistbl[s[1]]&2 != 0 {
		r, sz = r<<8|rune(s[1]), 2
	}
	return r, sz
}

// isQRKanji reports whether the Shift JIS double byte character r is
// in the QR kanji ranges 0x8140-0x9ffc and 0xe040-0xebbf.
func isQRKanji(r rune) bool {
	const maxk = 0x1fff/0xc0<<8 | 0x1fff%0xc0 + 0xc140
	return uint32(r^0x8000) < maxk-0x8000+1
}

// IsKanji reports whether the Unicode rune r is encodable in kanji
// mode, that is, maps to a Shift JIS character in the QR kanji ranges.
func IsKanji(r rune) bool {
	var b [utf8.UTFMax]byte
	s, err := japanese.ShiftJIS.NewEncoder().Bytes(b[:utf8.EncodeRune(b[:], r)])
	return err == nil && len(s) == 2 && isQRKanji(rune(s[0])<<8|rune(s[1]))
}

var modes = [...]ModeEncoder{
	Numeric: {
		Name:          "numeric",
		Indicator:     1,
		CountLength:   [3]byte{10, 12, 14},
		EncodedLength: func(n int) int { return (10*n + 2) / 3 },
		Accepts:       func(r rune) bool { return uint32(r-'0') < 10 },
		Encode1: func(b byte) (uint32, int) {
			return uint32(b - '0'), 4
		},
		Encode2: func(b [2]byte) (uint32, int) {
			return uint32(b[0])*10 + uint32(b[1]) - '0'*11&0x7f, 7
		},
		Encode3: func(b [3]byte) (uint32, int) {
			return uint32(b[0])*100 + uint32(b[1])*10 +
				uint32(b[2]) + -'0'*111&0x3ff, 10
		},
	},
	Alphanumeric: {
		Name:          "alphanumeric",
		Indicator:     2,
		CountLength:   [3]byte{9, 11, 13},
		EncodedLength: func(n int) int { return (11*n + 1) / 2 },
		Accepts: func(r rune) bool {
			return alphamask>>(uint32(r)-' ')&1 != 0
		},
		Encode1: func(b byte) (uint32, int) {
			return uint32(alpha[b&0x3f]), 6
		},
		Encode2: func(b [2]byte) (uint32, int) {
			return uint32(alpha[b[0]&0x3f])*45 +
				uint32(alpha[b[1]&0x3f]), 11
		},
	},
	Byte: {
		Name:        "byte",
		Indicator:   4,
		CountLength: [3]byte{8, 16, 16},
	},
	Kanji: {
		Name:          "kanji",
		Indicator:     8,
		CountLength:   [3]byte{8, 10, 12},
		EncodedLength: func(n int) int { return n * 13 },
		Accepts:       IsKanji,
		Transform: func(s string) (Segment, bool) {
			t, err := japanese.ShiftJIS.NewEncoder().String(s)
			return Segment{t, ShiftJISKanji}, err == nil
		},
	},
	Latin1: {
		Name:        "latin-1",
		Indicator:   4,
		CountLength: [3]byte{8, 16, 16},
		Accepts:     func(r rune) bool { return uint32(r) < 0x100 },
		Transform: func(s string) (Segment, bool) {
			t, err := charmap.ISO8859_1.NewEncoder().String(s)
			return Segment{t, Byte}, err == nil
		},
	},
	ShiftJISKanji: {
		Name:          "shift-jis-kanji",
		Indicator:     8,
		CountLength:   [3]byte{8, 10, 12},
		EncodedLength: func(n int) int { return n * 13 },
		Count:         func(s string) int { return len(s) >> 1 },
		CutRune:       sjisCutRune,
		Accepts:       isQRKanji,
		Encode2: func(b [2]byte) (uint32, int) {
			return uint32(b[0]&^0xc0)*0xc0 + uint32(b[1]) - 0x100,
				13
		},
	},
}

func getMode(mode Mode) *ModeEncoder {
	if mode >= 0 && int(mode) < len(modes) {
		return &modes[mode]
	}
	return nil
}

func (mode Mode) String() string {
	if m := getMode(mode); m != nil {
		return m.Name
	}
	return strconv.Itoa(int(mode))
}

// ParseMode returns the Mode with the given name.
func ParseMode(name string) (Mode, error) {
	for i := range modes {
		if modes[i].Name == name {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("qr: unknown mode %q", name)
}

// CountBits returns the length of the character count field for mode
// in a QR code with version v.
func (mode Mode) CountBits(v Version) (int, error) {
	m := getMode(mode)
	if m == nil {
		return 0, &LookupError{Table: "mode", Key: int(mode)}
	}
	if !v.valid() {
		return 0, &LookupError{Table: "version", Key: int(v)}
	}
	return int(m.CountLength[v.SizeClass()]), nil
}

// encodedLength returns the length in bits of n characters, without
// the header.
func (m *ModeEncoder) encodedLength(n int) int {
	if f := m.EncodedLength; f != nil {
		return f(n)
	}
	return n * 8
}

// Length returns the length in bits of n characters encoded in mode
// at the given QR version size class, including the header.  Length
// returns 0 if and only if mode is invalid.
func (mode Mode) Length(n int, class int) int {
	if m := getMode(mode); m != nil {
		return 4 + int(m.CountLength[class]) + m.encodedLength(n)
	}
	return 0
}

// Is reports whether r is encodable in mode.
func Is(r rune, mode Mode) bool {
	m := getMode(mode)
	return m != nil && (m.Accepts == nil || m.Accepts(r))
}

// A Segment describes a QR code segment.
type Segment struct {
	Text string // data to encode
	Mode Mode   // encoding mode
}

// SegmentError represents an invalid Segment.
type SegmentError Segment

func (e SegmentError) Error() string {
	if m := getMode(e.Mode); m != nil {
		return fmt.Sprintf("qr: non-%s string %#q", m.Name, e.Text)
	}
	return fmt.Sprintf("qr: invalid mode %d", e.Mode)
}

// ModeError represents an invalid Mode number.
type ModeError Mode

func (e ModeError) Error() string {
	return fmt.Sprintf("qr: invalid mode %s", Mode(e))
}

// isValid reports whether seg is encodable.
func (m *ModeEncoder) isValid(seg Segment) bool {
	is := m.Accepts
	if is == nil {
		return true
	}
	if seg.Mode < Byte {
		for i := 0; i < len(seg.Text); i++ {
			if !is(rune(seg.Text[i])) {
				return false
			}
		}
	} else if cut := m.CutRune; cut != nil {
		for s := seg.Text; s != ""; {
			r, sz := cut(s)
			s = s[sz:]
			if !is(r) {
				return false
			}
		}
	} else {
		for _, r := range seg.Text {
			if !is(r) {
				return false
			}
		}
	}
	return true
}

// IsValid reports whether seg is encodable.
func (seg Segment) IsValid() bool {
	if m := getMode(seg.Mode); m != nil {
		return m.isValid(seg)
	}
	return false
}

// transform transforms seg for encoding.  The transformed segment is
// not validated.
func (seg Segment) transform() (Segment, *ModeEncoder, error) {
	if m := getMode(seg.Mode); m == nil {
		return Segment{}, nil, ModeError(seg.Mode)
	} else if m.Transform == nil {
		return seg, m, nil
	} else if !m.isValid(seg) {
		return Segment{}, nil, SegmentError(seg)
	} else if ts, ok := m.Transform(seg.Text); !ok {
		return Segment{}, nil, SegmentError(seg)
	} else if m = getMode(ts.Mode); m == nil || m.Transform != nil {
		return Segment{}, nil, ModeError(seg.Mode)
	} else {
		return ts, m, nil
	}
}

// Transform transforms seg for encoding.  The transformed segment is
// not validated.
func (seg Segment) Transform() (Segment, error) {
	seg, _, err := seg.transform()
	return seg, err
}

// prepare transforms and validates seg, returning the transformed
// segment, its encoder and its character count.
func (seg Segment) prepare() (Segment, *ModeEncoder, int, error) {
	ts, m, err := seg.transform()
	if err != nil {
		return Segment{}, nil, 0, err
	} else if !m.isValid(ts) {
		return Segment{}, nil, 0, SegmentError(seg)
	}
	n := len(ts.Text)
	if m.Count != nil {
		n = m.Count(ts.Text)
	}
	return ts, m, n, nil
}

// Len returns the character count of seg after transformation, the
// value written to its character count field.
func (seg Segment) Len() (int, error) {
	_, _, n, err := seg.prepare()
	return n, err
}

// Encode writes seg encoded for the given QR version size class to b.
func (seg Segment) Encode(b *Bits, class int) error {
	ts, m, n, err := seg.prepare()
	if err != nil {
		return err
	}
	m.encode(b, ts.Text, n, class)
	return nil
}

// encode writes the header and the data of the prepared string s of
// n characters to b.
func (m *ModeEncoder) encode(b *Bits, s string, n, class int) {
	b.Write(uint32(m.Indicator), 4)
	b.Write(uint32(n), int(m.CountLength[class]))
	enc3, enc2, enc1 := m.Encode3, m.Encode2, m.Encode1
	if enc3 != nil || enc2 != nil || enc1 != nil {
		if enc3 != nil {
			for len(s) >= 3 {
				b.Write(enc3([3]byte{s[0], s[1], s[2]}))
				s = s[3:]
			}
		}
		if enc2 != nil {
			for len(s) >= 2 {
				b.Write(enc2([2]byte{s[0], s[1]}))
				s = s[2:]
			}
		}
		if enc1 != nil {
			for len(s) >= 1 {
				b.Write(enc1(s[0]))
				s = s[1:]
			}
		} else if s != "" {
			panic("qr: " + m.Name + " mode internal error")
		}
	} else if b.nbit&7 != 0 {
		for ; len(s) >= 4; s = s[4:] {
			v := uint32(s[0])<<24 | uint32(s[1])<<16 |
				uint32(s[2])<<8 | uint32(s[3])
			b.Write(v, 32)
		}
		if s != "" {
			var v uint32
			for i := 0; i < len(s); i++ {
				v = v<<8 | uint32(s[i])
			}
			b.Write(v, 8*len(s))
		}
	} else {
		b.b = append(b.b, s...)
		b.nbit += len(s) * 8
	}
}
