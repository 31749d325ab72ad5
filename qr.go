// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qrenc encodes data into QR code symbols.

Encode selects the smallest version and error correction level that
hold the data, builds the Reed-Solomon protected codeword stream and
lays it out on a module matrix with the given mask and a quiet zone.
*/
package qrenc // import "github.com/unixdj/qrenc"

import "github.com/unixdj/qrenc/coding"

type (
	// A Version is a QR version, 1 to 40.
	Version = coding.Version

	// A Level denotes a QR error correction level.
	Level = coding.Level

	// A Mask is a QR mask pattern, 0 to 7.
	Mask = coding.Mask

	// A Mode is a QR segment encoding mode.
	Mode = coding.Mode
)

// Error correction levels, from least to most tolerant of errors.
const (
	L = coding.L // 7% of codewords can be restored
	M = coding.M // 15%
	Q = coding.Q // 25%
	H = coding.H // 30%
)

// Encoding modes.
const (
	Numeric      = coding.Numeric
	Alphanumeric = coding.Alphanumeric
	Byte         = coding.Byte
	Kanji        = coding.Kanji
	Latin1       = coding.Latin1
)

// DefaultMargin is the width of the quiet zone added by Encode and
// EncodeText, in modules.
const DefaultMargin = 4

// A Symbol is an encoded QR code.
type Symbol struct {
	Version Version        // QR version
	Level   Level          // error correction level
	Mask    Mask           // mask pattern
	Mode    Mode           // mode of the encoded segment
	Margin  int            // quiet zone width in modules
	Matrix  *coding.Matrix // modules, including the quiet zone
}

// Encode encodes data in byte mode into the smallest QR code with at
// least version minVersion and level minLevel that holds it, using the
// given mask.  The symbol has a quiet zone of DefaultMargin modules.
func Encode(data []byte, minVersion Version, minLevel Level, mask Mask) (*Symbol, error) {
	return EncodeSegment(coding.Segment{Text: string(data), Mode: Byte},
		minVersion, minLevel, mask, DefaultMargin)
}

// EncodeText is like Encode, but encodes text in the given mode.
func EncodeText(text string, mode Mode, minVersion Version, minLevel Level, mask Mask) (*Symbol, error) {
	return EncodeSegment(coding.Segment{Text: text, Mode: mode},
		minVersion, minLevel, mask, DefaultMargin)
}

// EncodeSegment encodes seg like Encode, with a quiet zone of margin
// modules.
func EncodeSegment(seg coding.Segment, minVersion Version, minLevel Level, mask Mask, margin int) (*Symbol, error) {
	if mask < 0 || mask >= coding.NumMasks {
		return nil, coding.ErrMask
	}
	if margin < 0 {
		return nil, coding.ErrMargin
	}
	msg, err := coding.Encode(seg, minVersion, minLevel)
	if err != nil {
		return nil, err
	}
	m, err := coding.Render(msg, mask, margin)
	if err != nil {
		return nil, err
	}
	return &Symbol{
		Version: msg.Version,
		Level:   msg.Level,
		Mask:    mask,
		Mode:    msg.Mode,
		Margin:  margin,
		Matrix:  m,
	}, nil
}

// Size returns the number of modules on a side, including the quiet
// zone.
func (s *Symbol) Size() int { return s.Matrix.Size }

// Dark reports whether the module at column x, row y is dark.
// Modules outside the symbol are light.
func (s *Symbol) Dark(x, y int) bool { return s.Matrix.Dark(x, y) }
