// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"testing"
)

func TestVersionTable(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		vt := &vtab[v]
		if v.Size() != int(v)*4+17 {
			t.Errorf("version %v: size %d", v, v.Size())
		}
		// Total modules minus function patterns must hold the
		// codewords and remainder bits exactly.
		r := newRenderer(v, L, 0)
		if err := r.placePatterns(); err != nil {
			t.Fatalf("version %v: %v", v, err)
		}
		free := 0
		for _, c := range r.m.cells {
			if c == Unset {
				free++
			}
		}
		if want := vt.bytes*8 + vt.remainder; free != want {
			t.Errorf("version %v: %d data modules, want %d",
				v, free, want)
		}
		for l := L; l <= H; l++ {
			lev := vt.level[l]
			if n := v.dataBytes(l); n <= 0 || n < lev.nblock {
				t.Errorf("version %v-%v: %d data bytes in %d blocks",
					v, l, n, lev.nblock)
			}
		}
	}
}

func TestSizeClass(t *testing.T) {
	for _, tt := range []struct {
		v     Version
		class int
	}{
		{1, Class0}, {9, Class0}, {10, Class1}, {26, Class1},
		{27, Class2}, {40, Class2},
	} {
		if c := tt.v.SizeClass(); c != tt.class {
			t.Errorf("Version(%v).SizeClass() = %d, want %d",
				tt.v, c, tt.class)
		}
	}
}

func TestDataBytes(t *testing.T) {
	for _, tt := range []struct {
		v    Version
		l    Level
		want int
	}{
		{1, L, 19}, {1, M, 16}, {1, Q, 13}, {1, H, 9},
		{5, Q, 62}, {7, H, 66}, {40, L, 2956}, {40, H, 1276},
	} {
		if n, err := tt.v.DataBytes(tt.l); err != nil || n != tt.want {
			t.Errorf("Version(%v).DataBytes(%v) = %d, %v; want %d",
				tt.v, tt.l, n, err, tt.want)
		}
	}
	var le *LookupError
	if _, err := Version(41).DataBytes(L); !errors.As(err, &le) ||
		le.Table != "version" || le.Key != 41 {
		t.Errorf("Version(41).DataBytes(L) error = %v", err)
	}
	if _, err := Version(1).DataBytes(Level(4)); err != ErrLevel {
		t.Errorf("Version(1).DataBytes(4) error = %v, want %v",
			err, ErrLevel)
	}
}

func TestCapacity(t *testing.T) {
	for _, tt := range []struct {
		v    Version
		l    Level
		mode Mode
		want int
	}{
		{1, L, Numeric, 41},
		{1, L, Alphanumeric, 25},
		{1, L, Byte, 17},
		{1, L, Kanji, 10},
		{1, H, Numeric, 17},
		{1, H, Alphanumeric, 10},
		{1, H, Byte, 7},
		{1, H, Kanji, 4},
		{9, L, Byte, 230},
		{10, L, Byte, 271},
		{10, M, Byte, 213},
		{40, L, Numeric, 7089},
		{40, L, Alphanumeric, 4296},
		{40, L, Byte, 2953},
		{40, L, Latin1, 2953},
		{40, L, Kanji, 1817},
		{40, H, Numeric, 3057},
		{40, H, Alphanumeric, 1852},
		{40, H, Byte, 1273},
		{40, H, ShiftJISKanji, 784},
	} {
		n, err := Capacity(tt.v, tt.l, tt.mode)
		if err != nil || n != tt.want {
			t.Errorf("Capacity(%v, %v, %v) = %d, %v; want %d",
				tt.v, tt.l, tt.mode, n, err, tt.want)
		}
	}
	var le *LookupError
	if _, err := Capacity(1, L, Mode(42)); !errors.As(err, &le) ||
		le.Table != "mode" {
		t.Errorf("Capacity with mode 42: error = %v", err)
	}
	if _, err := Capacity(0, L, Byte); !errors.As(err, &le) ||
		le.Table != "version" {
		t.Errorf("Capacity with version 0: error = %v", err)
	}
}

func TestSelect(t *testing.T) {
	for _, tt := range []struct {
		n          int
		mode       Mode
		minLevel   Level
		minVersion Version
		v          Version
		l          Level
	}{
		{0, Byte, L, 1, 1, L},
		{10, Byte, L, 1, 1, L},
		{17, Byte, L, 1, 1, L},
		{18, Byte, L, 1, 2, L},
		{10, Byte, L, 5, 5, L},
		{28, Byte, H, 1, 4, H},
		{18, Byte, Q, 1, 2, Q},
		{18, Byte, M, 1, 2, M},
		{231, Byte, L, 1, 10, L},
		{41, Numeric, L, 1, 1, L},
		{42, Numeric, L, 1, 2, L},
		// Levels are tried in the order L, Q, M, H:
		// too long for Q at any version, data falls back to M.
		{2000, Byte, Q, 1, 38, M},
		{2000, Byte, M, 1, 38, M},
	} {
		v, l, err := Select(tt.n, tt.mode, tt.minLevel, tt.minVersion)
		if err != nil || v != tt.v || l != tt.l {
			t.Errorf("Select(%d, %v, %v, %v) = %v, %v, %v; want %v, %v",
				tt.n, tt.mode, tt.minLevel, tt.minVersion,
				v, l, err, tt.v, tt.l)
		}
	}
}

func TestSelectErrors(t *testing.T) {
	var ce *CapacityError
	if _, _, err := Select(2000, Byte, H, 1); !errors.As(err, &ce) {
		t.Errorf("Select(2000, byte, H, 1) error = %v, want *CapacityError", err)
	} else if ce.Count != 2000 || ce.Capacity != 1273 || ce.Level != H {
		t.Errorf("Select(2000, byte, H, 1) error = %+v", ce)
	}
	if _, _, err := Select(2954, Byte, L, 1); !errors.As(err, &ce) {
		t.Errorf("Select(2954, byte, L, 1) error = %v, want *CapacityError", err)
	}
	if _, _, err := Select(1, Byte, Level(-1), 1); err != ErrLevel {
		t.Errorf("Select with level -1: error = %v, want %v", err, ErrLevel)
	}
	if _, _, err := Select(1, Byte, L, 0); err != ErrVersion {
		t.Errorf("Select with version 0: error = %v, want %v", err, ErrVersion)
	}
	if _, _, err := Select(1, Byte, L, 41); err != ErrVersion {
		t.Errorf("Select with version 41: error = %v, want %v", err, ErrVersion)
	}
	if _, _, err := Select(1, Mode(-1), L, 1); err != ModeError(-1) {
		t.Errorf("Select with mode -1: error = %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	for i, s := range []string{"L", "M", "Q", "H"} {
		for _, s := range []string{s, string(s[0] + 'a' - 'A')} {
			if l, err := ParseLevel(s); err != nil || l != Level(i) {
				t.Errorf("ParseLevel(%q) = %v, %v", s, l, err)
			}
		}
		if str := Level(i).String(); str != s {
			t.Errorf("Level(%d).String() = %q, want %q", i, str, s)
		}
	}
	if _, err := ParseLevel("x"); err != ErrLevel {
		t.Errorf("ParseLevel(%q) error = %v, want %v", "x", err, ErrLevel)
	}
}
