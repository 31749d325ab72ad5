// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import "testing"

var qrField = NewField(0x11d, 2)

func TestExpPeriod(t *testing.T) {
	f := qrField
	for e := -300; e < 600; e++ {
		if a, b := f.Exp(e), f.Exp(e+255); a != b {
			t.Errorf("Exp(%d) = %d, Exp(%d) = %d", e, a, e+255, b)
		}
	}
	if v := f.Exp(0); v != 1 {
		t.Errorf("Exp(0) = %d, want 1", v)
	}
}

func TestExpSmall(t *testing.T) {
	// Powers below 8 need no reduction, 2^8 is reduced once by 0x1d.
	want := []byte{1, 2, 4, 8, 16, 32, 64, 128, 0x1d, 0x3a, 0x74, 0xe8, 0xcd}
	for e, w := range want {
		if v := qrField.Exp(e); v != w {
			t.Errorf("Exp(%d) = %#02x, want %#02x", e, v, w)
		}
	}
}

func TestLogExp(t *testing.T) {
	f := qrField
	for e := 0; e < 255; e++ {
		if lg := f.Log(f.Exp(e)); lg != e {
			t.Errorf("Log(Exp(%d)) = %d", e, lg)
		}
	}
	for v := 1; v < 256; v++ {
		if x := f.Exp(f.Log(byte(v))); x != byte(v) {
			t.Errorf("Exp(Log(%d)) = %d", v, x)
		}
	}
}

func TestLogZero(t *testing.T) {
	if lg := qrField.Log(0); lg != 0 {
		t.Errorf("Log(0) = %d, want 0", lg)
	}
}

func TestMul(t *testing.T) {
	f := qrField
	for x := 0; x < 256; x++ {
		for y := 0; y < 256; y++ {
			want := byte(mul(x, y, 0x11d))
			if z := f.Mul(byte(x), byte(y)); z != want {
				t.Fatalf("Mul(%d, %d) = %d, want %d", x, y, z, want)
			}
		}
	}
}

func TestInv(t *testing.T) {
	f := qrField
	for x := 1; x < 256; x++ {
		if z := f.Mul(byte(x), f.Inv(byte(x))); z != 1 {
			t.Errorf("%d * Inv(%d) = %d", x, x, z)
		}
	}
	if z := f.Inv(0); z != 0 {
		t.Errorf("Inv(0) = %d, want 0", z)
	}
}

func TestNewFieldPanics(t *testing.T) {
	for _, tt := range []struct {
		name    string
		poly, α int
	}{
		{"reducible", 0x100, 2},
		{"too small", 0x1d, 2},
		{"bad generator", 0x11b, 2}, // AES polynomial: 2 has order 51
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: NewField(%#x, %d) did not panic",
						tt.name, tt.poly, tt.α)
				}
			}()
			NewField(tt.poly, tt.α)
		}()
	}
}
