// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBitsWrite(t *testing.T) {
	var b Bits
	b.Write(0b101, 3)
	b.Write(0b11110000_1, 9)
	b.Write(0xfff, 0)
	b.Write(0xdeadbeef, 32)
	b.Write(1, 4)
	if b.Bits() != 48 {
		t.Errorf("Bits() = %d, want 48", b.Bits())
	}
	want := []byte{0xbe, 0x1d, 0xea, 0xdb, 0xee, 0xf1}
	if diff := cmp.Diff(want, b.Bytes()); diff != "" {
		t.Errorf("Bytes() mismatch (-want +got):\n%s", diff)
	}
	b.Reset()
	if b.Bits() != 0 || len(b.Bytes()) != 0 {
		t.Errorf("Reset left %d bits", b.Bits())
	}
}

func TestBitsFractionalPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Bytes() of 3 bits did not panic")
		}
	}()
	var b Bits
	b.Write(1, 3)
	b.Bytes()
}

func TestPadTo(t *testing.T) {
	for _, tt := range []struct {
		nbit int // bits of 1s written
		n    int // bytes to pad to
		want []byte
	}{
		{0, 5, []byte{0x00, 0xec, 0x11, 0xec, 0x11}},
		{4, 4, []byte{0xf0, 0xec, 0x11, 0xec}},
		{6, 3, []byte{0xfc, 0x00, 0xec}},
		{14, 3, []byte{0xff, 0xfc, 0x00}},
		{22, 3, []byte{0xff, 0xff, 0xfc}},
		{24, 3, []byte{0xff, 0xff, 0xff}},
	} {
		b := new(Bits)
		for i := 0; i < tt.nbit; i++ {
			b.Write(1, 1)
		}
		b.PadTo(4, tt.n)
		if diff := cmp.Diff(tt.want, b.Bytes()); diff != "" {
			t.Errorf("%d bits padded to %d: mismatch (-want +got):\n%s",
				tt.nbit, tt.n, diff)
		}
	}
}

func TestInterleave(t *testing.T) {
	// Two blocks of 2 and two of 3: 0 1 | 2 3 | 4 5 6 | 7 8 9
	src := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	dst := make([]byte, len(src))
	interleave(dst, src, 4)
	want := []byte{0, 2, 4, 7, 1, 3, 5, 8, 6, 9}
	if diff := cmp.Diff(want, dst); diff != "" {
		t.Errorf("interleave mismatch (-want +got):\n%s", diff)
	}
}

func TestBitStream(t *testing.T) {
	s := NewBitStream([]byte{0xa5}, 11)
	var got []byte
	for s.Remaining() > 0 {
		got = append(got, s.Next())
	}
	want := []byte{1, 0, 1, 0, 0, 1, 0, 1, 0, 0, 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bits mismatch (-want +got):\n%s", diff)
	}
	if b := s.Next(); b != 0 || s.Remaining() != 0 {
		t.Errorf("past end: Next() = %d, Remaining() = %d", b, s.Remaining())
	}
}
