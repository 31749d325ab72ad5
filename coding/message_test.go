// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMessageCodewords(t *testing.T) {
	for _, tt := range []struct {
		name string
		seg  Segment
		v    Version
		l    Level
		want []byte
	}{
		{
			"numeric 1-M", Segment{"01234567", Numeric}, 1, M,
			[]byte{
				16, 32, 12, 86, 97, 128, 236, 17, 236, 17, 236, 17,
				236, 17, 236, 17,
				165, 36, 212, 193, 237, 54, 199, 135, 44, 85,
			},
		},
		{
			"alphanumeric 1-Q", Segment{"HELLO WORLD", Alphanumeric}, 1, Q,
			[]byte{
				32, 91, 11, 120, 209, 114, 220, 77, 67, 64, 236, 17,
				236,
				168, 72, 22, 82, 217, 54, 156, 0, 46, 15, 180, 122, 16,
			},
		},
		{
			"empty 1-L", Segment{"", Byte}, 1, L,
			[]byte{
				64, 0, 236, 17, 236, 17, 236, 17, 236, 17, 236, 17,
				236, 17, 236, 17, 236, 17, 236,
				249, 170, 3, 203, 6, 227, 210,
			},
		},
		{
			// two blocks of 15 data bytes and two of 16
			"byte 5-Q",
			Segment{"The quick brown fox jumps over the lazy dog", Byte}, 5, Q,
			[]byte{
				66, 118, 87, 17, 181, 226, 34, 236, 70, 6, 7, 17, 134,
				102, 70, 236, 82, 247, 134, 17, 7, 130, 82, 236, 23, 6,
				6, 17, 86, 167, 198, 236, 150, 86, 23, 17, 54, 215, 167,
				236, 178, 7, 146, 17, 6, 50, 6, 236, 39, 6, 70, 17, 38,
				247, 246, 236, 247, 102, 112, 17, 236, 236,
				107, 120, 195, 135, 45, 13, 62, 147, 11, 42, 9, 7, 195,
				251, 24, 41, 216, 3, 200, 128, 132, 227, 223, 150, 176,
				108, 132, 120, 185, 86, 247, 184, 123, 222, 157, 37,
				210, 113, 252, 181, 151, 206, 133, 205, 54, 209, 49,
				222, 78, 34, 168, 231, 229, 194, 180, 8, 192, 225, 186,
				44, 101, 119, 179, 81, 198, 47, 176, 173, 218, 148, 208,
				80,
			},
		},
	} {
		msg, err := NewMessage(tt.seg, tt.v, tt.l)
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if diff := cmp.Diff(tt.want, msg.Codewords()); diff != "" {
			t.Errorf("%s: codewords mismatch (-want +got):\n%s",
				tt.name, diff)
		}
	}
}

func TestEncodeSelects(t *testing.T) {
	msg, err := Encode(Segment{"https://youtu.be/dQw4w9WgXcQ", Byte}, 1, H)
	if err != nil {
		t.Fatal(err)
	}
	if msg.Version != 4 || msg.Level != H || msg.Count != 28 {
		t.Errorf("got %v-%v with %d characters, want 4-H with 28",
			msg.Version, msg.Level, msg.Count)
	}
	want := []Block{
		{
			[]byte{65, 198, 135, 71, 71, 7, 51, 162, 242},
			[]byte{182, 158, 200, 87, 64, 170, 130, 132, 158, 179,
				105, 216, 92, 41, 128, 86},
		},
		{
			[]byte{247, 150, 247, 87, 71, 82, 230, 38, 82},
			[]byte{72, 247, 62, 215, 44, 64, 37, 169, 89, 205, 75,
				139, 124, 35, 35, 216},
		},
		{
			[]byte{246, 69, 23, 115, 71, 115, 149, 118, 117},
			[]byte{185, 8, 24, 196, 197, 221, 229, 177, 26, 123, 223,
				191, 102, 108, 253, 162},
		},
		{
			[]byte{134, 53, 16, 236, 17, 236, 17, 236, 17},
			[]byte{136, 17, 35, 106, 84, 214, 249, 22, 207, 187, 29,
				186, 54, 136, 211, 93},
		},
	}
	if diff := cmp.Diff(want, msg.Blocks()); diff != "" {
		t.Errorf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestMessageBlocks(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		for l := L; l <= H; l++ {
			msg, err := NewMessage(Segment{"", Byte}, v, l)
			if err != nil {
				t.Fatalf("%v-%v: %v", v, l, err)
			}
			lev := vtab[v].level[l]
			blocks := msg.Blocks()
			if len(blocks) != lev.nblock {
				t.Errorf("%v-%v: %d blocks, want %d",
					v, l, len(blocks), lev.nblock)
				continue
			}
			nd, short := 0, len(blocks[0].Data)
			for i, b := range blocks {
				nd += len(b.Data)
				if n := len(b.Data); n != short && n != short+1 ||
					i > 0 && n < len(blocks[i-1].Data) {
					t.Errorf("%v-%v: block %d has %d data bytes",
						v, l, i, n)
				}
				if len(b.Check) != lev.check {
					t.Errorf("%v-%v: block %d has %d check bytes",
						v, l, i, len(b.Check))
				}
			}
			if nd != v.dataBytes(l) {
				t.Errorf("%v-%v: %d data bytes, want %d",
					v, l, nd, v.dataBytes(l))
			}
			if n := len(msg.Codewords()); n != vtab[v].bytes {
				t.Errorf("%v-%v: %d codewords, want %d",
					v, l, n, vtab[v].bytes)
			}
		}
	}

	msg, err := NewMessage(Segment{strings.Repeat("0123456789", 30), Numeric}, 15, Q)
	if err != nil {
		t.Fatal(err)
	}
	for i, b := range msg.Blocks() {
		if c := Field.Divide(b.Data, len(b.Check)); !cmp.Equal(c, b.Check) {
			t.Errorf("block %d: check bytes %v, want %v", i, b.Check, c)
		}
	}
}

func TestMessageBits(t *testing.T) {
	msg, err := NewMessage(Segment{"x", Byte}, 2, L)
	if err != nil {
		t.Fatal(err)
	}
	if n := msg.Bits(); n != 44*8+7 {
		t.Errorf("Bits() = %d, want %d", n, 44*8+7)
	}
	s := msg.Stream()
	if s.Remaining() != msg.Bits() {
		t.Errorf("Stream().Remaining() = %d, want %d", s.Remaining(), msg.Bits())
	}
	var first byte
	for i := 0; i < 8; i++ {
		first = first<<1 | s.Next()
	}
	if first != msg.Codewords()[0] {
		t.Errorf("first stream byte %#x, want %#x", first, msg.Codewords()[0])
	}
}

func TestMessageErrors(t *testing.T) {
	var ce *CapacityError
	_, err := NewMessage(Segment{strings.Repeat("a", 18), Byte}, 1, L)
	if !errors.As(err, &ce) {
		t.Fatalf("18 bytes in 1-L: error = %v, want *CapacityError", err)
	}
	want := &CapacityError{Mode: Byte, Count: 18, Capacity: 17, Version: 1, Level: L}
	if diff := cmp.Diff(want, ce); diff != "" {
		t.Errorf("CapacityError mismatch (-want +got):\n%s", diff)
	}
	if _, err := NewMessage(Segment{"", Byte}, 41, L); err != ErrVersion {
		t.Errorf("version 41: error = %v, want %v", err, ErrVersion)
	}
	if _, err := NewMessage(Segment{"", Byte}, 1, Level(9)); err != ErrLevel {
		t.Errorf("level 9: error = %v, want %v", err, ErrLevel)
	}
	seg := Segment{"ab", Alphanumeric}
	if _, err := Encode(seg, 1, L); err != SegmentError(seg) {
		t.Errorf("%+v: error = %v", seg, err)
	}
}
