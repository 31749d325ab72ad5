// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "github.com/unixdj/qrenc/gf256"

// Bits is an append-only bit buffer, filled most significant bit
// first.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for a QR code of the
// given version and level, including room for Permute.
func NewBits(v Version, l Level) *Bits {
	vt := &vtab[v]
	n := vt.bytes
	if 1 < vt.level[l].nblock {
		n <<= 1
	}
	return &Bits{b: make([]byte, 0, n)}
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Bits returns the number of bits written to b.
func (b *Bits) Bits() int {
	return b.nbit
}

// Bytes returns the contents of b.  It panics unless b holds a whole
// number of bytes.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

func (b *Bits) growTo(n int) {
	for cap(b.b) < n {
		b.b = append(b.b[:cap(b.b)], 0)[:len(b.b)]
	}
}

func (b *Bits) Grow(n int) { b.growTo(len(b.b) + n) }

// Add adds n bytes to b and returns the added slice.
func (b *Bits) Add(n int) []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	b.Grow(n)
	start := len(b.b)
	b.b = b.b[:start+n]
	b.nbit = 8 * len(b.b)
	return b.b[start:]
}

// Write appends the nbit low bits of v to b.
func (b *Bits) Write(v uint32, nbit int) {
	if nbit == 0 {
		return
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// Pad bytes, alternating.
const (
	Pad0 = 0xec
	Pad1 = 0x11
)

// padTo adds up to t zero terminator bits to b, fills the last byte
// with zero bits and pads b with alternating pad bytes to n bytes.
func (b *Bits) padTo(t, n int) {
	b.nbit = min(b.nbit+t, n*8)
	for len(b.b)*8 < b.nbit {
		b.b = append(b.b, 0)
	}
	if len(b.b) < n {
		buf := b.b[len(b.b):n]
		b.b = b.b[:n]
		for len(buf) >= 2 {
			buf[0], buf[1] = Pad0, Pad1
			buf = buf[2:]
		}
		if len(buf) > 0 {
			buf[0] = Pad0
		}
	}
	b.nbit = len(b.b) * 8
}

// PadTo adds up to t terminator bits to b and pads it to n bytes.
func (b *Bits) PadTo(t, n int) {
	b.growTo(n)
	b.padTo(t, n)
}

// AddCheckBytes adds terminator, padding and check bytes to b for the
// given QR version and level.  The data is split into blocks, the
// short ones first; the check bytes of each block follow all the data.
// It returns the blocks.
func (b *Bits) AddCheckBytes(v Version, l Level) []Block {
	nd := v.dataBytes(l)
	if b.nbit > nd*8 {
		panic("qr: too much data")
	}
	vt := &vtab[v]
	b.growTo(vt.bytes)
	b.padTo(4, nd)

	dat := b.Bytes()
	lev := vt.level[l]
	db := nd / lev.nblock
	normal := (db+1)*lev.nblock - nd
	rs := gf256.NewRSEncoder(Field, lev.check)
	blocks := make([]Block, lev.nblock)
	for i := range blocks {
		if i == normal {
			db++
		}
		blocks[i] = Block{Data: dat[:db:db], Check: b.Add(lev.check)}
		rs.ECC(blocks[i].Data, blocks[i].Check)
		dat = dat[db:]
	}

	if len(b.Bytes()) != vt.bytes {
		panic("qr: internal error")
	}
	return blocks
}

// interleave interleaves nblock blocks from src to dst, which must be
// of equal length.  Blocks holding an extra byte come last.
func interleave(dst, src []byte, nblock int) {
	db := len(src) / nblock
	extra := dst[db*nblock:]
	dst = dst[:db*nblock]
	normal := nblock - len(extra)
	for i := 0; i < nblock; i++ {
		for j, v := range src[:db] {
			dst[j*nblock+i] = v
		}
		src = src[db:]
		if i >= normal {
			extra[i-normal] = src[0]
			src = src[1:]
		}
	}
}

// Permute returns the data and check bytes in b with blocks
// interleaved for the given QR code version and level.
// The result may use the same underlying buffer.
func (b *Bits) Permute(v Version, l Level) []byte {
	vt := &vtab[v]
	src := b.Bytes()
	if len(src) != vt.bytes {
		panic("qr: wrong data length")
	}
	dst := src
	if nblock := vt.level[l].nblock; nblock != 1 {
		if cap(src) < len(src)*2 {
			dst = make([]byte, vt.bytes)
		} else {
			dst = src[len(src) : len(src)*2]
		}
		nd := v.dataBytes(l)
		interleave(dst[:nd], src[:nd], nblock)
		interleave(dst[nd:], src[nd:], nblock)
	}
	return dst
}

// BitStream reads bits from the underlying buffer.
type BitStream struct {
	b   []byte
	pos int
	n   int
}

// NewBitStream returns a BitStream reading nbit bits from b.
// Bits past the end of b read as 0.
func NewBitStream(b []byte, nbit int) *BitStream {
	return &BitStream{b: b, n: nbit}
}

// Bytes returns the data underlying s.
func (s *BitStream) Bytes() []byte { return s.b }

// Remaining returns the number of bits left in s.
func (s *BitStream) Remaining() int { return max(s.n-s.pos, 0) }

// Next returns the next bit from s as 0 or 1.
// Past the end of the stream Next returns 0.
func (s *BitStream) Next() byte {
	var b byte
	if s.pos < s.n {
		if i := s.pos >> 3; i < len(s.b) {
			b = s.b[i] >> (7 &^ s.pos) & 1
		}
		s.pos++
	}
	return b
}
