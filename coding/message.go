// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Block is a run of data codewords and its Reed-Solomon check bytes.
type Block struct {
	Data  []byte
	Check []byte
}

// A Message is a segment encoded into the codeword sequence of a QR
// code with a particular version and level.
type Message struct {
	Version Version // QR version
	Level   Level   // error correction level
	Mode    Mode    // mode of the encoded segment
	Count   int     // character count

	blocks []Block
	words  []byte // interleaved codewords
}

// NewMessage encodes seg into a QR code with the given version and
// level.  It returns a *CapacityError if seg does not fit.
func NewMessage(seg Segment, v Version, l Level) (*Message, error) {
	if !v.valid() {
		return nil, ErrVersion
	}
	if !l.valid() {
		return nil, ErrLevel
	}
	ts, m, n, err := seg.prepare()
	if err != nil {
		return nil, err
	}
	return newMessage(ts, m, n, v, l)
}

// Encode encodes seg into the smallest QR code with at least version
// minVersion and level minLevel that holds it, as chosen by Select.
func Encode(seg Segment, minVersion Version, minLevel Level) (*Message, error) {
	ts, m, n, err := seg.prepare()
	if err != nil {
		return nil, err
	}
	v, l, err := Select(n, ts.Mode, minLevel, minVersion)
	if err != nil {
		return nil, err
	}
	return newMessage(ts, m, n, v, l)
}

func newMessage(ts Segment, m *ModeEncoder, n int, v Version, l Level) (*Message, error) {
	class := v.SizeClass()
	nd := v.dataBytes(l)
	if c := m.capacity(nd*8, class); n > c {
		return nil, &CapacityError{
			Mode:     ts.Mode,
			Count:    n,
			Capacity: c,
			Version:  v,
			Level:    l,
		}
	}
	b := NewBits(v, l)
	m.encode(b, ts.Text, n, class)
	blocks := b.AddCheckBytes(v, l)
	return &Message{
		Version: v,
		Level:   l,
		Mode:    ts.Mode,
		Count:   n,
		blocks:  blocks,
		words:   b.Permute(v, l),
	}, nil
}

// Codewords returns the interleaved data and check codewords in
// transmission order.
func (msg *Message) Codewords() []byte { return msg.words }

// Blocks returns the data blocks and their check bytes, in order.
func (msg *Message) Blocks() []Block { return msg.blocks }

// Bits returns the length of the bit stream: the codewords followed
// by the remainder bits.
func (msg *Message) Bits() int {
	return len(msg.words)*8 + vtab[msg.Version].remainder
}

// Stream returns a new BitStream reading the message bits.
func (msg *Message) Stream() *BitStream {
	return NewBitStream(msg.words, msg.Bits())
}
