// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Layout stages, in order.
type stage int

const (
	blank stage = iota
	patternsPlaced
	dataInserted
	marginApplied
)

var stageNames = [...]string{"blank", "patterns placed", "data inserted",
	"margin applied"}

func (s stage) String() string { return stageNames[s] }

// A renderer lays out a QR code on a matrix.  Its steps must run in
// order: placePatterns, insertData, applyMargin.
type renderer struct {
	v      Version
	l      Level
	mask   Mask
	m      *Matrix
	stage  stage
	region string // region being drawn, for errors
	err    error  // first placement error
}

func newRenderer(v Version, l Level, mask Mask) *renderer {
	return &renderer{v: v, l: l, mask: mask, m: NewMatrix(v.Size())}
}

// advance moves r from stage from to the next one.
func (r *renderer) advance(from stage) {
	if r.stage != from {
		panic("qr: layout in stage " + r.stage.String() +
			", want " + from.String())
	}
	r.stage++
}

// set sets the module at x, y in the current region.  The first error
// is kept in r.err.
func (r *renderer) set(x, y int, dark bool) {
	if err := r.m.place(r.region, x, y, cell(dark)); err != nil && r.err == nil {
		r.err = err
	}
}

// Render lays out msg on a module matrix with the given mask and a
// quiet zone of margin modules.
func Render(msg *Message, mask Mask, margin int) (*Matrix, error) {
	if !mask.valid() {
		return nil, ErrMask
	}
	if margin < 0 {
		return nil, ErrMargin
	}
	r := newRenderer(msg.Version, msg.Level, mask)
	if err := r.placePatterns(); err != nil {
		return nil, err
	}
	if err := r.insertData(msg.Stream()); err != nil {
		return nil, err
	}
	return r.applyMargin(margin), nil
}

// placePatterns draws the function patterns: finder patterns with
// their separators, alignment and timing patterns, the dark module,
// and format and version information.
func (r *renderer) placePatterns() error {
	r.advance(blank)
	siz := r.m.Size

	// Position boxes.
	r.region = "finder"
	r.finder(0, 0)
	r.finder(siz-7, 0)
	r.finder(0, siz-7)

	// Alignment boxes.
	r.region = "alignment"
	pos := alignPositions(r.v)
	for _, y := range pos {
		for _, x := range pos {
			if r.overlapsFinder(x, y) {
				continue
			}
			r.alignBox(x, y)
		}
	}

	// Timing markers.
	r.region = "timing"
	for i := 8; i < siz-8; i++ {
		r.set(i, 6, i%2 == 0)
		r.set(6, i, i%2 == 0)
	}

	// One lonely dark module.
	r.region = "dark module"
	r.set(8, siz-8, true)

	r.placeFormat(FormatBits(r.l, r.mask))
	r.placeVersion(VersionBits(r.v))
	return r.err
}

// finder draws a finder pattern with its top left corner at x, y,
// with the light separator around it clipped to the matrix.
func (r *renderer) finder(x, y int) {
	for dy := -1; dy <= 7; dy++ {
		for dx := -1; dx <= 7; dx++ {
			if !r.m.inside(x+dx, y+dy) {
				continue
			}
			d := max(abs(dx-3), abs(dy-3)) // 4 is the separator
			r.set(x+dx, y+dy, d != 2 && d != 4)
		}
	}
}

// overlapsFinder reports whether an alignment pattern centred at x, y
// would overlap a finder pattern or its separator.
func (r *renderer) overlapsFinder(x, y int) bool {
	near, far := x-2 < 8, x+2 >= r.m.Size-8
	return y-2 < 8 && (near || far) || y+2 >= r.m.Size-8 && near
}

// alignBox draws an alignment pattern centred at x, y.
func (r *renderer) alignBox(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			r.set(x+dx, y+dy, max(abs(dx), abs(dy)) != 1)
		}
	}
}

// alignPositions returns the row and column coordinates of alignment
// pattern centres for version v: 6, then apos and every astride
// modules up to the far edge.  Version 1 has none.
func alignPositions(v Version) []int {
	vt := &vtab[v]
	if vt.apos == 0 {
		return nil
	}
	last := v.Size() - 7
	pos := []int{6}
	for p := vt.apos; p <= last; p += vt.astride {
		pos = append(pos, p)
		if vt.astride == 0 {
			break
		}
	}
	return pos
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// insertData places the bits of s in zigzag order on the modules left
// unset by placePatterns, applying the mask.  Modules remaining after
// s is exhausted get masked zero bits.
func (r *renderer) insertData(s *BitStream) error {
	r.advance(patternsPlaced)
	r.region = "data"
	z := NewZigzag(r.m.Size)
	for x, y, ok := z.Next(); ok; x, y, ok = z.Next() {
		if r.m.At(x, y) != Unset {
			continue
		}
		r.set(x, y, r.mask.Apply(s.Next() != 0, x, y))
	}
	if r.err != nil {
		return r.err
	}
	if s.Remaining() != 0 {
		siz := r.m.Size
		return &PlacementError{Region: "data", X: siz, Y: siz, Size: siz}
	}
	if x, y, ok := r.m.Unset(); ok {
		return &PlacementError{Region: "data", X: x, Y: y, Size: r.m.Size}
	}
	return nil
}

// applyMargin returns the matrix framed by margin light modules.
func (r *renderer) applyMargin(margin int) *Matrix {
	r.advance(dataInserted)
	return r.m.Frame(margin)
}
