package main

import (
	"testing"

	"github.com/unixdj/qrenc"
)

func render(c qrenc.Grid) string {
	siz := c.Size()
	b := make([]byte, 0, siz*siz)
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			if c.Dark(x, y) {
				b = append(b, '#')
			} else {
				b = append(b, '.')
			}
		}
	}
	return string(b)
}

// transform returns c transformed by flags, a string of 'f' and 'r'.
func transform(c qrenc.Grid, flags string) string {
	g.cx, g.inc = 0, [2]int{1, 1}
	for _, f := range flags {
		if f == 'f' {
			flip()
		} else {
			rotate()
		}
	}
	return render(randr(c))
}

func TestRandr(t *testing.T) {
	c, err := qrenc.Encode([]byte("randr"), 1, qrenc.L, 0)
	if err != nil {
		t.Fatal(err)
	}
	orig := render(c)
	siz := c.Size()
	for _, tt := range [][]string{
		{"", "rrrr", "ff", "rfrf"},
		{"fr", "rfrr", "rrrf"},
		{"r", "frrrf"},
		{"rr", "ffrr", "frrf"},
	} {
		want := transform(c, tt[0])
		for _, flags := range tt[1:] {
			if got := transform(c, flags); got != want {
				t.Errorf("%q differs from %q", flags, tt[0])
			}
		}
	}
	if transform(c, "") != orig {
		t.Error("identity changed the symbol")
	}

	// Flip mirrors columns; rotation moves the top right corner to
	// the top left.
	f := transform(c, "f")
	r := transform(c, "r")
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			if f[y*siz+x] != orig[y*siz+siz-1-x] {
				t.Fatalf("flip: (%d, %d) wrong", x, y)
			}
			if r[y*siz+x] != orig[x*siz+siz-1-y] {
				t.Fatalf("rotate: (%d, %d) wrong", x, y)
			}
		}
	}
}
