// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrenc_test

import (
	"fmt"
	"log"
	"os"

	"github.com/unixdj/qrenc"
	"github.com/unixdj/qrenc/coding"
)

func ExampleEncode() {
	s, err := qrenc.Encode([]byte("https://example.com/"), 1, qrenc.M, 0)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Printf("version %v-%v, %s mode, %d modules\n",
		s.Version, s.Level, s.Mode, s.Size())
	// Output:
	// version 2-M, byte mode, 33 modules
}

func ExampleEncodeSegment() {
	s, err := qrenc.EncodeSegment(
		coding.Segment{Text: "HELLO WORLD", Mode: qrenc.Alphanumeric},
		1, qrenc.Q, 6, 0)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Print(s.Matrix)
	// Output:
	// #######....#..#######
	// #.....#.##..#.#.....#
	// #.###.#..#.##.#.###.#
	// #.###.#.#####.#.###.#
	// #.###.#.##.#..#.###.#
	// #.....#..#..#.#.....#
	// #######.#.#.#.#######
	// ........##.##........
	// .#.####.##..###.##.#.
	// #.####.#....####.###.
	// ..#.#.##...#..##.....
	// #.##.#...#.##...##...
	// ##.########.###.#####
	// ........#...#..#.#...
	// #######..##..##..####
	// #.....#.#.#..#..#.###
	// #.###.#.##.#..#...###
	// #.###.#.#.###...#.#..
	// #.###.#..#....#....##
	// #.....#.###..###..##.
	// #######..#.#.......#.
}

func ExampleSymbol_WriteText() {
	s, err := qrenc.EncodeText("42", qrenc.Numeric, 1, qrenc.L, 0)
	if err != nil {
		log.Fatalln(err)
	}
	if err := s.WriteText(os.Stdout, qrenc.HalfBlock); err != nil {
		log.Fatalln(err)
	}
}
