// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "fmt"

// CapacityError reports data too long for the QR code.
type CapacityError struct {
	Mode     Mode    // encoding mode
	Count    int     // characters to encode
	Capacity int     // characters that fit
	Version  Version // largest version considered
	Level    Level   // error correction level
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("qr: %d %s characters exceed capacity %d of version %v-%v",
		e.Count, e.Mode, e.Capacity, e.Version, e.Level)
}

// PlacementError reports a module written outside the matrix, or a
// data module left unset.
type PlacementError struct {
	Region string // function pattern or "data"
	X, Y   int    // module coordinates
	Size   int    // modules on a side
}

func (e *PlacementError) Error() string {
	if 0 <= e.X && e.X < e.Size && 0 <= e.Y && e.Y < e.Size {
		return fmt.Sprintf("qr: %s module (%d, %d) left unset",
			e.Region, e.X, e.Y)
	}
	return fmt.Sprintf("qr: %s module (%d, %d) outside %dx%d matrix",
		e.Region, e.X, e.Y, e.Size, e.Size)
}

// LookupError reports a missing static table entry.
type LookupError struct {
	Table string // table name
	Key   int    // key not found
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("qr: no %s table entry for %d", e.Table, e.Key)
}
