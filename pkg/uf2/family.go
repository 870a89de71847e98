// Copyright 2026 the PicoBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uf2 encodes, parses, and merges Universal Flash Format
// block streams: 512-byte little-endian blocks used by microcontroller
// mass-storage bootloaders to flash an image.
package uf2

import "fmt"

// Family is a target microcontroller family selector. The zero value
// is not a valid family.
type Family int

// The closed set of microcontroller families this module targets.
const (
	RP2040 Family = iota + 1
	RP2350
)

// tags maps each Family to its 32-bit UF2 family-ID tag.
var tags = map[Family]uint32{
	RP2040: 0xE48BFF56,
	RP2350: 0xE48BFF59,
}

// Tag returns f's 32-bit UF2 family identifier.
func (f Family) Tag() (uint32, error) {
	tag, ok := tags[f]
	if !ok {
		return 0, fmt.Errorf("uf2: unknown family %d", f)
	}
	return tag, nil
}

func (f Family) String() string {
	switch f {
	case RP2040:
		return "RP2040"
	case RP2350:
		return "RP2350"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}
