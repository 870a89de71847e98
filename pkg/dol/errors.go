// Copyright 2026 the PicoBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dol

import "fmt"

// ErrTooSmall means the input buffer is shorter than a DOL header.
type ErrTooSmall struct {
	Got, Min int
}

func (err *ErrTooSmall) Error() string {
	return fmt.Sprintf("dol: file too small to contain a header: got %#x bytes, need at least %#x", err.Got, err.Min)
}

// ErrZeroHeader means the header region is entirely zero bytes.
type ErrZeroHeader struct{}

func (err *ErrZeroHeader) Error() string {
	return "dol: header is all-zero, this is not a DOL file"
}

// ErrInvalidEntryPoint means the entry point does not match the single
// address a GameCube IPL will boot from.
type ErrInvalidEntryPoint struct {
	Got, Expected uint32
}

func (err *ErrInvalidEntryPoint) Error() string {
	return fmt.Sprintf("dol: entry point %#08x does not match expected %#08x", err.Got, err.Expected)
}

// ErrInvalidLoadAddress means the first text section's load address
// does not match EntryPoint.
type ErrInvalidLoadAddress struct {
	Got, Expected uint32
}

func (err *ErrInvalidLoadAddress) Error() string {
	return fmt.Sprintf("dol: first text section load address %#08x does not match expected %#08x", err.Got, err.Expected)
}

// ErrSectionOutOfBounds means a non-empty section's file range runs
// past the end of the file.
type ErrSectionOutOfBounds struct {
	Label        string
	Offset, Size uint32
	FileSize     int
}

func (err *ErrSectionOutOfBounds) Error() string {
	return fmt.Sprintf("dol: section %s at offset %#x size %#x runs past file size %#x",
		humanLabel(err.Label), err.Offset, err.Size, err.FileSize)
}

// ErrSectionOverlap means two non-empty sections occupy overlapping
// file-space ranges.
type ErrSectionOverlap struct {
	ALabel, BLabel string
	ARange, BRange [2]uint32
}

func (err *ErrSectionOverlap) Error() string {
	return fmt.Sprintf("dol: section %s [%#x,%#x) overlaps section %s [%#x,%#x)",
		humanLabel(err.ALabel), err.ARange[0], err.ARange[1],
		humanLabel(err.BLabel), err.BRange[0], err.BRange[1])
}

// ErrTooLarge means the DOL file exceeds MaxFileSize.
type ErrTooLarge struct {
	Got, Max int
}

func (err *ErrTooLarge) Error() string {
	return fmt.Sprintf("dol: file size %#x exceeds maximum %#x", err.Got, err.Max)
}
