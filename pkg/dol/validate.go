// Copyright 2026 the PicoBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dol

import (
	"strconv"

	"github.com/hashicorp/go-multierror"
)

// Validate checks h and b in order: entry point and first text load
// address, section bounds and file-space overlap, then overall file
// size. Section-bounds and overlap violations are collected and
// returned together via go-multierror rather than stopping at the
// first one, matching pkg/intel/metadata/fit/check/bounds.go's
// aggregate-bounds-checks convention; the entry-point and file-size
// checks are fail-fast single conditions.
func Validate(h *Header, b []byte) error {
	if h.EntryPoint != EntryPoint {
		return &ErrInvalidEntryPoint{Got: h.EntryPoint, Expected: EntryPoint}
	}
	if h.TextAddrs[0] != EntryPoint {
		return &ErrInvalidLoadAddress{Got: h.TextAddrs[0], Expected: EntryPoint}
	}

	if err := checkSectionBounds(h, b); err != nil {
		return err
	}

	if len(b) > MaxFileSize {
		return &ErrTooLarge{Got: len(b), Max: MaxFileSize}
	}

	return nil
}

func checkSectionBounds(h *Header, b []byte) error {
	var result *multierror.Error
	var entries []overlapEntry

	addEntry := func(label string, offset, size uint32) {
		if size == 0 {
			return
		}
		if uint64(offset)+uint64(size) > uint64(len(b)) {
			result = multierror.Append(result, &ErrSectionOutOfBounds{
				Label:    label,
				Offset:   offset,
				Size:     size,
				FileSize: len(b),
			})
		}
		entries = append(entries, overlapEntry{offset: offset, size: size, label: label})
	}

	for i := 0; i < NumTextSections; i++ {
		addEntry(humanLabel2("Text", i), h.TextOffsets[i], h.TextSizes[i])
	}
	for i := 0; i < NumDataSections; i++ {
		addEntry(humanLabel2("Data", i), h.DataOffsets[i], h.DataSizes[i])
	}

	for _, v := range checkOverlap(entries) {
		result = multierror.Append(result, v)
	}

	return result.ErrorOrNil()
}

func humanLabel2(prefix string, index int) string {
	return prefix + strconv.Itoa(index)
}
