// Copyright 2026 the PicoBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dol

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/camelcase"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Section is one non-empty text or data section of a DOL file: its
// file offset, load address, size, and a copy of its bytes.
type Section struct {
	Label  string
	Offset uint32
	Addr   uint32
	Size   uint32
	Data   []byte
	IsText bool
	Index  int
}

// Sections is the ordered, non-empty section list of a DOL file, in
// header order (text sections before data sections).
type Sections struct {
	Items     []Section
	TotalSize uint64
}

// ExtractSections returns every non-empty section of h, preserving
// header order. It is available for diagnostics and validation only:
// Build wraps the entire DOL file, not the flattened section payload
// this produces (see the pipeline's Open Question in DESIGN.md).
func ExtractSections(h *Header, b []byte) Sections {
	var out Sections
	for i := 0; i < NumTextSections; i++ {
		if h.TextSizes[i] == 0 {
			continue
		}
		s := Section{
			Label:  fmt.Sprintf("Text%d", i),
			Offset: h.TextOffsets[i],
			Addr:   h.TextAddrs[i],
			Size:   h.TextSizes[i],
			IsText: true,
			Index:  i,
		}
		s.Data = sliceSection(b, s.Offset, s.Size)
		out.Items = append(out.Items, s)
		out.TotalSize += uint64(s.Size)
	}
	for i := 0; i < NumDataSections; i++ {
		if h.DataSizes[i] == 0 {
			continue
		}
		s := Section{
			Label:  fmt.Sprintf("Data%d", i),
			Offset: h.DataOffsets[i],
			Addr:   h.DataAddrs[i],
			Size:   h.DataSizes[i],
			IsText: false,
			Index:  i,
		}
		s.Data = sliceSection(b, s.Offset, s.Size)
		out.Items = append(out.Items, s)
		out.TotalSize += uint64(s.Size)
	}
	return out
}

// sliceSection returns a copy of b[offset:offset+size], or nil if the
// range is invalid — callers that need the bounds guarantee must run
// Validate first.
func sliceSection(b []byte, offset, size uint32) []byte {
	end := uint64(offset) + uint64(size)
	if end > uint64(len(b)) {
		return nil
	}
	out := make([]byte, size)
	copy(out, b[offset:end])
	return out
}

// Table renders the section list as a go-pretty table for the
// diagnostic CLI.
func (s Sections) Table() table.Writer {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Section", "Offset", "Addr", "Size"})
	for _, item := range s.Items {
		t.AppendRow(table.Row{
			humanLabel(item.Label),
			fmt.Sprintf("%#08x", item.Offset),
			fmt.Sprintf("%#08x", item.Addr),
			fmt.Sprintf("%#x", item.Size),
		})
	}
	t.AppendFooter(table.Row{"", "", "total", fmt.Sprintf("%#x", s.TotalSize)})
	return t
}

// humanLabel turns an identifier-style section label ("Text0") into
// words ("Text 0") for error messages and table cells.
func humanLabel(label string) string {
	return strings.Join(camelcase.Split(label), " ")
}

// overlapEntry is the bookkeeping unit for the file-space overlap scan.
type overlapEntry struct {
	offset, size uint32
	label        string
}

// checkOverlap collects every non-empty section's (offset, size,
// label), sorts by offset ascending, and reports every adjacent pair
// that overlaps in file space — memory-space overlap is never checked.
func checkOverlap(entries []overlapEntry) []*ErrSectionOverlap {
	sort.Slice(entries, func(i, j int) bool { return entries[i].offset < entries[j].offset })

	var violations []*ErrSectionOverlap
	for i := 0; i+1 < len(entries); i++ {
		a, b := entries[i], entries[i+1]
		if uint64(a.offset)+uint64(a.size) > uint64(b.offset) {
			violations = append(violations, &ErrSectionOverlap{
				ALabel: a.label,
				BLabel: b.label,
				ARange: [2]uint32{a.offset, a.offset + a.size},
				BRange: [2]uint32{b.offset, b.offset + b.size},
			})
		}
	}
	return violations
}
