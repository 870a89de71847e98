// Copyright 2026 the PicoBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dol decodes and validates GameCube DOL executables: a
// 256-byte, big-endian header addressing up to 7 text and 11 data
// sections.
package dol

import (
	"encoding/binary"
	"fmt"

	"github.com/xaionaro-go/bytesextra"
)

const (
	// HeaderSize is the fixed size of a DOL header in bytes.
	HeaderSize = 256

	// NumTextSections is the number of text-section slots in the header.
	NumTextSections = 7
	// NumDataSections is the number of data-section slots in the header.
	NumDataSections = 11

	// EntryPoint is the only load address a GameCube IPL will boot from.
	EntryPoint = 0x81300000

	// MaxFileSize is the largest DOL file this parser accepts.
	MaxFileSize = 5 * 1024 * 1024

	offsetTextOffsets = 0x00
	offsetDataOffsets = 0x1C
	offsetTextAddrs   = 0x48
	offsetDataAddrs   = 0x64
	offsetTextSizes   = 0x90
	offsetDataSizes   = 0xAC
	offsetBSSAddr     = 0xD8
	offsetBSSSize     = 0xDC
	offsetEntryPoint  = 0xE0
)

// Header is the decoded fixed-shape layout of a DOL file's 256-byte
// header. Every field is a direct big-endian read from the source
// file; nothing here is derived or normalized.
type Header struct {
	TextOffsets [NumTextSections]uint32
	DataOffsets [NumDataSections]uint32
	TextAddrs   [NumTextSections]uint32
	DataAddrs   [NumDataSections]uint32
	TextSizes   [NumTextSections]uint32
	DataSizes   [NumDataSections]uint32
	BSSAddr     uint32
	BSSSize     uint32
	EntryPoint  uint32
}

// ParseHeader decodes the 256-byte DOL header from b. It does not
// validate the header's contents beyond rejecting a too-short buffer
// and an all-zero header; call Validate for the remaining structural
// checks (entry point, load address, section bounds, file size).
func ParseHeader(b []byte) (*Header, error) {
	if len(b) < HeaderSize {
		return nil, &ErrTooSmall{Got: len(b), Min: HeaderSize}
	}

	r := bytesextra.NewReadWriteSeeker(b[:HeaderSize])
	h := &Header{}

	if err := readBE32Array(r, offsetTextOffsets, h.TextOffsets[:]); err != nil {
		return nil, err
	}
	if err := readBE32Array(r, offsetDataOffsets, h.DataOffsets[:]); err != nil {
		return nil, err
	}
	if err := readBE32Array(r, offsetTextAddrs, h.TextAddrs[:]); err != nil {
		return nil, err
	}
	if err := readBE32Array(r, offsetDataAddrs, h.DataAddrs[:]); err != nil {
		return nil, err
	}
	if err := readBE32Array(r, offsetTextSizes, h.TextSizes[:]); err != nil {
		return nil, err
	}
	if err := readBE32Array(r, offsetDataSizes, h.DataSizes[:]); err != nil {
		return nil, err
	}
	h.BSSAddr = binary.BigEndian.Uint32(b[offsetBSSAddr:])
	h.BSSSize = binary.BigEndian.Uint32(b[offsetBSSSize:])
	h.EntryPoint = binary.BigEndian.Uint32(b[offsetEntryPoint:])

	if h.isAllZero() {
		return nil, &ErrZeroHeader{}
	}

	return h, nil
}

// String summarizes the header for logs and error context.
func (h *Header) String() string {
	return fmt.Sprintf("DOL{entry=%#08x, text0=%#08x}", h.EntryPoint, h.TextAddrs[0])
}

// readBE32Array reads len(dst) consecutive big-endian uint32s from r
// starting at byte offset off. r supplies the raw bytes through Seek
// and Read; the decode still runs through encoding/binary like the
// rest of the header fields, mirroring how pkg/intel/metadata/fit reads
// its tables through an io.ReadSeeker rather than raw slicing.
func readBE32Array(r *bytesextra.ReadWriteSeeker, off int64, dst []uint32) error {
	if _, err := r.Seek(off, 0); err != nil {
		return err
	}
	buf := make([]byte, 4*len(dst))
	if _, err := r.Read(buf); err != nil {
		return err
	}
	for i := range dst {
		dst[i] = binary.BigEndian.Uint32(buf[i*4:])
	}
	return nil
}

// isAllZero reports whether the entry point and the text/data offset
// and text address arrays are all zero — the signature of an all-zero
// region masquerading as a DOL header.
func (h *Header) isAllZero() bool {
	if h.EntryPoint != 0 {
		return false
	}
	for _, v := range h.TextOffsets {
		if v != 0 {
			return false
		}
	}
	for _, v := range h.DataOffsets {
		if v != 0 {
			return false
		}
	}
	for _, v := range h.TextAddrs {
		if v != 0 {
			return false
		}
	}
	return true
}
