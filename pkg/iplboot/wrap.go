// Copyright 2026 the PicoBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iplboot frames a scrambled payload the way the on-device
// bootloader expects to find it in flash: a 12-byte "IPLBOOT " magic
// and big-endian size header, followed by the scrambled body and a
// trailing "PICO" marker.
package iplboot

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/picoboot/pbfw/pkg/scramble"
)

const (
	// HeaderSize is the fixed size of the IPLBOOT header.
	HeaderSize = 12

	// headerBias is added to the body length when computing the size
	// field: the upstream tool that originally defined this format
	// reserves a notional 32-byte header even though only 12 bytes are
	// emitted here. Preserved bit-exactly; see DESIGN.md Open Questions.
	headerBias = 32
)

var (
	magic = []byte("IPLBOOT ")
	pico  = []byte("PICO")
)

// Wrapped is a framed IPLBOOT payload: a 12-byte header and a body of
// scrambled, 4-byte-aligned data followed by the "PICO" trailer.
type Wrapped struct {
	Header []byte
	Body   []byte
}

// Bytes returns the header and body concatenated, ready for UF2
// encoding.
func (w *Wrapped) Bytes() []byte {
	out := make([]byte, 0, len(w.Header)+len(w.Body))
	out = append(out, w.Header...)
	out = append(out, w.Body...)
	return out
}

// Wrap scrambles raw, 4-byte-aligns and appends the "PICO" trailer to
// build the body, then prepends the "IPLBOOT " + size header.
func Wrap(raw []byte) *Wrapped {
	scrambled := scramble.Scramble(raw)

	alignedLen := roundUp4(len(scrambled))
	body := make([]byte, alignedLen+4)
	copy(body, scrambled)
	copy(body[alignedLen:], pico)

	header := make([]byte, HeaderSize)
	copy(header, magic)
	binary.BigEndian.PutUint32(header[8:], uint32(len(body)+headerBias))

	return &Wrapped{Header: header, Body: body}
}

func roundUp4(n int) int {
	return (n + 3) &^ 3
}

// Validate checks that w is a well-formed wrapped payload: correct
// magic, correct header size, a "PICO" trailer, and a consistent total
// length.
func Validate(w *Wrapped) error {
	if len(w.Header) < 8 || !bytes.Equal(w.Header[:8], magic) {
		return &ErrInvalidMagic{Got: w.Header}
	}
	if len(w.Header) != HeaderSize {
		return &ErrInvalidHeaderSize{Got: len(w.Header)}
	}
	if len(w.Body) < 4 || !bytes.Equal(w.Body[len(w.Body)-4:], pico) {
		return &ErrMissingPicoTrailer{Got: w.Body}
	}

	declared := binary.BigEndian.Uint32(w.Header[8:])
	observed := uint32(len(w.Body)) + headerBias
	if declared != observed {
		return &ErrSizeMismatch{Declared: declared, Observed: observed}
	}

	return nil
}

// Total returns the total byte length of the wrapped payload.
func (w *Wrapped) Total() int {
	return len(w.Header) + len(w.Body)
}

// ErrInvalidMagic means the header's first 8 bytes are not "IPLBOOT ".
type ErrInvalidMagic struct{ Got []byte }

func (err *ErrInvalidMagic) Error() string {
	return fmt.Sprintf("iplboot: invalid magic, got %q, want %q", err.Got, magic)
}

// ErrInvalidHeaderSize means the header is not exactly HeaderSize bytes.
type ErrInvalidHeaderSize struct{ Got int }

func (err *ErrInvalidHeaderSize) Error() string {
	return fmt.Sprintf("iplboot: invalid header size %#x, want %#x", err.Got, HeaderSize)
}

// ErrMissingPicoTrailer means the body does not end in "PICO".
type ErrMissingPicoTrailer struct{ Got []byte }

func (err *ErrMissingPicoTrailer) Error() string {
	return fmt.Sprintf("iplboot: missing PICO trailer, body ends in %q", lastBytes(err.Got, 4))
}

func lastBytes(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[len(b)-n:]
}

// ErrSizeMismatch means the header's declared size does not match the
// body's observed length plus headerBias.
type ErrSizeMismatch struct{ Declared, Observed uint32 }

func (err *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("iplboot: declared size %#x does not match observed size %#x", err.Declared, err.Observed)
}
