// Copyright 2026 the PicoBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iplboot

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestWrapEmptyRaw(t *testing.T) {
	w := Wrap(nil)
	if !bytes.Equal(w.Body, pico) {
		t.Fatalf("body = %v, want just the PICO trailer", w.Body)
	}
	size := binary.BigEndian.Uint32(w.Header[8:])
	if size != 4+32 {
		t.Fatalf("header size field = %d, want %d", size, 4+32)
	}
}

func TestWrap100ByteRawProducesExpectedHeaderAndBody(t *testing.T) {
	raw := make([]byte, 100)
	w := Wrap(raw)

	if !bytes.Equal(w.Header[:8], []byte("IPLBOOT ")) {
		t.Fatalf("header magic = %q", w.Header[:8])
	}
	// body_len = 100 (scrambled, already 4-byte aligned) + 4 (PICO) =
	// 104; size field = body_len + 32 = 136 = 0x88, consistent with the
	// zero-length boundary case (body_len=4 -> size=36) above.
	size := binary.BigEndian.Uint32(w.Header[8:])
	if size != 0x88 {
		t.Fatalf("header size field = %#x, want %#x", size, 0x88)
	}
	if len(w.Body) != 104 {
		t.Fatalf("body length = %d, want 104", len(w.Body))
	}
	if !bytes.Equal(w.Body[len(w.Body)-4:], []byte{0x50, 0x49, 0x43, 0x4F}) {
		t.Fatalf("trailer = %v, want PICO bytes", w.Body[len(w.Body)-4:])
	}
}

func TestWrapValidate(t *testing.T) {
	w := Wrap([]byte{1, 2, 3, 4, 5})
	if err := Validate(w); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestValidateCatchesBadMagic(t *testing.T) {
	w := Wrap([]byte{1, 2, 3})
	w.Header[0] = 'X'
	if err := Validate(w); err == nil {
		t.Fatal("expected an error for corrupted magic")
	} else if _, ok := err.(*ErrInvalidMagic); !ok {
		t.Fatalf("expected ErrInvalidMagic, got %T", err)
	}
}

func TestValidateCatchesMissingTrailer(t *testing.T) {
	w := Wrap([]byte{1, 2, 3})
	w.Body[len(w.Body)-1] = 'X'
	if err := Validate(w); err == nil {
		t.Fatal("expected an error for missing trailer")
	} else if _, ok := err.(*ErrMissingPicoTrailer); !ok {
		t.Fatalf("expected ErrMissingPicoTrailer, got %T", err)
	}
}

func TestValidateCatchesSizeMismatch(t *testing.T) {
	w := Wrap([]byte{1, 2, 3})
	binary.BigEndian.PutUint32(w.Header[8:], 0)
	if err := Validate(w); err == nil {
		t.Fatal("expected an error for size mismatch")
	} else if _, ok := err.(*ErrSizeMismatch); !ok {
		t.Fatalf("expected ErrSizeMismatch, got %T", err)
	}
}

func TestBytesConcatenatesHeaderAndBody(t *testing.T) {
	w := Wrap([]byte{1, 2, 3})
	full := w.Bytes()
	if len(full) != w.Total() {
		t.Fatalf("len(Bytes()) = %d, want Total() = %d", len(full), w.Total())
	}
	if !bytes.Equal(full[:len(w.Header)], w.Header) {
		t.Fatal("Bytes() does not start with the header")
	}
}
