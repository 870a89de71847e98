// Copyright 2026 the PicoBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uf2

import (
	"bytes"
	"testing"
)

func TestBlockEncodeDecodeRoundTrip(t *testing.T) {
	b := &Block{
		Flags:       FlagFamilyIDPresent,
		TargetAddr:  0x10080000,
		PayloadSize: 4,
		BlockNo:     0,
		TotalBlocks: 1,
		Family:      rp2040Tag(t),
	}
	copy(b.Data[:], []byte{1, 2, 3, 4})

	raw := b.Encode()
	if len(raw) != BlockSize {
		t.Fatalf("encoded block is %d bytes, want %d", len(raw), BlockSize)
	}
	if err := ValidateBlock(raw); err != nil {
		t.Fatalf("ValidateBlock failed: %v", err)
	}

	decoded, err := DecodeBlock(raw)
	if err != nil {
		t.Fatalf("DecodeBlock failed: %v", err)
	}
	if decoded.TargetAddr != b.TargetAddr || decoded.PayloadSize != b.PayloadSize {
		t.Fatalf("decoded block mismatch: %+v vs %+v", decoded, b)
	}
	if !bytes.Equal(decoded.Data[:4], []byte{1, 2, 3, 4}) {
		t.Fatalf("decoded data mismatch: %v", decoded.Data[:4])
	}
}

func TestValidateBlockRejectsBadMagic(t *testing.T) {
	raw := make([]byte, BlockSize)
	if err := ValidateBlock(raw); err == nil {
		t.Fatal("expected a magic error for an all-zero block")
	}
}

func TestValidateBlockRejectsBadSize(t *testing.T) {
	if err := ValidateBlock(make([]byte, 10)); err == nil {
		t.Fatal("expected a size error")
	} else if _, ok := err.(*ErrBadBlockSize); !ok {
		t.Fatalf("expected ErrBadBlockSize, got %T", err)
	}
}

// rp2040Tag is a tiny test helper returning the RP2040 family tag, so
// block-level tests don't need to reach into pkg uf2's family map
// directly.
func rp2040Tag(t *testing.T) uint32 {
	t.Helper()
	tag, err := RP2040.Tag()
	if err != nil {
		t.Fatalf("unexpected error getting RP2040 tag: %v", err)
	}
	return tag
}
