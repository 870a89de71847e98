// Copyright 2026 the PicoBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uf2

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Stream is an ordered sequence of decoded UF2 blocks.
type Stream []*Block

// ParseStream decodes a raw byte buffer into a Stream. b's length must
// be a multiple of BlockSize and every block must pass ValidateBlock.
func ParseStream(b []byte) (Stream, error) {
	if len(b)%BlockSize != 0 {
		return nil, &ErrBadLength{Got: len(b)}
	}

	n := len(b) / BlockSize
	stream := make(Stream, 0, n)
	for i := 0; i < n; i++ {
		raw := b[i*BlockSize : (i+1)*BlockSize]
		if err := ValidateBlock(raw); err != nil {
			return nil, &ErrBadMagic{BlockIndex: i}
		}
		blk, err := DecodeBlock(raw)
		if err != nil {
			return nil, fmt.Errorf("uf2: decoding block %d: %w", i, err)
		}
		stream = append(stream, blk)
	}
	return stream, nil
}

// Validate checks that block indices are exactly 0..N-1 and that
// every block's TotalBlocks field equals N.
func (s Stream) Validate() error {
	n := uint32(len(s))
	for i, blk := range s {
		if blk.BlockNo != uint32(i) {
			return fmt.Errorf("uf2: block at position %d has block_no %d, want %d", i, blk.BlockNo, i)
		}
		if blk.TotalBlocks != n {
			return fmt.Errorf("uf2: block %d has total_blocks %d, want %d", i, blk.TotalBlocks, n)
		}
	}
	return nil
}

// Encode serializes every block in s back into a flat byte stream.
func (s Stream) Encode() []byte {
	out := make([]byte, 0, len(s)*BlockSize)
	for _, blk := range s {
		out = append(out, blk.Encode()...)
	}
	return out
}

// MemoryRange returns [start, end) spanning every block's target
// address range, and ok=false if s is empty.
func (s Stream) MemoryRange() (start, end uint32, ok bool) {
	if len(s) == 0 {
		return 0, 0, false
	}
	start = s[0].TargetAddr
	end = s[0].MemoryEnd()
	for _, blk := range s[1:] {
		if blk.TargetAddr < start {
			start = blk.TargetAddr
		}
		if e := blk.MemoryEnd(); e > end {
			end = e
		}
	}
	return start, end, true
}

// FamilyTags returns the distinct family tags present across s.
func (s Stream) FamilyTags() []uint32 {
	seen := map[uint32]bool{}
	var out []uint32
	for _, blk := range s {
		if !seen[blk.Family] {
			seen[blk.Family] = true
			out = append(out, blk.Family)
		}
	}
	return out
}

// Table renders the stream as a go-pretty table for the diagnostic
// CLI.
func (s Stream) Table() table.Writer {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Addr", "Size", "Family"})
	for _, blk := range s {
		t.AppendRow(table.Row{
			blk.BlockNo,
			fmt.Sprintf("%#08x", blk.TargetAddr),
			blk.PayloadSize,
			fmt.Sprintf("%#08x", blk.Family),
		})
	}
	return t
}
