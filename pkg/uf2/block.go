// Copyright 2026 the PicoBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uf2

import (
	"encoding/binary"
)

const (
	// BlockSize is the fixed size of every UF2 block.
	BlockSize = 512

	// DataSize is the size of the data region within a block; only the
	// first PayloadSize bytes of it are meaningful.
	DataSize = 476

	// MaxPayloadSize is the largest payload a single block may carry.
	MaxPayloadSize = 256

	magic0   = 0x0A324655
	magic1   = 0x9E5D5157
	magicEnd = 0x0AB16F30

	// FlagFamilyIDPresent is the flags value this format uses to mark a
	// family tag present in every block: the UF2 format's familyID-present
	// bit, preserved as-is for compatibility with existing flashing tools.
	FlagFamilyIDPresent = 0x00002000

	offMagic0  = 0
	offMagic1  = 4
	offFlags   = 8
	offAddr    = 12
	offPayload = 16
	offBlockNo = 20
	offTotal   = 24
	offFamily  = 28
	offData    = 32
	offEnd     = 508
)

// Block is the fully decoded in-memory form of one 512-byte UF2 block.
type Block struct {
	Flags       uint32
	TargetAddr  uint32
	PayloadSize uint32
	BlockNo     uint32
	TotalBlocks uint32
	Family      uint32
	Data        [DataSize]byte
}

// Encode serializes b into a 512-byte UF2 block.
func (b *Block) Encode() []byte {
	out := make([]byte, BlockSize)
	le := binary.LittleEndian
	le.PutUint32(out[offMagic0:], magic0)
	le.PutUint32(out[offMagic1:], magic1)
	le.PutUint32(out[offFlags:], b.Flags)
	le.PutUint32(out[offAddr:], b.TargetAddr)
	le.PutUint32(out[offPayload:], b.PayloadSize)
	le.PutUint32(out[offBlockNo:], b.BlockNo)
	le.PutUint32(out[offTotal:], b.TotalBlocks)
	le.PutUint32(out[offFamily:], b.Family)
	copy(out[offData:], b.Data[:])
	le.PutUint32(out[offEnd:], magicEnd)
	return out
}

// DecodeBlock parses a single 512-byte UF2 block.
func DecodeBlock(raw []byte) (*Block, error) {
	if len(raw) != BlockSize {
		return nil, &ErrBadBlockSize{Got: len(raw)}
	}

	le := binary.LittleEndian
	read32 := func(off int) uint32 { return le.Uint32(raw[off:]) }

	if read32(offMagic0) != magic0 || read32(offMagic1) != magic1 || read32(offEnd) != magicEnd {
		return nil, &ErrBadMagic{}
	}

	b := &Block{
		Flags:       read32(offFlags),
		TargetAddr:  read32(offAddr),
		PayloadSize: read32(offPayload),
		BlockNo:     read32(offBlockNo),
		TotalBlocks: read32(offTotal),
		Family:      read32(offFamily),
	}
	if b.PayloadSize > MaxPayloadSize {
		return nil, &ErrPayloadTooLarge{Got: b.PayloadSize, Max: MaxPayloadSize}
	}
	copy(b.Data[:], raw[offData:offData+DataSize])

	return b, nil
}

// ValidateBlock checks only the three magic fields of a raw 512-byte
// block.
func ValidateBlock(raw []byte) error {
	if len(raw) != BlockSize {
		return &ErrBadBlockSize{Got: len(raw)}
	}
	le := binary.LittleEndian
	if le.Uint32(raw[offMagic0:]) != magic0 ||
		le.Uint32(raw[offMagic1:]) != magic1 ||
		le.Uint32(raw[offEnd:]) != magicEnd {
		return &ErrBadMagic{}
	}
	return nil
}

// MemoryEnd returns the first address past this block's payload.
func (b *Block) MemoryEnd() uint32 {
	return b.TargetAddr + b.PayloadSize
}
