// Copyright 2026 the PicoBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uf2

import "fmt"

// ErrBadLength means a stream's byte length is not a multiple of
// BlockSize.
type ErrBadLength struct{ Got int }

func (err *ErrBadLength) Error() string {
	return fmt.Sprintf("uf2: stream length %#x is not a multiple of block size %#x", err.Got, BlockSize)
}

// ErrBadMagic means one of a block's three magic fields did not match.
type ErrBadMagic struct{ BlockIndex int }

func (err *ErrBadMagic) Error() string {
	return fmt.Sprintf("uf2: block %d has an invalid magic", err.BlockIndex)
}

// ErrBadBlockSize means a raw block buffer was not exactly BlockSize
// bytes.
type ErrBadBlockSize struct{ Got int }

func (err *ErrBadBlockSize) Error() string {
	return fmt.Sprintf("uf2: block size %#x, want %#x", err.Got, BlockSize)
}

// ErrPayloadTooLarge means a decoded block's payload size field
// exceeds MaxPayloadSize.
type ErrPayloadTooLarge struct{ Got, Max uint32 }

func (err *ErrPayloadTooLarge) Error() string {
	return fmt.Sprintf("uf2: payload size %#x exceeds max %#x", err.Got, err.Max)
}

// ErrMergeMemoryOverlap means the base and payload streams' memory
// ranges are not disjoint.
type ErrMergeMemoryOverlap struct {
	BaseRange, PayloadRange [2]uint32
}

func (err *ErrMergeMemoryOverlap) Error() string {
	return fmt.Sprintf("uf2: base range [%#x,%#x) overlaps payload range [%#x,%#x)",
		err.BaseRange[0], err.BaseRange[1], err.PayloadRange[0], err.PayloadRange[1])
}

// ErrMergeBaseOutsideFlash means the base stream's first address is
// below FlashBase.
type ErrMergeBaseOutsideFlash struct{ BaseStart uint32 }

func (err *ErrMergeBaseOutsideFlash) Error() string {
	return fmt.Sprintf("uf2: base stream starts at %#x, below flash base %#x", err.BaseStart, FlashBase)
}

// ErrMergePayloadBeforeBaseEnd means the payload stream starts before
// the base stream ends.
type ErrMergePayloadBeforeBaseEnd struct{ PayloadStart, BaseEnd uint32 }

func (err *ErrMergePayloadBeforeBaseEnd) Error() string {
	return fmt.Sprintf("uf2: payload starts at %#x, before base ends at %#x", err.PayloadStart, err.BaseEnd)
}
