// Copyright 2026 the PicoBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uf2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeEmptyYieldsZeroBlocks(t *testing.T) {
	stream, err := Encode(nil, PayloadBase, RP2040)
	require.NoError(t, err)
	require.Empty(t, stream)
}

func TestEncodeExactly256Bytes(t *testing.T) {
	stream, err := Encode(make([]byte, 256), PayloadBase, RP2040)
	require.NoError(t, err)
	require.Len(t, stream, 1)
	require.EqualValues(t, 256, stream[0].PayloadSize)
}

func TestEncode257BytesSplitsIntoTwoBlocks(t *testing.T) {
	stream, err := Encode(make([]byte, 257), PayloadBase, RP2040)
	require.NoError(t, err)
	require.Len(t, stream, 2)
	require.EqualValues(t, 256, stream[0].PayloadSize)
	require.EqualValues(t, 1, stream[1].PayloadSize)
}

func TestEncode512BytesYieldsTwoFullBlocksTaggedRP2040(t *testing.T) {
	stream, err := Encode(make([]byte, 512), PayloadBase, RP2040)
	require.NoError(t, err)
	require.Len(t, stream, 2)

	require.EqualValues(t, PayloadBase, stream[0].TargetAddr)
	require.EqualValues(t, PayloadBase+0x100, stream[1].TargetAddr)

	wantTag, err := RP2040.Tag()
	require.NoError(t, err)
	for i, blk := range stream {
		require.EqualValues(t, wantTag, blk.Family)
		require.EqualValues(t, 256, blk.PayloadSize)
		require.EqualValues(t, i, blk.BlockNo)
		require.EqualValues(t, 2, blk.TotalBlocks)
	}
}

// The same input encoded for RP2350 produces identical blocks except
// for the family tag.
func TestEncodeSameInputDiffersOnlyByFamilyTag(t *testing.T) {
	rp2040Stream, err := Encode(make([]byte, 512), PayloadBase, RP2040)
	require.NoError(t, err)
	rp2350Stream, err := Encode(make([]byte, 512), PayloadBase, RP2350)
	require.NoError(t, err)

	rp2350Tag, err := RP2350.Tag()
	require.NoError(t, err)

	for i := range rp2040Stream {
		require.EqualValues(t, rp2350Tag, rp2350Stream[i].Family)
		require.Equal(t, rp2040Stream[i].TargetAddr, rp2350Stream[i].TargetAddr)
		require.Equal(t, rp2040Stream[i].PayloadSize, rp2350Stream[i].PayloadSize)
		require.Equal(t, rp2040Stream[i].Data, rp2350Stream[i].Data)
	}
}

func TestStreamRetag(t *testing.T) {
	stream, err := Encode(make([]byte, 256), PayloadBase, RP2040)
	require.NoError(t, err)

	require.NoError(t, stream.Retag(RP2350))

	tag, err := RP2350.Tag()
	require.NoError(t, err)
	require.EqualValues(t, tag, stream[0].Family)
}

func TestEncodeUnknownFamily(t *testing.T) {
	_, err := Encode([]byte{1}, PayloadBase, Family(99))
	require.Error(t, err)
}

func TestEncodedStreamIsAMultipleOfBlockSizeAndEveryBlockValidates(t *testing.T) {
	stream, err := Encode(make([]byte, 1000), PayloadBase, RP2040)
	require.NoError(t, err)

	raw := stream.Encode()
	require.Zero(t, len(raw)%BlockSize)

	for i := 0; i*BlockSize < len(raw); i++ {
		require.NoError(t, ValidateBlock(raw[i*BlockSize:(i+1)*BlockSize]))
	}
}
