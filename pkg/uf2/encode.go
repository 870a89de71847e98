// Copyright 2026 the PicoBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uf2

// Encode partitions b into consecutive chunks of at most
// MaxPayloadSize bytes and returns one UF2 block per chunk, targeting
// consecutive addresses starting at baseAddr and tagged with family.
func Encode(b []byte, baseAddr uint32, family Family) (Stream, error) {
	tag, err := family.Tag()
	if err != nil {
		return nil, err
	}

	n := (len(b) + MaxPayloadSize - 1) / MaxPayloadSize
	stream := make(Stream, 0, n)
	for i := 0; i < n; i++ {
		start := i * MaxPayloadSize
		end := start + MaxPayloadSize
		if end > len(b) {
			end = len(b)
		}
		chunk := b[start:end]

		blk := &Block{
			Flags:       FlagFamilyIDPresent,
			TargetAddr:  baseAddr + uint32(start),
			PayloadSize: uint32(len(chunk)),
			BlockNo:     uint32(i),
			TotalBlocks: uint32(n),
			Family:      tag,
		}
		copy(blk.Data[:], chunk)
		stream = append(stream, blk)
	}

	return stream, nil
}

// Retag overwrites the family tag of every block in s to match family.
// This is the only supported mechanism for producing output for a
// family other than the one a block was originally encoded with — for
// example when an upstream encoder only knows how to tag RP2040 blocks
// and RP2350 output is needed.
func (s Stream) Retag(family Family) error {
	tag, err := family.Tag()
	if err != nil {
		return err
	}
	for _, blk := range s {
		blk.Family = tag
	}
	return nil
}
