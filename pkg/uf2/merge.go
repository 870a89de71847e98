// Copyright 2026 the PicoBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uf2

import "github.com/hashicorp/go-multierror"

// Merge concatenates base and payload (base first), renumbers block
// indices and total-block counts across the combined stream, and
// validates that the two streams occupy disjoint, correctly-ordered
// memory ranges before doing so. Every other field of every block —
// flags, target address, family tag, and the whole DataSize-byte data region —
// is preserved verbatim.
//
// Merge does not force a single family tag across base and payload;
// the caller is responsible for supplying streams that already agree
// (cmds/pbfwinspect checks this as a diagnostic, Merge itself never
// re-tags).
func Merge(base, payload Stream) (Stream, error) {
	if err := validateLayout(base, payload); err != nil {
		return nil, err
	}

	merged := make(Stream, 0, len(base)+len(payload))
	merged = append(merged, base...)
	merged = append(merged, payload...)

	n := uint32(len(merged))
	out := make(Stream, len(merged))
	for i, blk := range merged {
		copied := *blk
		copied.BlockNo = uint32(i)
		copied.TotalBlocks = n
		out[i] = &copied
	}

	return out, nil
}

// validateLayout checks that base and payload ranges are disjoint,
// that base starts at or above FlashBase, and that payload starts at
// or after base ends. Multiple range violations are surfaced together
// via go-multierror when more than one condition fails simultaneously.
func validateLayout(base, payload Stream) error {
	baseStart, baseEnd, baseOK := base.MemoryRange()
	payloadStart, payloadEnd, payloadOK := payload.MemoryRange()

	var result *multierror.Error

	if baseOK && payloadOK {
		if rangesOverlap(baseStart, baseEnd, payloadStart, payloadEnd) {
			result = multierror.Append(result, &ErrMergeMemoryOverlap{
				BaseRange:    [2]uint32{baseStart, baseEnd},
				PayloadRange: [2]uint32{payloadStart, payloadEnd},
			})
		}
	}
	if baseOK && baseStart < FlashBase {
		result = multierror.Append(result, &ErrMergeBaseOutsideFlash{BaseStart: baseStart})
	}
	if baseOK && payloadOK && payloadStart < baseEnd {
		result = multierror.Append(result, &ErrMergePayloadBeforeBaseEnd{
			PayloadStart: payloadStart,
			BaseEnd:      baseEnd,
		})
	}

	return result.ErrorOrNil()
}

func rangesOverlap(aStart, aEnd, bStart, bEnd uint32) bool {
	return aStart < bEnd && bStart < aEnd
}
