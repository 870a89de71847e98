// Copyright 2026 the PicoBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package picoboot orchestrates the firmware-construction pipeline:
// parse and validate a DOL, wrap and frame it for IPLBOOT, encode it
// as a UF2 payload stream, and merge that stream with a base firmware
// image into one flashable UF2 image.
package picoboot

import (
	"fmt"

	"github.com/picoboot/pbfw/pkg/dol"
	"github.com/picoboot/pbfw/pkg/iplboot"
	"github.com/picoboot/pbfw/pkg/picolog"
	"github.com/picoboot/pbfw/pkg/uf2"
)

// Build composes the firmware-construction pipeline end to end:
// parse and validate dolBytes, wrap the entire DOL file for IPLBOOT,
// encode the wrapped payload as a UF2 stream at uf2.PayloadBase
// tagged for family, and merge that stream with baseUF2Bytes. It does
// no file I/O and no retries; its only side effect is a warning logged
// through picolog's DefaultLogger when the base UF2's family tag
// differs from the payload's. The first error
// from any stage is returned unchanged, wrapped only with which stage
// produced it.
func Build(baseUF2Bytes, dolBytes []byte, family uf2.Family) ([]byte, error) {
	header, err := dol.ParseHeader(dolBytes)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := dol.Validate(header, dolBytes); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	// The entire DOL file (including its 256-byte header) is wrapped,
	// not the flattened section payload dol.ExtractSections computes —
	// that extractor exists for diagnostics only.
	wrapped := iplboot.Wrap(dolBytes)
	if err := iplboot.Validate(wrapped); err != nil {
		return nil, fmt.Errorf("wrap: %w", err)
	}

	payloadStream, err := uf2.Encode(wrapped.Bytes(), uf2.PayloadBase, family)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	baseStream, err := uf2.ParseStream(baseUF2Bytes)
	if err != nil {
		return nil, fmt.Errorf("merge: parsing base UF2: %w", err)
	}

	if baseTags := baseStream.FamilyTags(); len(baseTags) == 1 {
		if payloadTag, tagErr := family.Tag(); tagErr == nil && baseTags[0] != payloadTag {
			picolog.Warnf("base UF2 family tag %#x does not match payload family tag %#x for %s",
				baseTags[0], payloadTag, family)
		}
	}

	final, err := uf2.Merge(baseStream, payloadStream)
	if err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}

	return final.Encode(), nil
}
