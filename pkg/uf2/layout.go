// Copyright 2026 the PicoBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uf2

// Memory layout constants shared by the encoder and the merger. These
// describe where the base firmware and the wrapped payload live in
// flash; they are bit-exact and must not drift from the runtime they
// describe.
const (
	// FlashBase is the lowest address the base firmware may occupy.
	FlashBase = 0x10000000
	// FlashSize is the size of the base firmware's flash region.
	FlashSize = 0x00080000
	// PayloadBase is the fixed flash offset the base firmware's runtime
	// expects to find the wrapped payload at.
	PayloadBase = 0x10080000
	// PayloadRegionSize is the size of the region reserved for the
	// wrapped payload.
	PayloadRegionSize = 0x00180000
)
