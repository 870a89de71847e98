// Copyright 2026 the PicoBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scramble implements the GameCube boot-ROM LFSR transform
// used to obfuscate a payload before it is framed for IPLBOOT. The
// algorithm is bit-exact and involutory: it has no relationship to any
// standard stream cipher, so it is hand-rolled here on raw register
// state rather than wrapping a library.
package scramble

// prefixLen is the number of zero bytes conceptually prepended to the
// input before running the transform; the corresponding output bytes
// are discarded. This both seeds the LFSR registers and is why the
// transform is involutory only when applied to a fixed input length.
const prefixLen = 0x720

// Scramble returns a new buffer of len(b) bytes containing the
// boot-ROM LFSR transform of b. It is deterministic and involutory:
// Scramble(Scramble(b)) == b for any b, including the empty slice.
func Scramble(b []byte) []byte {
	extended := make([]byte, prefixLen+len(b))
	copy(extended[prefixLen:], b)

	s := newState()
	s.run(extended)

	out := make([]byte, len(b))
	copy(out, extended[prefixLen:])
	return out
}

// state holds the three LFSR registers, the output carry bit, and the
// bit-to-byte accumulator. It is fresh for every call to Scramble; no
// state is ever shared or reused across calls.
type state struct {
	t, u, v uint16
	carry   uint8
	acc     uint8
	nacc    int
}

func newState() *state {
	return &state{
		t:     0x2953,
		u:     0xD9C2,
		v:     0x3FF1,
		carry: 1,
	}
}

// run XORs the LFSR output bitstream into buf in place, advancing the
// register state one bit per iteration and flushing one byte of output
// every 8 bits.
func (s *state) run(buf []byte) {
	it := 0
	for it < len(buf) {
		t0 := s.t & 1
		t1 := (s.t >> 1) & 1
		u0 := s.u & 1
		u1 := (s.u >> 1) & 1
		v0 := s.v & 1

		x := s.carry
		x ^= uint8(t1 ^ v0)
		x ^= uint8(u0 | u1)
		x ^= uint8((t0 ^ u1 ^ v0) & (t0 ^ u0))
		s.carry = x & 1

		if t0 == u0 {
			vLow := s.v & 1
			s.v >>= 1
			if vLow == 1 {
				s.v ^= 0xB3D0
			}
		}
		if t0 == 0 {
			uLow := s.u & 1
			s.u >>= 1
			if uLow == 1 {
				s.u ^= 0xFB10
			}
		}
		tLow := s.t & 1
		s.t >>= 1
		if tLow == 1 {
			s.t ^= 0xA740
		}

		s.nacc = (s.nacc + 1) % 256
		s.acc = s.acc*2 + s.carry
		if s.nacc == 8 {
			buf[it] ^= s.acc
			s.nacc = 0
			s.acc = 0
			it++
		}
	}
}
