// Copyright 2026 the PicoBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scramble

import (
	"bytes"
	"testing"
)

func TestScrambleEmpty(t *testing.T) {
	out := Scramble(nil)
	if len(out) != 0 {
		t.Fatalf("scramble of empty input produced %d bytes", len(out))
	}
}

func TestScrambleLengthPreserved(t *testing.T) {
	for _, n := range []int{0, 1, 3, 4, 100, 4096} {
		in := make([]byte, n)
		for i := range in {
			in[i] = byte(i)
		}
		out := Scramble(in)
		if len(out) != n {
			t.Errorf("len(Scramble(%d bytes)) = %d, want %d", n, len(out), n)
		}
	}
}

func TestScrambleInvolution(t *testing.T) {
	cases := [][]byte{
		{},
		{0, 1, 2, 3},
		bytes.Repeat([]byte{0xAA, 0x55}, 200),
	}
	for _, in := range cases {
		scrambled := Scramble(in)
		back := Scramble(scrambled)
		if !bytes.Equal(back, in) {
			t.Errorf("Scramble(Scramble(%v)) = %v, want %v", in, back, in)
		}
	}
}

func TestScrambleDeterministic(t *testing.T) {
	in := []byte{1, 2, 3, 4, 5}
	a := Scramble(in)
	b := Scramble(in)
	if !bytes.Equal(a, b) {
		t.Fatalf("Scramble is not deterministic: %v != %v", a, b)
	}
}
