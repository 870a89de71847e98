// Copyright 2026 the PicoBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/google/subcommands"

	"github.com/picoboot/pbfw/pkg/uf2"
)

type uf2Cmd struct{}

func (*uf2Cmd) Name() string     { return "uf2" }
func (*uf2Cmd) Synopsis() string { return "print a UF2 stream's block table" }
func (*uf2Cmd) Usage() string {
	return "uf2 <path-to-uf2-file>\n"
}

func (*uf2Cmd) SetFlags(*flag.FlagSet) {}

func (*uf2Cmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "a single UF2 file path is required")
		return subcommands.ExitUsageError
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	stream, err := uf2.ParseStream(b)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println(stream.Table().Render())
	fmt.Printf("%d blocks, %s\n", len(stream), humanize.IBytes(uint64(len(b))))

	// The merger never re-tags a mismatched family, so a mixed-tag
	// stream is only ever surfaced here, as a diagnostic, never as a
	// Build-time error.
	if tags := stream.FamilyTags(); len(tags) > 1 {
		fmt.Fprintf(os.Stderr, "warning: stream has %d distinct family tags: %v\n", len(tags), tags)
	}

	if err := stream.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "validation failed: %v\n", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
