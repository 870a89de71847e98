// Copyright 2026 the PicoBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/picoboot/pbfw/pkg/dol"
)

type dolCmd struct {
	validate bool
}

func (*dolCmd) Name() string     { return "dol" }
func (*dolCmd) Synopsis() string { return "print a DOL's section table" }
func (*dolCmd) Usage() string {
	return "dol [-validate] <path-to-dol-file>\n"
}

func (c *dolCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.validate, "validate", false, "also run structural validation and report violations")
}

func (c *dolCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "a single DOL file path is required")
		return subcommands.ExitUsageError
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	header, err := dol.ParseHeader(b)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	sections := dol.ExtractSections(header, b)
	fmt.Println(sections.Table().Render())

	if c.validate {
		if err := dol.Validate(header, b); err != nil {
			fmt.Fprintf(os.Stderr, "validation failed: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println("validation: ok")
	}

	return subcommands.ExitSuccess
}
