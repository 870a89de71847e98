// Copyright 2026 the PicoBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/picoboot/pbfw/pkg/picoboot"
	"github.com/picoboot/pbfw/pkg/uf2"
)

// BuildCommand implements `pbfwbuild build`.
type BuildCommand struct {
	BasePath   string `short:"b" long:"base" description:"path to the base UF2 firmware image" required:"true"`
	DolPath    string `short:"d" long:"dol" description:"path to the GameCube DOL executable" required:"true"`
	OutPath    string `short:"o" long:"out" description:"path to write the merged UF2 image to" required:"true"`
	FamilyName string `short:"f" long:"family" description:"target microcontroller family (rp2040, rp2350)" required:"true"`
}

// ShortDescription explains what this command does in one line.
func (cmd *BuildCommand) ShortDescription() string {
	return "merge a DOL into a base UF2 firmware image"
}

// LongDescription explains what this verb does, without limitation in
// amount of lines.
func (cmd *BuildCommand) LongDescription() string {
	return "Parses and validates a GameCube DOL, scrambles and frames it for IPLBOOT, " +
		"encodes it as a UF2 payload, and merges it with a base UF2 firmware image."
}

// Execute runs the build.
func (cmd *BuildCommand) Execute(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("unexpected extra arguments: %v", args)
	}

	family, err := parseFamily(cmd.FamilyName)
	if err != nil {
		return err
	}

	base, err := os.ReadFile(cmd.BasePath)
	if err != nil {
		return fmt.Errorf("unable to read base UF2 image %q: %w", cmd.BasePath, err)
	}

	dolBytes, err := os.ReadFile(cmd.DolPath)
	if err != nil {
		return fmt.Errorf("unable to read DOL %q: %w", cmd.DolPath, err)
	}

	out, err := picoboot.Build(base, dolBytes, family)
	if err != nil {
		return fmt.Errorf("unable to build firmware image: %w", err)
	}

	if err := os.WriteFile(cmd.OutPath, out, 0o644); err != nil {
		return fmt.Errorf("unable to write output image %q: %w", cmd.OutPath, err)
	}

	fmt.Printf("wrote %s (%s)\n", cmd.OutPath, humanize.IBytes(uint64(len(out))))
	return nil
}

func parseFamily(name string) (uf2.Family, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rp2040":
		return uf2.RP2040, nil
	case "rp2350":
		return uf2.RP2350, nil
	default:
		return 0, fmt.Errorf("unknown family %q, want rp2040 or rp2350", name)
	}
}
