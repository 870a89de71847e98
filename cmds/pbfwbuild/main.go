// Copyright 2026 the PicoBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// pbfwbuild merges a DOL executable into a base UF2 firmware image for
// a GameCube boot-ROM mod-chip.
//
// Synopsis:
//
//	pbfwbuild build -b BASE.uf2 -d GAME.dol -f rp2040 -o OUT.uf2
package main

import (
	"log"

	"github.com/jessevdk/go-flags"

	"github.com/picoboot/pbfw/cmds/pbfwbuild/commands"
)

var knownCommands = map[string]commands.Command{
	"build": &commands.BuildCommand{},
}

func main() {
	parser := flags.NewParser(nil, flags.Default)
	for name, cmd := range knownCommands {
		if _, err := parser.AddCommand(name, cmd.ShortDescription(), cmd.LongDescription(), cmd); err != nil {
			panic(err)
		}
	}

	if _, err := parser.Parse(); err != nil {
		log.Fatal(err)
	}
}
