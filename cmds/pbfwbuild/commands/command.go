// Copyright 2026 the PicoBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands defines the verb interface shared by pbfwbuild's
// subcommands.
package commands

import "github.com/jessevdk/go-flags"

// Command is an implementation of a single pbfwbuild verb.
type Command interface {
	flags.Commander

	// ShortDescription explains what this command does in one line.
	ShortDescription() string

	// LongDescription explains what this verb does, without limitation
	// in amount of lines.
	LongDescription() string
}
