package main

import "embed"

// Default definitions compiled into the binary. Override with -defs.
//
//go:embed defs
var defaultDefs embed.FS
