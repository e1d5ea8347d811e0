// Released under an MIT license. See LICENSE.

// Package boot provides the procedures that sublisp defines in sublisp.
package boot

import _ "embed" // Blank import required by embed.

//go:embed boot.sl
var script string //nolint:gochecknoglobals

// Script returns the boot script for sublisp.
func Script() string {
	return script
}
