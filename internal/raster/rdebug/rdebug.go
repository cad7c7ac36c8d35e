// Package rdebug provides optional trace hooks for diagnosing rendering
// behaviour without committing to a logging dependency the core pipeline
// doesn't otherwise need.
package rdebug

import "fmt"

// Verbose gates every Trace call. Off by default; nothing in this module
// sets it, so a driver that wants diagnostics turns it on itself.
var Verbose = false

// Trace prints a formatted message when Verbose is enabled.
func Trace(format string, args ...any) {
	if !Verbose {
		return
	}
	fmt.Printf(format+"\n", args...)
}
