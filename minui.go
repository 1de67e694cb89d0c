// Package minui contains display backends for the recovery UI.
package minui

import "os"

var debug bool

func init() {
	debug = os.Getenv("MINUI_DEBUG") != ""
}

// Debug reports whether verbose backend logging is enabled.
func Debug() bool {
	return debug
}

// Backend drives a physical display.
//
// The lifecycle is strict: Init exactly once, then any number of paint/Flip
// cycles, then Close. Blank may be called at any point between Init and
// Close. Backends are single sessions; opening a second session on the same
// device is not supported.
type Backend interface {
	// Init opens the display device and returns the drawing surface the
	// caller paints into.
	Init() (*Surface, error)

	// Flip pushes the current drawing surface contents to the display and
	// returns the (unchanged) drawing surface for the next frame.
	Flip() (*Surface, error)

	// Blank toggles display output or backlight power.
	Blank(off bool) error

	// Close releases the device and all buffers. Only valid after a
	// successful Init.
	Close() error
}
