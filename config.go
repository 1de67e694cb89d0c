package minui

import "periph.io/x/conn/v3/gpio"

// Config selects the device and the handful of per-device quirks that were
// historically build-time switches. The zero value is valid and matches a
// well-behaved device.
type Config struct {
	// Device is the framebuffer device node. Empty selects the backend's
	// default node.
	Device string

	// ForceRGB565 distrusts the reported pixel format entirely and treats
	// the device as 16-bit 5/6/5, rewriting the reported descriptor to the
	// canonical 5/6/5 values.
	ForceRGB565 bool

	// SwapRedBlue exchanges the red and blue channel bytes of every pixel
	// while flipping, for panels that scan out with the two swapped.
	// Meaningless for 16-bit formats.
	SwapRedBlue bool

	// NoScreenBlank disables the device-level blank ioctl, for drivers that
	// misbehave on blank requests.
	NoScreenBlank bool

	// BrightnessPath is a sysfs brightness attribute used for blanking
	// instead of the blank ioctl. Honored only together with NoScreenBlank.
	BrightnessPath string

	// MaxBrightness is the largest value the brightness attribute accepts.
	MaxBrightness int

	// Backlight optionally blanks by driving a backlight GPIO pin instead
	// of the blank ioctl.
	Backlight gpio.PinOut
}
