// Package backlight switches display backlight power for panels that cannot
// be blanked through their display driver.
package backlight

import (
	"fmt"
	"os"

	"periph.io/x/conn/v3/gpio"
)

// Control turns a backlight fully off or back on.
type Control interface {
	// Off turns the backlight off.
	Off() error

	// On restores the backlight to its working level.
	On() error
}

// Sysfs drives a sysfs brightness attribute, for example
// /sys/class/leds/lcd-backlight/brightness.
//
// On restores brightness to half of Max rather than full, matching the
// recovery's fixed mid-level.
type Sysfs struct {
	// Path of the brightness attribute.
	Path string

	// Max is the largest value the attribute accepts.
	Max int
}

func (s Sysfs) Off() error { return s.set(0) }

func (s Sysfs) On() error { return s.set(s.Max / 2) }

func (s Sysfs) set(value int) error {
	f, err := os.OpenFile(s.Path, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("backlight: cannot open %s: %w", s.Path, err)
	}
	defer f.Close()

	// Drivers expect a short decimal write; three zero-padded digits keep
	// the write length constant.
	if _, err = f.Write([]byte(fmt.Sprintf("%03d", value)[:3])); err != nil {
		return fmt.Errorf("backlight: write %s: %w", s.Path, err)
	}
	return nil
}

// Pin drives a backlight GPIO pin.
type Pin struct {
	Out gpio.PinOut
}

func (p Pin) Off() error { return p.Out.Out(gpio.Low) }

func (p Pin) On() error { return p.Out.Out(gpio.High) }

// Interface checks.
var (
	_ Control = Sysfs{}
	_ Control = Pin{}
)
