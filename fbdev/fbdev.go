// Package fbdev implements a display backend on the Linux framebuffer
// device (fbdev).
//
// The backend owns the memory-mapped scanout buffer and mediates access to
// it through a private drawing surface: the caller paints into the drawing
// surface and Flip moves the finished frame onto the device. When the
// mapping is large enough to hold two frames the backend page-flips between
// two scanout slots, otherwise each Flip copies straight into the single
// visible frame.
package fbdev

import (
	"log"
	"os"

	minui "github.com/zhuowei/Team-Win-Recovery-Project"
	"github.com/zhuowei/Team-Win-Recovery-Project/backlight"
	"github.com/zhuowei/Team-Win-Recovery-Project/pixel"
)

// DefaultDevice is the framebuffer node used when the configuration names
// none.
const DefaultDevice = "/dev/graphics/fb0"

// Device is a single display session on a framebuffer device.
//
// At most one session may be open on a device at a time. Device is not safe
// for concurrent use; every operation runs to completion on the calling
// goroutine.
type Device struct {
	conf minui.Config

	f   *os.File
	fix fixScreenInfo
	vi  varScreenInfo
	mem []byte

	front     [2]minui.Surface
	draw      minui.Surface
	double    bool
	displayed int

	// backlight is the blank mechanism when the configuration replaces the
	// blank ioctl; nil selects the ioctl (or nothing with NoScreenBlank).
	backlight backlight.Control
}

var _ minui.Backend = (*Device)(nil)

// Open returns a backend for the framebuffer device described by conf. The
// device is not touched until Init.
func Open(conf *minui.Config) *Device {
	d := &Device{}
	if conf != nil {
		d.conf = *conf
	}
	if d.conf.Device == "" {
		d.conf.Device = DefaultDevice
	}
	// Exactly one blank mechanism per configuration, decided once here: a
	// sysfs brightness path wins, then a backlight GPIO pin, then the
	// device blank ioctl unless NoScreenBlank disables it.
	switch {
	case d.conf.NoScreenBlank && d.conf.BrightnessPath != "":
		d.backlight = backlight.Sysfs{Path: d.conf.BrightnessPath, Max: d.conf.MaxBrightness}
	case d.conf.Backlight != nil:
		d.backlight = backlight.Pin{Out: d.conf.Backlight}
	}
	return d
}

// Init opens the device, negotiates the pixel format and buffering mode,
// and returns the drawing surface. It must be called exactly once before
// any other operation; call Close before reusing the device.
func (d *Device) Init() (*minui.Surface, error) {
	if err := d.probe(); err != nil {
		return nil, err
	}

	if minui.Debug() {
		log.Printf("fbdev: %s reports (possibly inaccurate): bpp=%d red=%d/%d green=%d/%d blue=%d/%d",
			d.conf.Device, d.vi.BitsPerPixel,
			d.vi.Red.Offset, d.vi.Red.Length,
			d.vi.Green.Offset, d.vi.Green.Length,
			d.vi.Blue.Offset, d.vi.Blue.Length)
	}

	d.setup()
	d.setDisplayedFramebuffer(0)

	buffering := "single"
	if d.double {
		buffering = "double"
	}
	log.Printf("fbdev: %s %dx%d %s, %s buffered",
		d.conf.Device, d.draw.Width, d.draw.Height, d.draw.Format, buffering)

	// Power-cycle the panel so the first frame comes up on a lit display.
	_ = d.Blank(true)
	_ = d.Blank(false)

	return &d.draw, nil
}

// setup interprets the screen descriptors read by probe and builds the
// front buffer set and the drawing surface.
func (d *Device) setup() {
	if d.conf.ForceRGB565 {
		forceRGB565(&d.vi, &d.fix)
	}

	stride := int(d.fix.LineLength)
	frame := int(d.vi.Yres) * stride

	d.front[0] = minui.Surface{
		Width:      int(d.vi.Xres),
		Height:     int(d.vi.Yres),
		RowBytes:   stride,
		PixelBytes: int(d.vi.BitsPerPixel) / 8,
		Format:     detectFormat(&d.vi),
		Data:       d.mem[:frame:frame],
	}

	// Double buffering needs room for a second whole frame in the mapping.
	if int(d.vi.Yres)*stride*2 <= int(d.fix.SmemLen) {
		d.double = true
		d.front[1] = d.front[0]
		d.front[1].Data = d.mem[frame : 2*frame : 2*frame]
	} else {
		d.double = false
	}

	// Drawing directly to the framebuffer is several times slower than
	// painting into ordinary memory and copying the finished frame over.
	d.draw = d.front[0]
	d.draw.Data = make([]byte, frame)
	d.displayed = 0
}

// setDisplayedFramebuffer makes scanout slot n visible. It is a no-op
// unless double buffering is active and n is a valid slot.
func (d *Device) setDisplayedFramebuffer(n int) {
	if n < 0 || n > 1 || !d.double {
		return
	}
	d.vi.YresVirtual = uint32(d.front[0].Height * 2)
	d.vi.Yoffset = uint32(n * d.front[0].Height)
	d.vi.BitsPerPixel = uint32(d.front[0].PixelBytes * 8)
	if err := d.putVScreenInfo(); err != nil {
		log.Printf("fbdev: active fb swap failed: %v", err)
	}
	// The slot is recorded even when the ioctl failed: retries are not
	// supported, and stale bookkeeping would desynchronize later flips.
	d.displayed = n
}

// Flip pushes the drawing surface to the display and returns the same
// drawing surface for the next frame.
//
// Under double buffering the frame is copied into the slot that is not
// visible and the device is flipped to it afterwards, so a partially copied
// frame is never scanned out.
func (d *Device) Flip() (*minui.Surface, error) {
	if d.conf.SwapRedBlue {
		swapRedBlue(d.draw.Data)
	}
	if d.double {
		copy(d.front[1-d.displayed].Data, d.draw.Data)
		d.setDisplayedFramebuffer(1 - d.displayed)
	} else {
		copy(d.front[0].Data, d.draw.Data)
	}
	return &d.draw, nil
}

// swapRedBlue exchanges bytes 0 and 2 of every 4-byte pixel in place, for
// panels that scan out with red and blue swapped. It is its own inverse.
func swapRedBlue(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+2] = pix[i+2], pix[i]
	}
}

// Blank turns display output off or on, through the mechanism selected
// in Open.
func (d *Device) Blank(off bool) error {
	if d.backlight != nil {
		if off {
			return d.backlight.Off()
		}
		return d.backlight.On()
	}
	if d.conf.NoScreenBlank {
		return nil
	}
	return d.ioctlBlank(off)
}

// Close releases the mapping, the device handle and the drawing surface, in
// reverse order of acquisition. Only valid after a successful Init.
func (d *Device) Close() error {
	err := d.unmap()
	d.mem = nil
	d.front[0].Data = nil
	d.front[1].Data = nil
	d.draw.Data = nil
	d.double = false
	d.displayed = 0

	if d.f != nil {
		if cerr := d.f.Close(); err == nil {
			err = cerr
		}
		d.f = nil
	}
	return err
}

// Format reports the negotiated pixel format. Valid after Init.
func (d *Device) Format() pixel.Format {
	return d.front[0].Format
}
