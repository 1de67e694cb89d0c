package minui

import (
	"encoding/binary"
	"fmt"
	"image"

	"github.com/zhuowei/Team-Win-Recovery-Project/pixel"
)

// Surface describes one buffer of display memory.
//
// Data is either a view into the device mapping (front buffers, owned by the
// backend) or a private heap allocation (the drawing surface). A Surface
// must not outlive the memory it refers to. Invariant: RowBytes >=
// Width*PixelBytes, and Data is non-nil for the surface's lifetime.
type Surface struct {
	Width      int
	Height     int
	RowBytes   int
	PixelBytes int
	Format     pixel.Format
	Data       []byte
}

// FrameBytes is the size of one full frame in bytes.
func (s *Surface) FrameBytes() int {
	return s.Height * s.RowBytes
}

// Image returns a drawable view over the surface memory. The view shares
// Data, so painting through it mutates the surface directly.
func (s *Surface) Image() (pixel.Image, error) {
	buf := pixel.Buffer{
		Rect:   image.Rect(0, 0, s.Width, s.Height),
		Pix:    s.Data,
		Stride: s.RowBytes,
	}
	switch s.Format {
	case pixel.RGB565:
		// fbdev scanout memory is little endian on all supported targets.
		return &pixel.CRGB16Image{Buffer: buf, Order: binary.LittleEndian}, nil
	case pixel.RGBA8888, pixel.BGRA8888, pixel.RGBX8888:
		return &pixel.RGBImage{Buffer: buf, Format: s.Format}, nil
	}
	return nil, fmt.Errorf("minui: no image view for format %s", s.Format)
}
