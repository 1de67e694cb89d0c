package pixel

import (
	"image/color"
	"testing"
)

func TestCRGB16(t *testing.T) {
	testCases := []struct {
		in   color.RGBA
		want CRGB16
	}{
		{color.RGBA{}, CRGB16{0x0000}},
		{color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, CRGB16{0xffff}},
		{color.RGBA{R: 0xff, A: 0xff}, CRGB16{0xf800}},
		{color.RGBA{G: 0xff, A: 0xff}, CRGB16{0x07e0}},
		{color.RGBA{B: 0xff, A: 0xff}, CRGB16{0x001f}},
	}
	for _, test := range testCases {
		t.Run("", func(it *testing.T) {
			if v := crgb16Model(test.in); v != test.want {
				it.Errorf("expected %v to convert to %#04x, got %#+v", test.in, test.want.V, v)
			}
		})
	}
}

func TestCRGB16RoundTrip(t *testing.T) {
	for v := 0; v < 0x10000; v += 0x101 {
		c := CRGB16{V: uint16(v)}
		if got := crgb16Model(c); got != c {
			t.Fatalf("expected %#04x to convert to itself, got %#+v", v, got)
		}
	}
}

func TestFormat(t *testing.T) {
	testCases := []struct {
		format Format
		name   string
		bytes  int
	}{
		{Unknown, "unknown", 0},
		{RGB565, "RGB_565", 2},
		{RGBA8888, "RGBA_8888", 4},
		{BGRA8888, "BGRA_8888", 4},
		{RGBX8888, "RGBX_8888", 4},
	}
	for _, test := range testCases {
		t.Run(test.name, func(it *testing.T) {
			if v := test.format.String(); v != test.name {
				it.Errorf("expected name %q, got %q", test.name, v)
			}
			if v := test.format.BytesPerPixel(); v != test.bytes {
				it.Errorf("expected %d bytes per pixel, got %d", test.bytes, v)
			}
		})
	}
}
