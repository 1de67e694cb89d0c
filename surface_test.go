package minui

import (
	"image/color"
	"testing"

	"github.com/zhuowei/Team-Win-Recovery-Project/pixel"
)

func TestSurfaceImage(t *testing.T) {
	testCases := []struct {
		format pixel.Format
		// Bytes stored at pixel (1, 0) after painting it opaque red.
		want []byte
	}{
		{pixel.RGB565, []byte{0x00, 0xf8}},
		{pixel.RGBA8888, []byte{0xff, 0x00, 0x00, 0xff}},
		{pixel.BGRA8888, []byte{0x00, 0x00, 0xff, 0xff}},
		{pixel.RGBX8888, []byte{0xff, 0x00, 0x00, 0xff}},
	}
	for _, test := range testCases {
		t.Run(test.format.String(), func(it *testing.T) {
			bpp := test.format.BytesPerPixel()
			// Row stride wider than the pixel row, as fbdev hardware often
			// reports.
			stride := 4*bpp + 8
			s := &Surface{
				Width:      4,
				Height:     2,
				RowBytes:   stride,
				PixelBytes: bpp,
				Format:     test.format,
				Data:       make([]byte, 2*stride),
			}

			img, err := s.Image()
			if err != nil {
				it.Fatal(err)
			}
			img.Set(1, 0, color.RGBA{R: 0xff, A: 0xff})

			if got := s.Data[bpp : 2*bpp]; string(got) != string(test.want) {
				it.Errorf("expected bytes % 02x at pixel (1,0), got % 02x", test.want, got)
			}
			r, _, _, _ := img.At(1, 0).RGBA()
			if r < 0xf000 {
				it.Errorf("expected to read red back, got %#04x", r)
			}
		})
	}
}

func TestSurfaceImageUnknownFormat(t *testing.T) {
	s := &Surface{Width: 1, Height: 1, RowBytes: 4, PixelBytes: 4, Data: make([]byte, 4)}
	if _, err := s.Image(); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestSurfaceFrameBytes(t *testing.T) {
	s := &Surface{Width: 10, Height: 4, RowBytes: 64}
	if v := s.FrameBytes(); v != 256 {
		t.Errorf("expected 256 frame bytes, got %d", v)
	}
}
