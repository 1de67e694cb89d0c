package pixel

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestCRGB16Image(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewCRGB16Image(size.X, size.Y)
	}, CRGB16Model)
}

func TestRGBImage(t *testing.T) {
	for _, format := range []Format{RGBA8888, BGRA8888, RGBX8888} {
		t.Run(format.String(), func(it *testing.T) {
			testImage(it, func(size image.Point) Image {
				return NewRGBImage(size.X, size.Y, format)
			}, color.RGBAModel)
		})
	}
}

func TestRGBImageChannelOrder(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	testCases := []struct {
		format Format
		want   [4]byte
	}{
		{RGBA8888, [4]byte{0xff, 0x00, 0x00, 0xff}},
		{BGRA8888, [4]byte{0x00, 0x00, 0xff, 0xff}},
		{RGBX8888, [4]byte{0xff, 0x00, 0x00, 0xff}},
	}
	for _, test := range testCases {
		t.Run(test.format.String(), func(it *testing.T) {
			i := NewRGBImage(1, 1, test.format)
			i.Set(0, 0, red)
			if v := [4]byte(i.Pix[:4]); v != test.want {
				it.Errorf("expected red to store as % 02x, got % 02x", test.want, v)
			}
		})
	}
}

func testImage(t *testing.T, f func(image.Point) Image, model color.Model) {
	t.Helper()
	testCases := []image.Point{
		image.Point{},
		image.Pt(1, 1),
		image.Pt(2, 2),
		image.Pt(256, 32),
		image.Pt(256, 64),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := f(test)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						i.Set(x, y, c)
						if v := i.ColorModel().Convert(c); i.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
							return
						}
					}
				}
			})

			it.Run("in-bounds-matching-model", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := model.Convert(testRandomColor())
						i.Set(x, y, c)
						if i.At(x, y) != c {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v", x, y, i.At(x, y), c)
							return
						}
					}
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				for y := -test.Y; y < test.Y*2; y++ {
					for x := -test.X; x < test.X*2; x++ {
						i.Set(x, y, testRandomColor())
						if x < 0 || y < 0 {
							if v := i.At(x, y); v != color.Transparent {
								itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", x, y, v)
								return
							}
						}
					}
				}
			})

			it.Run("fill", func(itt *testing.T) {
				c := testRandomColor()
				i.Fill(c)
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := i.ColorModel().Convert(c); i.At(x, y) != v {
						itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
						return
					}
				}
			})

			it.Run("clear", func(itt *testing.T) {
				i.Clear()
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					r, g, b, _ := i.At(x, y).RGBA()
					if r != 0 || g != 0 || b != 0 {
						itt.Fatalf("pixel (%d,%d) is not black", x, y)
					}
				}
			})
		})
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(255)),
		G: uint8(rand.Intn(255)),
		B: uint8(rand.Intn(255)),
		A: 0xFF,
	}
}
