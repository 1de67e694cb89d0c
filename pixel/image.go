package pixel

import (
	"encoding/binary"
	"image"
	"image/color"

	"github.com/zhuowei/Team-Win-Recovery-Project/draw"
)

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values and is the container used by the image
// formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

func makeBuffer(w, h, stride, size int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

// CRGB16Image is a 16-bits per pixel 5-6-5-bit RGB image.
type CRGB16Image struct {
	Buffer
	Order binary.ByteOrder
}

func NewCRGB16Image(w, h int) *CRGB16Image {
	return &CRGB16Image{
		Buffer: makeBuffer(w, h, w*2, w*2*h),
		Order:  binary.LittleEndian,
	}
}

func (p *CRGB16Image) ColorModel() color.Model {
	return CRGB16Model
}

func (p *CRGB16Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	v := p.Order.Uint16(p.Pix[x*2+y*p.Stride:])
	return CRGB16{v}
}

func (p *CRGB16Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	v := crgb16Model(c).(CRGB16).V
	p.Order.PutUint16(p.Pix[x*2+y*p.Stride:], v)
}

func (p *CRGB16Image) Fill(c color.Color) {
	value := crgb16Model(c).(CRGB16).V
	bytes := make([]byte, 2)
	p.Order.PutUint16(bytes, value)
	for i, l := 0, len(p.Pix); i < l; i += 2 {
		copy(p.Pix[i:], bytes)
	}
}

// RGBImage is a 32-bits per pixel image whose in-memory channel order
// follows its Format tag, one of RGBA8888, BGRA8888 or RGBX8888.
type RGBImage struct {
	Buffer
	Format Format
}

func NewRGBImage(w, h int, f Format) *RGBImage {
	return &RGBImage{
		Buffer: makeBuffer(w, h, w*4, w*4*h),
		Format: f,
	}
}

func (p *RGBImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *RGBImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	s := p.Pix[x*4+y*p.Stride:]
	switch p.Format {
	case BGRA8888:
		return color.RGBA{R: s[2], G: s[1], B: s[0], A: s[3]}
	case RGBX8888:
		return color.RGBA{R: s[0], G: s[1], B: s[2], A: 0xff}
	default: // RGBA8888
		return color.RGBA{R: s[0], G: s[1], B: s[2], A: s[3]}
	}
}

func (p *RGBImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	v := color.RGBAModel.Convert(c).(color.RGBA)
	s := p.Pix[x*4+y*p.Stride:]
	switch p.Format {
	case BGRA8888:
		s[0], s[1], s[2], s[3] = v.B, v.G, v.R, v.A
	case RGBX8888:
		s[0], s[1], s[2], s[3] = v.R, v.G, v.B, 0xff
	default: // RGBA8888
		s[0], s[1], s[2], s[3] = v.R, v.G, v.B, v.A
	}
}

func (p *RGBImage) Fill(c color.Color) {
	if p.Rect.Empty() {
		return
	}
	p.Set(p.Rect.Min.X, p.Rect.Min.Y, c)
	first := p.Pix[p.Rect.Min.X*4+p.Rect.Min.Y*p.Stride:][:4]
	for i, l := 0, len(p.Pix); i < l; i += 4 {
		copy(p.Pix[i:], first)
	}
}

// Interface checks.
var (
	_ Image = (*CRGB16Image)(nil)
	_ Image = (*RGBImage)(nil)
)
