package draw

import (
	"image"
	"image/color"
)

// HorizontalLine draws a line between (x,y) and (x+w-1,y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	for i := 0; i < w; i++ {
		dst.Set(x+i, y, c)
	}
}

// VerticalLine draws a line between (x,y) and (x,y+h-1).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	for i := 0; i < h; i++ {
		dst.Set(x, y+i, c)
	}
}

// Rectangle draws the one pixel wide outline of rect.
func Rectangle(dst Image, rect image.Rectangle, c color.Color) {
	HorizontalLine(dst, rect.Min.X, rect.Min.Y, rect.Dx(), c)
	HorizontalLine(dst, rect.Min.X, rect.Max.Y-1, rect.Dx(), c)
	VerticalLine(dst, rect.Min.X, rect.Min.Y, rect.Dy(), c)
	VerticalLine(dst, rect.Max.X-1, rect.Min.Y, rect.Dy(), c)
}

// Box draws a filled rectangle.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		HorizontalLine(dst, rect.Min.X, y, rect.Dx(), c)
	}
}
