package fbdev

import "github.com/zhuowei/Team-Win-Recovery-Project/pixel"

// detectFormat classifies the reported pixel layout into the closed format
// set.
//
// The order of the checks matters and must not change: several real devices
// report misleading channel descriptors, and this exact sequence is the one
// known to pick a layout that renders correctly on them. It is a deliberate
// best-effort classification, not a faithful decode of the descriptor.
func detectFormat(vi *varScreenInfo) pixel.Format {
	switch {
	case vi.BitsPerPixel == 16:
		return pixel.RGB565
	case vi.Red.Offset == 8:
		return pixel.BGRA8888
	case vi.Red.Offset == 0:
		return pixel.RGBA8888
	case vi.Red.Offset == 24:
		return pixel.RGBX8888
	case vi.Red.Length == 8:
		// No layout matched; an 8-bit red channel suggests a 32-bit mode.
		return pixel.RGBX8888
	default:
		return pixel.RGB565
	}
}

// forceRGB565 rewrites the reported descriptor to the canonical 5/6/5
// values, for devices whose descriptor cannot be trusted at all. Downstream
// consumers read these fields, so they must stay consistent with the forced
// format.
func forceRGB565(vi *varScreenInfo, fix *fixScreenInfo) {
	vi.Blue.Offset = 0
	vi.Green.Offset = 5
	vi.Red.Offset = 11
	vi.Blue.Length = 5
	vi.Green.Length = 6
	vi.Red.Length = 5
	vi.Blue.MsbRight = 0
	vi.Green.MsbRight = 0
	vi.Red.MsbRight = 0
	vi.Transp.Offset = 0
	vi.Transp.Length = 0
	vi.BitsPerPixel = 16
	vi.XresVirtual = fix.LineLength / 2
}
