package pixel

// Format tags the in-memory pixel layout of a surface.
//
// The names describe byte order as stored, lowest address first, which is
// how the scanout hardware reads them. The tag is what downstream consumers
// trust; it intentionally wins over whatever the device descriptor claims.
type Format uint8

const (
	// Unknown is the zero value; no surface with a live buffer carries it.
	Unknown Format = iota

	// RGB565 is a 16-bit format with 5/6/5-bit channels.
	RGB565

	// RGBA8888 stores 8-bit channels as R, G, B, A.
	RGBA8888

	// BGRA8888 stores 8-bit channels as B, G, R, A.
	BGRA8888

	// RGBX8888 stores 8-bit channels as R, G, B with a meaningless pad byte.
	RGBX8888
)

func (f Format) String() string {
	switch f {
	case RGB565:
		return "RGB_565"
	case RGBA8888:
		return "RGBA_8888"
	case BGRA8888:
		return "BGRA_8888"
	case RGBX8888:
		return "RGBX_8888"
	default:
		return "unknown"
	}
}

// BytesPerPixel is the storage size of one pixel, or 0 for Unknown.
func (f Format) BytesPerPixel() int {
	switch f {
	case RGB565:
		return 2
	case RGBA8888, BGRA8888, RGBX8888:
		return 4
	default:
		return 0
	}
}
