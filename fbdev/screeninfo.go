package fbdev

// From <linux/fb.h>.
const (
	fbioGetVScreenInfo = 0x4600
	fbioPutVScreenInfo = 0x4601
	fbioGetFScreenInfo = 0x4602
	fbioBlank          = 0x4611

	fbBlankUnblank   = 0
	fbBlankPowerdown = 4
)

// fixScreenInfo mirrors struct fb_fix_screeninfo.
type fixScreenInfo struct {
	ID         [16]byte  // Identification string eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved Planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Reserved   [3]uint16 // Reserved for future compatibility
}

// bitField mirrors struct fb_bitfield, describing one color channel.
type bitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// varScreenInfo mirrors struct fb_var_screeninfo, the changeable
// information about a frame buffer device and a specific video mode.
type varScreenInfo struct {
	Xres                     uint32
	Yres                     uint32
	XresVirtual              uint32
	YresVirtual              uint32
	Xoffset                  uint32
	Yoffset                  uint32
	BitsPerPixel             uint32
	Grayscale                uint32
	Red, Green, Blue, Transp bitField
	Nonstd                   uint32
	Activate                 uint32
	Height                   uint32
	Width                    uint32
	AccelFlags               uint32
	Pixclock                 uint32
	LeftMargin               uint32
	RightMargin              uint32
	UpperMargin              uint32
	LowerMargin              uint32
	HsyncLen                 uint32
	VsyncLen                 uint32
	Sync                     uint32
	Vmode                    uint32
	Rotate                   uint32
	Colorspace               uint32
	Reserved                 [4]uint32
}
