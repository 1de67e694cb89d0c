package fbdev

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/zhuowei/Team-Win-Recovery-Project/internal/ioctl"
)

// probe opens the device, reads both screen descriptors and maps the
// scanout memory. Every failure path releases whatever was acquired before
// returning.
func (d *Device) probe() error {
	f, err := os.OpenFile(d.conf.Device, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return fmt.Errorf("fbdev: cannot open %s: %w", d.conf.Device, err)
	}

	if err = ioctl.Do(f.Fd(), fbioGetFScreenInfo, unsafe.Pointer(&d.fix)); err != nil {
		_ = f.Close()
		return fmt.Errorf("fbdev: FBIOGET_FSCREENINFO %s: %w", d.conf.Device, err)
	}
	if err = ioctl.Do(f.Fd(), fbioGetVScreenInfo, unsafe.Pointer(&d.vi)); err != nil {
		_ = f.Close()
		return fmt.Errorf("fbdev: FBIOGET_VSCREENINFO %s: %w", d.conf.Device, err)
	}

	mem, err := unix.Mmap(int(f.Fd()), 0, int(d.fix.SmemLen), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("fbdev: mmap %d bytes of %s: %w", d.fix.SmemLen, d.conf.Device, err)
	}

	// The mapping exposes whatever the hardware was scanning out before we
	// took over; clear it so no stale frame shows up.
	clear(mem)

	d.f = f
	d.mem = mem
	return nil
}

// putVScreenInfo commits the current variable descriptor, which is how the
// visible scanout slot is switched.
func (d *Device) putVScreenInfo() error {
	return ioctl.Do(d.f.Fd(), fbioPutVScreenInfo, unsafe.Pointer(&d.vi))
}

func (d *Device) ioctlBlank(off bool) error {
	arg := uintptr(fbBlankUnblank)
	if off {
		arg = fbBlankPowerdown
	}
	return ioctl.Call(d.f.Fd(), fbioBlank, arg)
}

func (d *Device) unmap() error {
	if d.mem == nil {
		return nil
	}
	return unix.Munmap(d.mem)
}
