//go:build !linux

package fbdev

import "errors"

// ErrNotSupported is returned on platforms without fbdev support.
var ErrNotSupported = errors.New("fbdev: not supported")

func (d *Device) probe() error {
	return ErrNotSupported
}

func (d *Device) putVScreenInfo() error {
	return ErrNotSupported
}

func (d *Device) ioctlBlank(bool) error {
	return ErrNotSupported
}

func (d *Device) unmap() error {
	return nil
}
