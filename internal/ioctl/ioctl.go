// Package ioctl dispatches ioctl system calls.
package ioctl

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Do executes an ioctl with a pointer argument.
//
// The caller must keep the value referenced by ptr alive for the duration of
// the call.
func Do(fd, cmd uintptr, ptr unsafe.Pointer) error {
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, cmd, uintptr(ptr)); errno != 0 {
		return &os.SyscallError{
			Syscall: "SYS_IOCTL",
			Err:     errno,
		}
	}
	return nil
}

// Call executes an ioctl with a plain integer argument.
func Call(fd, cmd, arg uintptr) error {
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, cmd, arg); errno != 0 {
		return &os.SyscallError{
			Syscall: "SYS_IOCTL",
			Err:     errno,
		}
	}
	return nil
}
