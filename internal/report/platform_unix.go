//go:build linux || darwin || freebsd || netbsd || openbsd

package report

import (
	"golang.org/x/sys/unix"

	"ssec-cli/internal/logger"
)

func platformInfo() PlatformInfo {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		logger.Debug("[DEBUG] uname failed: %v\n", err)
		return PlatformInfo{}
	}
	return PlatformInfo{
		System:  unix.ByteSliceToString(u.Sysname[:]),
		Release: unix.ByteSliceToString(u.Release[:]),
		Version: unix.ByteSliceToString(u.Version[:]),
		Machine: unix.ByteSliceToString(u.Machine[:]),
	}
}
