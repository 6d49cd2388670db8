//go:build windows

package report

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func platformInfo() PlatformInfo {
	v := windows.RtlGetVersion()
	return PlatformInfo{
		System:  "Windows",
		Release: fmt.Sprintf("%d", v.MajorVersion),
		Version: fmt.Sprintf("%d.%d.%d", v.MajorVersion, v.MinorVersion, v.BuildNumber),
	}
}
