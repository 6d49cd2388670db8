package report

import (
	"fmt"
	"io"
	"runtime"
)

// PlatformInfo describes the host the CLI runs on.
type PlatformInfo struct {
	System  string // OS name, e.g. Linux, Darwin, Windows
	Release string // kernel or OS release
	Version string // detailed OS version string
	Machine string // hardware architecture
	Runtime string // Go runtime the binary was built with
}

// CollectPlatform gathers PlatformInfo from the running system.
// Fields the OS does not expose fall back to the values Go was built for.
func CollectPlatform() PlatformInfo {
	info := platformInfo()
	if info.System == "" {
		info.System = runtime.GOOS
	}
	if info.Machine == "" {
		info.Machine = runtime.GOARCH
	}
	info.Runtime = fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return info
}

// Platform writes the platform section. It never fails.
func Platform(w io.Writer, info PlatformInfo) {
	_, _ = bold.Fprintln(w, "## Platform")
	fenced(w, fmt.Sprintf(
		"Operating System: %s\nOS Version: %s\nOS Version (detailed): %s\nArchitecture: %s\nGo runtime: %s",
		info.System, info.Release, info.Version, info.Machine, info.Runtime,
	))
}
