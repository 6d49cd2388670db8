//go:build !(linux || darwin || freebsd || netbsd || openbsd || windows)

package report

func platformInfo() PlatformInfo { return PlatformInfo{} }
