//go:build windows

package errdomain

import "golang.org/x/sys/windows"

func systemMessage(code int32) string {
	if code == 0 {
		return "success"
	}
	return windows.Errno(uint32(code)).Error()
}
