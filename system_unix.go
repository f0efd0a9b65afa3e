//go:build unix

package errdomain

import "golang.org/x/sys/unix"

func systemMessage(code int32) string {
	if code == 0 {
		return "success"
	}
	if code < 0 {
		return FormatCode(code)
	}
	return unix.Errno(code).Error()
}
