//go:build !unix && !windows

package errdomain

func systemMessage(code int32) string {
	if code == 0 {
		return "success"
	}
	return FormatCode(code)
}
