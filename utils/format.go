package utils

import (
	"fmt"

	_ "unsafe"
)

func _appendf(buf []byte, format string, v ...any) []byte {
	return fmt.Appendf(buf, format, v...)
}

func _sprintf(format string, v ...any) string {
	return fmt.Sprintf(format, v...)
}

//go:noescape
//go:linkname AppendfNoEscape github.com/universalhash/uhash/utils._appendf
func AppendfNoEscape(buf []byte, format string, v ...any) []byte

//go:noescape
//go:linkname SprintfNoEscape github.com/universalhash/uhash/utils._sprintf
func SprintfNoEscape(format string, v ...any) string
