package buffer

import (
	"bytes"
	"strings"
)

// LineEnding is the newline convention of a file on disk. The buffer itself
// always stores "\n".
type LineEnding int

const (
	LF LineEnding = iota
	CRLF
)

func (le LineEnding) String() string {
	if le == CRLF {
		return "CRLF"
	}
	return "LF"
}

// DetectLineEnding reports CRLF when the first line break in data is "\r\n".
func DetectLineEnding(data []byte) LineEnding {
	i := bytes.IndexByte(data, '\n')
	if i > 0 && data[i-1] == '\r' {
		return CRLF
	}
	return LF
}

// Normalize converts CRLF line breaks to LF when le is CRLF. Mixed endings
// do not survive Restore: every break comes back as le.
func Normalize(data []byte, le LineEnding) string {
	if le == CRLF {
		return strings.ReplaceAll(string(data), "\r\n", "\n")
	}
	return string(data)
}

// Restore converts the buffer's LF line breaks back to le for writing.
func Restore(text string, le LineEnding) []byte {
	if le == CRLF {
		return []byte(strings.ReplaceAll(text, "\n", "\r\n"))
	}
	return []byte(text)
}
