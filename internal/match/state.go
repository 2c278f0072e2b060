package match

import (
	"runtime"
	"strings"
)

// State is the classification of the current input.
type State int

const (
	StateEmpty State = iota
	StatePrefixTyping
	StateArgsTyping
	StatePathBrowsing
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePrefixTyping:
		return "prefix"
	case StateArgsTyping:
		return "args"
	case StatePathBrowsing:
		return "path"
	default:
		return "unknown"
	}
}

// unixPaths enables "/" and "~/" as path prefixes.
var unixPaths = runtime.GOOS != "windows"

// Classify returns the state for input.
func Classify(input string) State {
	switch {
	case strings.TrimSpace(input) == "":
		return StateEmpty
	case IsPathLike(input):
		return StatePathBrowsing
	case strings.Contains(input, " "):
		return StateArgsTyping
	default:
		return StatePrefixTyping
	}
}

// IsPathLike reports whether input has the shape of a filesystem path:
// a drive letter (C:\ or C:/), a UNC prefix (\\ or //), or on Unix an
// absolute or home-relative path.
func IsPathLike(input string) bool {
	if len(input) >= 3 && isLetter(input[0]) && input[1] == ':' && isSep(input[2]) {
		return true
	}
	if strings.HasPrefix(input, `\\`) || strings.HasPrefix(input, "//") {
		return true
	}
	if unixPaths {
		return strings.HasPrefix(input, "/") || strings.HasPrefix(input, "~/")
	}
	return false
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isSep(b byte) bool {
	return b == '/' || b == '\\'
}
