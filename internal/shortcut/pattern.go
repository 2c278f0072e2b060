package shortcut

import "strings"

// matchesAny reports whether name matches one of the exclusion patterns.
// Patterns are case-insensitive and support "foo" (exact), "foo*" (prefix),
// "*foo" (suffix), and "*foo*" (substring). Patterns must be lower-cased.
func matchesAny(name string, patterns []string) bool {
	lower := strings.ToLower(name)
	for _, pat := range patterns {
		if matchPattern(lower, pat) {
			return true
		}
	}
	return false
}

func matchPattern(name, pat string) bool {
	switch {
	case len(pat) > 2 && strings.HasPrefix(pat, "*") && strings.HasSuffix(pat, "*"):
		return strings.Contains(name, pat[1:len(pat)-1])
	case strings.HasPrefix(pat, "*"):
		return strings.HasSuffix(name, pat[1:])
	case strings.HasSuffix(pat, "*"):
		return strings.HasPrefix(name, pat[:len(pat)-1])
	default:
		return name == pat
	}
}

func lowerAll(patterns []string) []string {
	out := make([]string, len(patterns))
	for i, p := range patterns {
		out[i] = strings.ToLower(p)
	}
	return out
}
