package match

import (
	"io/fs"
	"os"
	"strings"

	"github.com/project-switch/project-switch/internal/namespace"
)

// SuggestionKind tells an item suggestion from a path suggestion.
type SuggestionKind int

const (
	SuggestItem SuggestionKind = iota
	SuggestDir
	SuggestFile
)

// Suggestion is one candidate offered for the current input.
type Suggestion struct {
	Kind SuggestionKind
	// Item is set for SuggestItem.
	Item namespace.Item
	// Path is set for SuggestDir and SuggestFile, spelled the way the user
	// typed its prefix.
	Path string
}

// Text returns the plain key or path.
func (s Suggestion) Text() string {
	if s.Kind == SuggestItem {
		return s.Item.Key()
	}
	return s.Path
}

// ReadDirFunc lists a directory.
type ReadDirFunc func(name string) ([]fs.DirEntry, error)

// Engine computes suggestions over a fixed namespace.
type Engine struct {
	Items   []namespace.Item
	ReadDir ReadDirFunc
	// Home replaces a leading "~" when listing directories.
	Home string
}

// NewEngine returns an engine over items that lists the real filesystem.
func NewEngine(items []namespace.Item) *Engine {
	home, _ := os.UserHomeDir()
	return &Engine{Items: items, ReadDir: os.ReadDir, Home: home}
}

// Suggest returns the candidates for input.
func (e *Engine) Suggest(input string) []Suggestion {
	switch Classify(input) {
	case StatePathBrowsing:
		return e.ListPath(input)
	case StateArgsTyping:
		keyword, _, _ := strings.Cut(input, " ")
		if it, ok := e.exact(keyword); ok {
			return []Suggestion{{Kind: SuggestItem, Item: it}}
		}
		return e.containing(keyword)
	default:
		return e.containing(input)
	}
}

// Locked reports whether the text before the first space names an item
// exactly, so the rest of the input is arguments.
func (e *Engine) Locked(input string) bool {
	if Classify(input) != StateArgsTyping {
		return false
	}
	keyword, _, _ := strings.Cut(input, " ")
	_, ok := e.exact(keyword)
	return ok
}

func (e *Engine) exact(keyword string) (namespace.Item, bool) {
	for _, it := range e.Items {
		if strings.EqualFold(it.Key(), keyword) {
			return it, true
		}
	}
	return namespace.Item{}, false
}

func (e *Engine) containing(sub string) []Suggestion {
	lower := strings.ToLower(strings.TrimSpace(sub))
	var out []Suggestion
	for _, it := range e.Items {
		if strings.Contains(strings.ToLower(it.Key()), lower) {
			out = append(out, Suggestion{Kind: SuggestItem, Item: it})
		}
	}
	return out
}

// Accept returns the input after the user confirms s: the key, keeping any
// typed arguments, or the path with a trailing separator for directories.
func Accept(input string, s Suggestion) string {
	switch s.Kind {
	case SuggestDir:
		if strings.HasSuffix(s.Path, "/") || strings.HasSuffix(s.Path, `\`) {
			return s.Path
		}
		return s.Path + string(separatorOf(s.Path))
	case SuggestFile:
		return s.Path
	default:
		if Classify(input) == StateArgsTyping {
			_, rest, _ := strings.Cut(input, " ")
			return s.Item.Key() + " " + rest
		}
		return s.Item.Key()
	}
}

// Submit is the parsed final input.
type Submit struct {
	// Path is set when the input named an existing path.
	Path    string
	Keyword string
	Args    string
}

// IsPath reports whether the submit names a filesystem path.
func (s Submit) IsPath() bool { return s.Path != "" }

// ParseSubmit interprets the final input. exists is asked only for
// path-shaped input.
func ParseSubmit(input string, exists func(string) bool) Submit {
	trimmed := strings.TrimSpace(input)
	if IsPathLike(trimmed) && exists(trimmed) {
		return Submit{Path: trimmed}
	}
	keyword, args := namespace.SplitInput(trimmed)
	return Submit{Keyword: keyword, Args: args}
}
