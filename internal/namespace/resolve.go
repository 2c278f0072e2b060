package namespace

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

var (
	// ErrNotFound is returned when no item matches the keyword.
	ErrNotFound = errors.New("no matching item")
	// ErrNoURL is returned when the resolved command has no url.
	ErrNoURL = errors.New("command has no url configured")
	// ErrNoCurrentProject is returned when a keyword cannot be resolved and
	// no project is selected.
	ErrNoCurrentProject = errors.New("no current project selected")
	// ErrEmptyInput is returned for blank input.
	ErrEmptyInput = errors.New("nothing to open")
)

// maxSuggestions caps the "did you mean" list.
const maxSuggestions = 3

// NotFoundError carries the unmatched keyword and close alternatives.
type NotFoundError struct {
	Keyword     string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("no item matches %q", e.Keyword)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// Resolve finds the item for keyword: an exact case-insensitive key match,
// else the first key containing keyword in namespace order.
func Resolve(items []Item, keyword string) (Item, error) {
	lower := strings.ToLower(keyword)

	for _, it := range items {
		if strings.ToLower(it.Key()) == lower {
			return it, nil
		}
	}
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Key()), lower) {
			return it, nil
		}
	}

	return Item{}, &NotFoundError{Keyword: keyword, Suggestions: didYouMean(items, keyword)}
}

// keySource adapts items to fuzzy.Source.
type keySource []Item

func (k keySource) String(i int) string { return k[i].Key() }
func (k keySource) Len() int            { return len(k) }

func didYouMean(items []Item, keyword string) []string {
	if keyword == "" {
		return nil
	}
	matches := fuzzy.FindFrom(keyword, keySource(items))
	var out []string
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
