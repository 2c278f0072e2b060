package match

import (
	"slices"
	"strings"
)

// MaxDescend caps how many single-directory levels ListPath walks into on
// its own.
const MaxDescend = 5

// ListPath lists the directory named by input, filtered by the trailing
// name fragment. Directories come before files, each sorted ignoring case.
// When the fragment is empty the directory itself is offered first. When
// exactly one directory and no file matches, the listing descends into it.
func (e *Engine) ListPath(input string) []Suggestion {
	sep := separatorOf(input)
	cut := strings.LastIndexAny(input, `/\`)
	if cut < 0 {
		return nil
	}
	dir, filter := input[:cut+1], input[cut+1:]

	for depth := 0; ; depth++ {
		dirs, files, ok := e.list(dir, filter)
		if !ok {
			return nil
		}

		if len(dirs) == 1 && len(files) == 0 && depth < MaxDescend {
			dir = dir + dirs[0] + string(sep)
			filter = ""
			continue
		}

		var out []Suggestion
		if filter == "" {
			out = append(out, Suggestion{Kind: SuggestDir, Path: dir})
		}
		for _, name := range dirs {
			out = append(out, Suggestion{Kind: SuggestDir, Path: dir + name})
		}
		for _, name := range files {
			out = append(out, Suggestion{Kind: SuggestFile, Path: dir + name})
		}
		return out
	}
}

// list returns the sorted directory and file names in dir that start with
// filter. ok is false when dir cannot be read.
func (e *Engine) list(dir, filter string) (dirs, files []string, ok bool) {
	entries, err := e.ReadDir(e.expand(dir))
	if err != nil {
		return nil, nil, false
	}

	lower := strings.ToLower(filter)
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(strings.ToLower(name), lower) {
			continue
		}
		if entry.IsDir() {
			dirs = append(dirs, name)
		} else {
			files = append(files, name)
		}
	}

	byFold := func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}
	slices.SortFunc(dirs, byFold)
	slices.SortFunc(files, byFold)
	return dirs, files, true
}

func (e *Engine) expand(dir string) string {
	if e.Home != "" && (strings.HasPrefix(dir, "~/") || strings.HasPrefix(dir, `~\`)) {
		return e.Home + dir[1:]
	}
	return dir
}

// separatorOf returns the last path separator used in s, or '/'.
func separatorOf(s string) byte {
	if i := strings.LastIndexAny(s, `/\`); i >= 0 {
		return s[i]
	}
	return '/'
}
