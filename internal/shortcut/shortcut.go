package shortcut

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/project-switch/project-switch/internal/config"
	"github.com/project-switch/project-switch/internal/log"
)

// Entry is one discovered shortcut.
type Entry struct {
	// Name is the file name without its extension.
	Name string
	// Path is the full path of the shortcut file or bundle.
	Path string
}

// Root is a directory to scan.
type Root struct {
	Path      string
	Recursive bool
}

// Kind selects what counts as a shortcut and which directories are
// descended into.
type Kind int

const (
	// KindNone matches nothing.
	KindNone Kind = iota
	// KindLink matches Windows .lnk and .url files.
	KindLink
	// KindAppBundle matches macOS .app directories, which are never descended into.
	KindAppBundle
	// KindDesktopEntry matches freedesktop .desktop files.
	KindDesktopEntry
)

func (k Kind) String() string {
	switch k {
	case KindLink:
		return "link"
	case KindAppBundle:
		return "app"
	case KindDesktopEntry:
		return "desktop"
	default:
		return "none"
	}
}

// Collect scans the platform roots followed by extraPaths.
func Collect(ctx context.Context, extraPaths, exclude []string) []Entry {
	roots, kind := platformRoots()
	for _, p := range extraPaths {
		expanded, err := config.ExpandPath(p)
		if err != nil {
			log.FromContext(ctx).Debug("skipping extra path", "path", p, "error", err)
			continue
		}
		roots = append(roots, Root{Path: expanded, Recursive: true})
	}
	return CollectFrom(ctx, roots, kind, exclude)
}

// CollectFrom scans roots in order and returns the deduplicated, sorted
// entries. Unreadable directories are skipped.
func CollectFrom(ctx context.Context, roots []Root, kind Kind, exclude []string) []Entry {
	s := &scanner{
		kind:    kind,
		exclude: lowerAll(exclude),
		seen:    make(map[string]bool),
		visited: make(map[string]bool),
		log:     log.FromContext(ctx),
	}
	for _, root := range roots {
		s.scan(root)
	}

	slices.SortStableFunc(s.entries, func(a, b Entry) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return s.entries
}

type scanner struct {
	kind    Kind
	exclude []string
	seen    map[string]bool
	// visited maps real directory paths to whether they were walked
	// recursively.
	visited map[string]bool
	entries []Entry
	log     *log.Logger
}

// frame is one directory being walked: its remaining entries in name order.
type frame struct {
	dir     string
	entries []fs.DirEntry
}

// scan walks one root depth-first with an explicit stack. A directory is
// fully processed before its later siblings, matching a recursive walk.
func (s *scanner) scan(root Root) {
	first, ok := s.open(root.Path, root.Recursive)
	if !ok {
		return
	}
	stack := []*frame{first}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if len(top.entries) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		d := top.entries[0]
		top.entries = top.entries[1:]

		path := filepath.Join(top.dir, d.Name())
		info, err := statEntry(path, d)
		if err != nil {
			continue
		}

		if s.isShortcut(d, info) {
			s.add(path)
			continue
		}
		if root.Recursive && s.isRecursible(d, info) {
			if next, ok := s.open(path, true); ok {
				stack = append(stack, next)
			}
		}
	}
}

// open reads a directory once per walk depth. Directories already visited
// through another path (symlinks) are skipped, unless the earlier visit was
// flat and this one recurses.
func (s *scanner) open(dir string, recursive bool) (*frame, bool) {
	real, err := filepath.EvalSymlinks(dir)
	if err != nil {
		s.log.Debug("skipping shortcut directory", "path", dir, "error", err)
		return nil, false
	}
	if deep, ok := s.visited[real]; ok && (deep || !recursive) {
		return nil, false
	}
	s.visited[real] = recursive

	entries, err := os.ReadDir(dir)
	if err != nil {
		s.log.Debug("skipping shortcut directory", "path", dir, "error", err)
		return nil, false
	}
	return &frame{dir: dir, entries: entries}, true
}

func (s *scanner) add(path string) {
	name := filepath.Base(path)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if stem == "" {
		return
	}

	key := strings.ToLower(stem)
	if s.seen[key] || matchesAny(stem, s.exclude) {
		return
	}
	s.seen[key] = true
	s.entries = append(s.entries, Entry{Name: stem, Path: path})
}

func (s *scanner) isShortcut(d fs.DirEntry, info fs.FileInfo) bool {
	ext := strings.ToLower(filepath.Ext(d.Name()))
	switch s.kind {
	case KindLink:
		return !info.IsDir() && (ext == ".lnk" || ext == ".url")
	case KindAppBundle:
		return info.IsDir() && ext == ".app"
	case KindDesktopEntry:
		return !info.IsDir() && (d.Type().IsRegular() || d.Type()&fs.ModeSymlink != 0) && ext == ".desktop"
	default:
		return false
	}
}

func (s *scanner) isRecursible(d fs.DirEntry, info fs.FileInfo) bool {
	if !info.IsDir() {
		return false
	}
	return s.kind != KindAppBundle || !strings.EqualFold(filepath.Ext(d.Name()), ".app")
}

// statEntry returns file info, following symlinks.
func statEntry(path string, d fs.DirEntry) (fs.FileInfo, error) {
	if d.Type()&fs.ModeSymlink != 0 {
		return os.Stat(path)
	}
	return d.Info()
}
