package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/project-switch/project-switch/internal/log"
)

// Store owns the config file for one invocation.
// Every Load reads a fresh snapshot from disk.
type Store struct {
	path        string
	includePath string

	local  *Config
	base   *Config
	merged *Config

	// doc is the parsed local file, kept so Save can update it in place.
	doc *yaml.Node
}

// Open resolves path (DefaultPath when empty) and loads the config.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}

	s := &Store{path: expanded}
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads the local file and its include file, replacing the current
// snapshot. A missing local file is created with an empty project list.
func (s *Store) Load(ctx context.Context) error {
	l := log.FromContext(ctx)

	local, doc, err := readLocal(s.path)
	if err != nil {
		return err
	}
	if local == nil {
		l.Debug("config file not found, creating", "path", s.path)
		def := Default()
		s.local, s.doc = &def, nil
		if err := s.Save(); err != nil {
			return err
		}
	} else {
		s.local, s.doc = local, doc
	}
	s.base, s.includePath = nil, ""

	if include := s.local.Include; include != "" {
		includePath, err := s.resolveInclude(include)
		if err != nil {
			return err
		}
		base, err := readInclude(includePath)
		switch {
		case errors.Is(err, os.ErrNotExist):
			l.Warn("include file not found, using local config only", "include", include)
		case err != nil:
			return err
		default:
			l.Debug("loaded include file", "path", includePath)
			s.base, s.includePath = base, includePath
		}
	}

	s.merged = Merge(s.base, s.local)
	return nil
}

// Save writes the locally declared layer back to the config file.
// The include file is never written.
func (s *Store) Save() error {
	data, err := encodeLocal(s.doc, s.local)
	if err != nil {
		return fmt.Errorf("failed to encode config file %s: %w", s.path, err)
	}
	if err := writeConfig(s.path, data); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", s.path, err)
	}

	// Reparse so later saves keep updating the same tree.
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err == nil {
		s.doc = &doc
	}
	return nil
}

// Path returns the local config file path.
func (s *Store) Path() string { return s.path }

// IncludePath returns the resolved include file path, or "" when no include
// file was loaded.
func (s *Store) IncludePath() string { return s.includePath }

// Merged returns the merged configuration.
func (s *Store) Merged() *Config { return s.merged }

// Local returns the locally declared layer.
func (s *Store) Local() *Config { return s.local }

// DefaultBrowser returns the effective default browser.
func (s *Store) DefaultBrowser() string { return s.merged.Browser() }

// ShortcutsConfig returns the effective shortcuts settings.
func (s *Store) ShortcutsConfig() ShortcutsConfig { return s.merged.ShortcutSettings() }

// ProjectExists reports whether a project with the given name is in the merged set.
func (s *Store) ProjectExists(name string) bool {
	_, ok := s.merged.FindProject(name)
	return ok
}

// Project returns the merged record of the named project.
func (s *Store) Project(name string) (*Project, bool) {
	return s.merged.FindProject(name)
}

// ResolveCurrentProject returns the active project. ok is false when no
// project is selected or the selected one no longer exists.
func (s *Store) ResolveCurrentProject() (name string, project *Project, ok bool) {
	name = s.merged.CurrentProject
	if name == "" {
		return "", nil, false
	}
	project, ok = s.merged.FindProject(name)
	if !ok {
		return "", nil, false
	}
	return name, project, true
}

// AddProject appends a project to the local file and saves it.
// The first project ever added becomes the current project.
func (s *Store) AddProject(p Project) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return ErrEmptyName
	}
	if s.ProjectExists(p.Name) {
		return fmt.Errorf("%w: %s", ErrProjectExists, p.Name)
	}

	if len(s.merged.Projects) == 0 {
		s.local.CurrentProject = p.Name
	}
	s.local.Projects = append(s.local.Projects, p)

	if err := s.Save(); err != nil {
		return err
	}
	s.merged = Merge(s.base, s.local)
	return nil
}

// SetCurrentProject switches the active project and saves.
func (s *Store) SetCurrentProject(name string) error {
	if !s.ProjectExists(name) {
		return fmt.Errorf("%w: %s", ErrUnknownProject, name)
	}

	s.local.CurrentProject = name
	if err := s.Save(); err != nil {
		return err
	}
	s.merged = Merge(s.base, s.local)
	return nil
}

// SetShortcutsEnabled writes shortcuts.enabled to the local file.
// When the local file has no shortcuts block, the effective block is copied
// first so extra paths from the include file are not lost.
func (s *Store) SetShortcutsEnabled(enabled bool) error {
	if s.local.Shortcuts == nil {
		s.local.Shortcuts = s.merged.Shortcuts.clone()
		if s.local.Shortcuts == nil {
			s.local.Shortcuts = &ShortcutsConfig{}
		}
	}
	s.local.Shortcuts.Enabled = &enabled

	if err := s.Save(); err != nil {
		return err
	}
	s.merged = Merge(s.base, s.local)
	return nil
}

// ToggleShortcuts flips shortcuts.enabled and returns the new value.
func (s *Store) ToggleShortcuts() (bool, error) {
	enabled := !s.ShortcutsConfig().IsEnabled()
	if err := s.SetShortcutsEnabled(enabled); err != nil {
		return false, err
	}
	return enabled, nil
}

// resolveInclude expands ~ and resolves relative includes against the
// directory of the local file.
func (s *Store) resolveInclude(include string) (string, error) {
	p, err := ExpandPath(include)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(filepath.Dir(s.path), p)
	}
	return p, nil
}

// readLocal parses the local YAML file. Returns a nil Config when the file
// does not exist.
func readLocal(path string) (*Config, *yaml.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if len(doc.Content) == 0 {
		return &cfg, nil, nil
	}
	if err := doc.Decode(&cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := validate(&cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	if cfg.Projects == nil {
		cfg.Projects = []Project{}
	}
	return &cfg, &doc, nil
}

// readInclude parses a base config file as YAML, or TOML by extension.
// A missing file is returned as an error wrapping os.ErrNotExist.
func readInclude(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read include file %s: %w", path, err)
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}
