package config

import (
	"slices"
	"strings"
)

// Merge overlays one config layer onto a base layer and returns a new Config.
// Neither input is mutated. A nil base returns a copy of overlay.
func Merge(base, overlay *Config) *Config {
	if base == nil {
		return overlay.clone()
	}
	if overlay == nil {
		return base.clone()
	}

	merged := &Config{
		Include:        overlay.Include,
		CurrentProject: firstNonEmpty(overlay.CurrentProject, base.CurrentProject),
		DefaultBrowser: firstNonEmpty(overlay.DefaultBrowser, base.DefaultBrowser),
		Global:         mergeCommands(base.Global, overlay.Global),
		Projects:       mergeProjects(base.Projects, overlay.Projects),
	}

	// Machine-local: replaced, never merged.
	if overlay.Shortcuts != nil {
		merged.Shortcuts = overlay.Shortcuts.clone()
	} else if base.Shortcuts != nil {
		merged.Shortcuts = base.Shortcuts.clone()
	}

	return merged
}

// mergeCommands merges two command lists by key.
// Base order is kept; keys only in overlay are appended in overlay order.
func mergeCommands(base, overlay []Command) []Command {
	if base == nil && overlay == nil {
		return nil
	}

	byKey := make(map[string]Command, len(overlay))
	for _, c := range overlay {
		byKey[c.Key] = c
	}

	merged := make([]Command, 0, len(base)+len(overlay))
	seen := make(map[string]bool, len(base))
	for _, b := range base {
		seen[b.Key] = true
		o, ok := byKey[b.Key]
		if !ok {
			merged = append(merged, b)
			continue
		}
		merged = append(merged, Command{
			Key:       b.Key,
			URL:       firstNonEmpty(o.URL, b.URL),
			Browser:   firstNonEmpty(o.Browser, b.Browser),
			Args:      firstNonEmpty(o.Args, b.Args),
			URLEncode: o.URLEncode || b.URLEncode,
		})
	}
	for _, o := range overlay {
		if !seen[o.Key] {
			merged = append(merged, o)
		}
	}
	return merged
}

// mergeProjects merges two project lists by name.
// Base order is kept. Projects only in overlay are appended sorted by name;
// the sort never reorders base projects.
func mergeProjects(base, overlay []Project) []Project {
	if base == nil && overlay == nil {
		return nil
	}

	byName := make(map[string]Project, len(overlay))
	for _, p := range overlay {
		byName[p.Name] = p
	}

	merged := make([]Project, 0, len(base)+len(overlay))
	seen := make(map[string]bool, len(base))
	for _, b := range base {
		seen[b.Name] = true
		o, ok := byName[b.Name]
		if !ok {
			merged = append(merged, b.clone())
			continue
		}
		merged = append(merged, Project{
			Name:        b.Name,
			Path:        firstNonEmpty(o.Path, b.Path),
			Description: firstNonEmpty(o.Description, b.Description),
			Browser:     firstNonEmpty(o.Browser, b.Browser),
			Commands:    mergeCommands(b.Commands, o.Commands),
		})
	}

	var added []Project
	for _, o := range overlay {
		if !seen[o.Name] {
			added = append(added, o.clone())
		}
	}
	slices.SortStableFunc(added, func(a, b Project) int {
		return strings.Compare(a.Name, b.Name)
	})

	return append(merged, added...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func (c *Config) clone() *Config {
	if c == nil {
		return nil
	}
	out := *c
	out.Global = slices.Clone(c.Global)
	out.Shortcuts = c.Shortcuts.clone()
	if c.Projects != nil {
		out.Projects = make([]Project, len(c.Projects))
		for i, p := range c.Projects {
			out.Projects[i] = p.clone()
		}
	}
	return &out
}

func (p Project) clone() Project {
	p.Commands = slices.Clone(p.Commands)
	return p
}

func (s *ShortcutsConfig) clone() *ShortcutsConfig {
	if s == nil {
		return nil
	}
	out := *s
	if s.Enabled != nil {
		enabled := *s.Enabled
		out.Enabled = &enabled
	}
	out.ExtraPaths = slices.Clone(s.ExtraPaths)
	out.Exclude = slices.Clone(s.Exclude)
	return &out
}
