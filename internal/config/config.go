package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultBrowser is used when neither a command, its project, nor the config
// names a browser.
const DefaultBrowser = "firefox"

// FileName is the name of the config file in the user's home directory.
const FileName = ".project-switch.yml"

// Command is a named action: a URL opened in a browser, or a shell command.
type Command struct {
	Key       string `yaml:"key" toml:"key"`
	URL       string `yaml:"url,omitempty" toml:"url"`
	Browser   string `yaml:"browser,omitempty" toml:"browser"`
	Args      string `yaml:"args,omitempty" toml:"args"`
	URLEncode bool   `yaml:"url_encode,omitempty" toml:"url_encode"`
}

// IsURL reports whether the command opens in a browser rather than a shell.
func (c Command) IsURL() bool {
	return strings.HasPrefix(c.URL, "http")
}

// Project groups commands under a name.
type Project struct {
	Name        string    `yaml:"name" toml:"name"`
	Path        string    `yaml:"path,omitempty" toml:"path"`
	Description string    `yaml:"description,omitempty" toml:"description"`
	Browser     string    `yaml:"browser,omitempty" toml:"browser"`
	Commands    []Command `yaml:"commands,omitempty" toml:"commands"`
}

// ShortcutsConfig controls the filesystem shortcut scanner on this machine.
type ShortcutsConfig struct {
	Enabled    *bool    `yaml:"enabled,omitempty" toml:"enabled"`
	ExtraPaths []string `yaml:"extraPaths,omitempty" toml:"extraPaths"`
	Exclude    []string `yaml:"exclude,omitempty" toml:"exclude"`
}

// IsEnabled returns whether shortcuts are listed. Defaults to true.
func (s ShortcutsConfig) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// Config is one layer of configuration, or the merge of two.
type Config struct {
	Include        string           `yaml:"include,omitempty" toml:"include"`
	CurrentProject string           `yaml:"currentProject,omitempty" toml:"currentProject"`
	DefaultBrowser string           `yaml:"defaultBrowser,omitempty" toml:"defaultBrowser"`
	Global         []Command        `yaml:"global,omitempty" toml:"global"`
	Shortcuts      *ShortcutsConfig `yaml:"shortcuts,omitempty" toml:"shortcuts"`
	Projects       []Project        `yaml:"projects" toml:"projects"`
}

// Default returns the configuration written for a new user.
func Default() Config {
	return Config{Projects: []Project{}}
}

// Browser returns the configured default browser, or DefaultBrowser.
func (c *Config) Browser() string {
	if c.DefaultBrowser != "" {
		return c.DefaultBrowser
	}
	return DefaultBrowser
}

// ShortcutSettings returns the shortcuts block with defaults applied.
func (c *Config) ShortcutSettings() ShortcutsConfig {
	if c.Shortcuts == nil {
		return ShortcutsConfig{}
	}
	return *c.Shortcuts
}

// FindProject returns the project with the given name.
func (c *Config) FindProject(name string) (*Project, bool) {
	for i := range c.Projects {
		if c.Projects[i].Name == name {
			return &c.Projects[i], true
		}
	}
	return nil, false
}

// DefaultPath returns ~/.project-switch.yml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, FileName), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
