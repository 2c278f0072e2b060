package config

import (
	"errors"
	"fmt"

	"github.com/project-switch/project-switch/internal/storage"
)

const defaultConfig = `# project-switch configuration

# Shared base file merged under this one. YAML, or TOML when it ends in .toml.
# include: ~/dotfiles/project-switch.yml

# Browser used when neither a command nor its project names one.
# "default" opens the system handler. Extra arguments are allowed.
# defaultBrowser: firefox -P work

# Commands available in every project.
# global:
#   - key: wiki
#     url: https://wiki.example.com

# Filesystem shortcuts (desktop, start menu, applications).
# shortcuts:
#   enabled: true
#   extraPaths:
#     - ~/Tools
#   exclude:
#     - "uninstall*"

projects: []
`

// Init writes a commented default config file at path.
// Without force an existing file is left alone and an error is returned.
func Init(path string, force bool) (string, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return "", err
		}
		path = p
	}
	path, err := ExpandPath(path)
	if err != nil {
		return "", err
	}

	if !force && storage.Exists(path) {
		return "", errors.New("config file already exists: " + path)
	}
	if err := storage.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return path, nil
}
