package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrProjectExists is returned when adding a project whose name is taken.
	ErrProjectExists = errors.New("project already exists")
	// ErrUnknownProject is returned when switching to a project that does not exist.
	ErrUnknownProject = errors.New("project not found")
	// ErrEmptyName is returned for a blank project name.
	ErrEmptyName = errors.New("project name cannot be empty")
)

// validate checks one config layer for structural problems.
func validate(cfg *Config) error {
	if err := validateCommands(cfg.Global, "global"); err != nil {
		return err
	}

	names := make(map[string]bool, len(cfg.Projects))
	for i, p := range cfg.Projects {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("projects[%d]: %w", i, ErrEmptyName)
		}
		if names[p.Name] {
			return fmt.Errorf("projects[%d]: duplicate project name %q", i, p.Name)
		}
		names[p.Name] = true

		if err := validateCommands(p.Commands, fmt.Sprintf("project %q", p.Name)); err != nil {
			return err
		}
	}
	return nil
}

func validateCommands(cmds []Command, scope string) error {
	keys := make(map[string]bool, len(cmds))
	for i, c := range cmds {
		if strings.TrimSpace(c.Key) == "" {
			return fmt.Errorf("%s commands[%d]: key cannot be empty", scope, i)
		}
		if keys[c.Key] {
			return fmt.Errorf("%s commands[%d]: duplicate key %q", scope, i, c.Key)
		}
		keys[c.Key] = true
	}
	return nil
}
