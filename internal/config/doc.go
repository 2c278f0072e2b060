// Package config loads, merges, and saves the project-switch configuration.
//
// Configuration is read from ~/.project-switch.yml. The path can be changed
// with the --config flag or the PROJECT_SWITCH_CONFIG environment variable.
//
// # Layers
//
// A local file may name a shared base file through its include key:
//
//	include: ~/dotfiles/project-switch.yml
//	currentProject: alpha
//	projects:
//	  - name: alpha
//	    commands:
//	      - key: mail
//	        url: https://mail.example.com/?q=
//	        url_encode: true
//
// The base file is parsed as YAML, or as TOML when its name ends in .toml.
// The local file is the overlay: scalars it sets win, command lists and
// projects are merged by key and by name, and the shortcuts block replaces
// the base block wholesale because it describes the local machine.
//
// A missing include file is a warning, not an error. A malformed file on
// either layer is fatal.
//
// # Saving
//
// Only the local layer is ever written. Projects that exist only in the
// include file are never copied into the local file. When the local file
// already exists its YAML node tree is updated in place, so key order,
// comments, and keys this package does not know about survive a save.
package config
