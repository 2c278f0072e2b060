// Package namespace builds the flat list of selectable items and resolves a
// typed keyword against it.
//
// The namespace holds the current project's commands, then the global
// commands, then the filesystem shortcuts. A project command shadows a
// global command with the same key.
//
// Resolving a keyword tries an exact case-insensitive key match, then the
// first key that contains the keyword. When nothing matches and the keyword
// looks like a URL, it is opened as an ad-hoc URL instead.
package namespace
