// Package shortcut discovers launchable applications on the local machine.
//
// Each platform contributes a fixed list of root directories, some scanned
// recursively. Windows looks for .lnk and .url files on the desktops and in
// the start menus, macOS for .app bundles in the Applications folders, and
// Linux for .desktop entries under the XDG data directories. Extra paths
// from the config are always scanned recursively and come last.
//
// Entries are deduplicated by lower-cased name (the first one found wins)
// and returned sorted by name, ignoring case.
package shortcut
