//go:build linux

package shortcut

import "os"

func platformRoots() ([]Root, Kind) {
	return xdgRoots(os.Getenv, homeDir()), KindDesktopEntry
}
