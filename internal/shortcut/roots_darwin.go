//go:build darwin

package shortcut

func platformRoots() ([]Root, Kind) {
	return macRoots(homeDir()), KindAppBundle
}
