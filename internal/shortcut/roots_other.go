//go:build !windows && !darwin && !linux

package shortcut

func platformRoots() ([]Root, Kind) {
	return nil, KindNone
}
