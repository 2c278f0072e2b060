//go:build windows

package shortcut

import "os"

func platformRoots() ([]Root, Kind) {
	return windowsRoots(os.Getenv), KindLink
}
