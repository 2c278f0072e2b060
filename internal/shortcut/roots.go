package shortcut

import (
	"os"
	"path/filepath"
	"strings"
)

// windowsRoots returns the desktop and start menu directories.
func windowsRoots(getenv func(string) string) []Root {
	var roots []Root
	if profile := getenv("USERPROFILE"); profile != "" {
		roots = append(roots, Root{Path: profile + `\Desktop`})
	}
	roots = append(roots, Root{Path: `C:\Users\Public\Desktop`})
	if appData := getenv("APPDATA"); appData != "" {
		roots = append(roots, Root{Path: appData + `\Microsoft\Windows\Start Menu\Programs`, Recursive: true})
	}
	if allUsers := getenv("ALLUSERSPROFILE"); allUsers != "" {
		roots = append(roots, Root{Path: allUsers + `\Microsoft\Windows\Start Menu\Programs`, Recursive: true})
	}
	return roots
}

// macRoots returns the system and user Applications folders.
func macRoots(home string) []Root {
	roots := []Root{
		{Path: "/Applications"},
		{Path: "/Applications/Utilities"},
	}
	if home != "" {
		roots = append(roots, Root{Path: filepath.Join(home, "Applications")})
	}
	return roots
}

// xdgRoots returns the applications directories of the XDG data dirs,
// followed by the flatpak export directories.
func xdgRoots(getenv func(string) string, home string) []Root {
	var roots []Root

	dataHome := getenv("XDG_DATA_HOME")
	if dataHome == "" && home != "" {
		dataHome = filepath.Join(home, ".local", "share")
	}
	if dataHome != "" {
		roots = append(roots, Root{Path: filepath.Join(dataHome, "applications"), Recursive: true})
	}

	dataDirs := getenv("XDG_DATA_DIRS")
	if dataDirs == "" {
		dataDirs = "/usr/local/share:/usr/share"
	}
	for _, dir := range strings.Split(dataDirs, ":") {
		if dir == "" {
			continue
		}
		roots = append(roots, Root{Path: filepath.Join(dir, "applications"), Recursive: true})
	}

	roots = append(roots, Root{Path: "/var/lib/flatpak/exports/share/applications", Recursive: true})
	if home != "" {
		roots = append(roots, Root{Path: filepath.Join(home, ".local/share/flatpak/exports/share/applications"), Recursive: true})
	}
	return roots
}

func homeDir() string {
	home, _ := os.UserHomeDir()
	return home
}
