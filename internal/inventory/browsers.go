package inventory

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Browser describes one supported browser: where its extension store lives
// relative to the user's profile root on each OS, and which bundled
// extension IDs should never appear in a report.
type Browser struct {
	Name        string
	windowsPath []string
	darwinPath  []string
	linuxPath   []string
	IgnoredIDs  map[string]struct{}
}

// Chromium component extensions that ship with the browser itself. They are
// present on effectively every install and are not user choices.
var (
	chromeIgnoredIDs = map[string]struct{}{
		"nmmhkkegccagdldgiimedpiccmgmieda": {}, // Google Wallet
		"mhjfbmdgcfjbbpaeojofohoefgiehjai": {}, // PDF Viewer
		"ghbmnnjooekpmoecnnnilnnbdlolhkhi": {}, // Google Docs Offline
		"neajdppkdcdipfabeoofebfddakdcjhd": {}, // Google Network Speech
	}
	edgeIgnoredIDs = map[string]struct{}{
		"jmjflgjpcpepeafmmgdpfkogkghcpiha": {}, // Edge redirector
		"ghbmnnjooekpmoecnnnilnnbdlolhkhi": {}, // Google Docs Offline
	}
)

// Catalog returns the supported browsers in their fixed processing order.
func Catalog() []Browser {
	return []Browser{
		{
			Name:        "Chrome",
			windowsPath: []string{"AppData", "Local", "Google", "Chrome", "User Data", "Default", "Extensions"},
			darwinPath:  []string{"Library", "Application Support", "Google", "Chrome", "Default", "Extensions"},
			linuxPath:   []string{".config", "google-chrome", "Default", "Extensions"},
			IgnoredIDs:  chromeIgnoredIDs,
		},
		{
			Name:        "Edge",
			windowsPath: []string{"AppData", "Local", "Microsoft", "Edge", "User Data", "Default", "Extensions"},
			darwinPath:  []string{"Library", "Application Support", "Microsoft Edge", "Default", "Extensions"},
			linuxPath:   []string{".config", "microsoft-edge", "Default", "Extensions"},
			IgnoredIDs:  edgeIgnoredIDs,
		},
	}
}

// ExtensionsRoot resolves the browser's extension store for the given user
// data root on the current OS. The returned path is not guaranteed to exist;
// Scan treats a missing root as an empty result.
func (b Browser) ExtensionsRoot(dataRoot string) (string, error) {
	var segments []string
	switch runtime.GOOS {
	case "windows":
		// Prefer LOCALAPPDATA when it points somewhere other than the
		// default profile-relative location (e.g. redirected profiles).
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			rest := b.windowsPath[2:]
			return filepath.Join(local, filepath.Join(rest...)), nil
		}
		segments = b.windowsPath
	case "darwin":
		segments = b.darwinPath
	case "linux":
		segments = b.linuxPath
	default:
		return "", fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
	return filepath.Join(dataRoot, filepath.Join(segments...)), nil
}
