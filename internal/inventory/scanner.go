package inventory

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/boyter/gocodewalker"
	"github.com/pterm/pterm"
)

const (
	manifestFileName = "manifest.json"
	localeFileName   = "messages.json"
	localesDirName   = "_locales"

	msgPrefix = "__MSG_"
	msgSuffix = "__"
)

// Record is one discovered extension install.
type Record struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Browser string `json:"browser"`
}

// Scan walks root for extension manifests and returns a record per manifest
// whose name could be resolved. A missing root is not an error: browsers that
// are not installed simply contribute nothing. Manifests whose extension ID
// is in ignoredIDs are skipped before any file content is read, and any
// failure while processing a single manifest skips that manifest only.
func Scan(root string, ignoredIDs map[string]struct{}, browser string) []Record {
	if _, err := os.Stat(root); err != nil {
		pterm.Debug.Printfln("Extension root %s not present, skipping", root)
		return nil
	}

	manifests := findManifests(root)
	// Descending path order so newer version directories are seen first;
	// Aggregate keeps the first record per ID.
	sort.Sort(sort.Reverse(sort.StringSlice(manifests)))

	var records []Record
	for _, manifestPath := range manifests {
		// Layout is <root>/<extensionID>/<version>/manifest.json, so the ID
		// is the directory two levels up from the manifest file.
		id := filepath.Base(filepath.Dir(filepath.Dir(manifestPath)))
		if id == "" || id == "." || id == string(filepath.Separator) {
			continue
		}
		if _, skip := ignoredIDs[id]; skip {
			pterm.Debug.Printfln("Skipping built-in extension %s", id)
			continue
		}

		name, ok := manifestDisplayName(manifestPath)
		if !ok {
			continue
		}
		records = append(records, Record{ID: id, Name: name, Browser: browser})
	}
	return records
}

// findManifests returns the full paths of all manifest.json files under root.
func findManifests(root string) []string {
	fileQueue := make(chan *gocodewalker.File, 256)
	walker := gocodewalker.NewFileWalker(root, fileQueue)
	walker.IncludeHidden = true
	walker.IgnoreGitIgnore = true
	walker.IgnoreIgnoreFile = true

	errChan := make(chan error, 1)
	go func() {
		errChan <- walker.Start()
	}()

	var manifests []string
	for f := range fileQueue {
		if filepath.Base(f.Location) == manifestFileName {
			manifests = append(manifests, f.Location)
		}
	}
	if err := <-errChan; err != nil {
		pterm.Debug.Printfln("Walk of %s ended early: %v", root, err)
	}
	return manifests
}

// manifestDisplayName reads a manifest and resolves its display name.
// The second return is false when the manifest is unreadable, unparseable,
// or yields an empty name.
func manifestDisplayName(manifestPath string) (string, bool) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		pterm.Debug.Printfln("Failed to read %s: %v", manifestPath, err)
		return "", false
	}

	var manifest struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		pterm.Debug.Printfln("Failed to parse %s: %v", manifestPath, err)
		return "", false
	}

	name := manifest.Name
	if key, ok := messageKey(name); ok {
		if resolved := lookupLocaleMessage(filepath.Dir(manifestPath), key); resolved != "" {
			name = resolved
		}
	}
	if name == "" {
		return "", false
	}
	return name, true
}

// messageKey extracts the lookup key from a locale-indirected name of the
// form __MSG_<key>__.
func messageKey(name string) (string, bool) {
	if len(name) <= len(msgPrefix)+len(msgSuffix) {
		return "", false
	}
	if !strings.HasPrefix(name, msgPrefix) || !strings.HasSuffix(name, msgSuffix) {
		return "", false
	}
	return name[len(msgPrefix) : len(name)-len(msgSuffix)], true
}

// lookupLocaleMessage resolves key against the extension's English message
// table. Only the en locale is consulted. Returns "" when the locale file is
// absent, malformed, or does not carry the key, in which case the caller
// falls back to the raw placeholder.
func lookupLocaleMessage(manifestDir, key string) string {
	messagesPath := filepath.Join(manifestDir, localesDirName, "en", localeFileName)
	data, err := os.ReadFile(messagesPath)
	if err != nil {
		pterm.Debug.Printfln("No en locale at %s", messagesPath)
		return ""
	}

	var messages map[string]struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &messages); err != nil {
		pterm.Debug.Printfln("Failed to parse %s: %v", messagesPath, err)
		return ""
	}
	return messages[key].Message
}
