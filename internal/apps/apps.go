// Package apps enumerates installed application bundles and resolves
// their display names and bundle identifiers from Info.plist.
package apps

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"howett.net/plist"
)

// Info describes one installed application bundle.
type Info struct {
	Name     string `json:"name" yaml:"name"`
	BundleID string `json:"bundle_id" yaml:"bundle_id"`
	Path     string `json:"path" yaml:"path"`
}

// bundleInfo is the subset of Info.plist keys we care about.
type bundleInfo struct {
	Identifier  string `plist:"CFBundleIdentifier"`
	Name        string `plist:"CFBundleName"`
	DisplayName string `plist:"CFBundleDisplayName"`
}

// ReadBundleID returns the CFBundleIdentifier of the application bundle
// at appPath.
func ReadBundleID(appPath string) (string, error) {
	info, err := readInfoPlist(appPath)
	if err != nil {
		return "", err
	}
	if info.Identifier == "" {
		return "", fmt.Errorf("no CFBundleIdentifier in %s", appPath)
	}
	return info.Identifier, nil
}

// List enumerates the top-level .app bundles under appDirs. Directories
// that do not exist are skipped silently. Bundles with an unreadable
// Info.plist fall back to a name-derived identifier so they can still be
// listed and excluded.
func List(appDirs []string) ([]Info, error) {
	var apps []Info
	seen := make(map[string]struct{})

	for _, dir := range appDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() || !strings.HasSuffix(entry.Name(), ".app") {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if _, ok := seen[path]; ok {
				continue
			}
			seen[path] = struct{}{}
			apps = append(apps, describe(path, entry.Name()))
		}
	}

	sort.Slice(apps, func(i, j int) bool { return apps[i].Name < apps[j].Name })
	return apps, nil
}

// Resolve finds one installed application by display name or bundle
// identifier, case-insensitively.
func Resolve(appDirs []string, query string) (*Info, error) {
	apps, err := List(appDirs)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	for i := range apps {
		if strings.ToLower(apps[i].Name) == q || strings.ToLower(apps[i].BundleID) == q {
			return &apps[i], nil
		}
	}
	return nil, fmt.Errorf("no installed application matches %q", query)
}

// describe builds an Info for the bundle at path, preferring Info.plist
// values and falling back to the directory name.
func describe(path, dirName string) Info {
	name := strings.TrimSuffix(dirName, ".app")
	app := Info{
		Name:     name,
		BundleID: FallbackBundleID(dirName),
		Path:     path,
	}

	info, err := readInfoPlist(path)
	if err != nil {
		return app
	}
	if info.Identifier != "" {
		app.BundleID = info.Identifier
	}
	if info.DisplayName != "" {
		app.Name = info.DisplayName
	} else if info.Name != "" {
		app.Name = info.Name
	}
	return app
}

// FallbackBundleID derives an identifier-shaped token from a bundle
// directory name, for bundles whose Info.plist cannot be read.
func FallbackBundleID(dirName string) string {
	name := strings.TrimSuffix(dirName, ".app")
	return strings.ToLower(strings.ReplaceAll(name, " ", ""))
}

func readInfoPlist(appPath string) (*bundleInfo, error) {
	data, err := os.ReadFile(filepath.Join(appPath, "Contents", "Info.plist"))
	if err != nil {
		return nil, fmt.Errorf("read Info.plist: %w", err)
	}

	var info bundleInfo
	if _, err := plist.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("parse Info.plist for %s: %w", appPath, err)
	}
	return &info, nil
}
