// FILE: lixenwraith/registry/discovery.go
package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DirDiscoveryOptions configures automatic config directory discovery
type DirDiscoveryOptions struct {
	// Name of the application, used for the directory name in search paths
	Name string

	// Custom search paths (in addition to defaults)
	Paths []string

	// Environment variable to check for an explicit directory
	EnvVar string

	// CLI flag to check (e.g., "--config-dir")
	CLIFlag string

	// Whether to search in XDG config directories
	UseXDG bool

	// Whether to search ./config and ./<name> in the current directory
	UseCurrentDir bool
}

// DefaultDirDiscoveryOptions returns sensible defaults
func DefaultDirDiscoveryOptions(appName string) DirDiscoveryOptions {
	return DirDiscoveryOptions{
		Name:          appName,
		EnvVar:        strings.ToUpper(appName) + "_CONFIG_DIR",
		CLIFlag:       "--config-dir",
		UseXDG:        true,
		UseCurrentDir: true,
	}
}

// DiscoverConfigDir returns the first existing configuration directory.
// Precedence: CLI flag in args, environment variable, custom paths, current
// directory, XDG directories. An explicit flag or variable naming a missing
// directory is an error rather than a fallthrough.
func DiscoverConfigDir(opts DirDiscoveryOptions, args []string) (string, error) {
	if opts.CLIFlag != "" {
		for i, arg := range args {
			if arg == opts.CLIFlag && i+1 < len(args) {
				return requireDir(args[i+1])
			}
			if strings.HasPrefix(arg, opts.CLIFlag+"=") {
				return requireDir(strings.TrimPrefix(arg, opts.CLIFlag+"="))
			}
		}
	}

	if opts.EnvVar != "" {
		if path := os.Getenv(opts.EnvVar); path != "" {
			return requireDir(path)
		}
	}

	var searchPaths []string
	searchPaths = append(searchPaths, opts.Paths...)

	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			searchPaths = append(searchPaths, filepath.Join(cwd, "config"))
			if opts.Name != "" {
				searchPaths = append(searchPaths, filepath.Join(cwd, opts.Name))
			}
		}
	}

	if opts.UseXDG && opts.Name != "" {
		searchPaths = append(searchPaths, getXDGConfigPaths(opts.Name)...)
	}

	for _, dir := range searchPaths {
		if isDir(dir) {
			return dir, nil
		}
	}

	return "", fmt.Errorf("%w: no config directory found for %q", ErrConfigPathNotFound, opts.Name)
}

func requireDir(path string) (string, error) {
	if !isDir(path) {
		return "", fmt.Errorf("%w: %s", ErrConfigPathNotFound, path)
	}
	return path, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// getXDGConfigPaths returns XDG-compliant config search paths
func getXDGConfigPaths(appName string) []string {
	var paths []string

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		paths = append(paths, filepath.Join(xdgHome, appName))
	} else if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", appName))
	}

	if xdgDirs := os.Getenv("XDG_CONFIG_DIRS"); xdgDirs != "" {
		for _, dir := range filepath.SplitList(xdgDirs) {
			paths = append(paths, filepath.Join(dir, appName))
		}
	} else {
		paths = append(paths,
			filepath.Join("/etc/xdg", appName),
			filepath.Join("/etc", appName),
		)
	}

	return paths
}
