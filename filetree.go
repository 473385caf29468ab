// FILE: lixenwraith/registry/filetree.go
package registry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// ParseFunc parses the content of one configuration file into a partial tree
// keyed by domain at the top level.
type ParseFunc func(path string, data []byte) (Tree, error)

// TreeOptions configures a directory tree load.
type TreeOptions struct {
	// Extensions recognized by the loader, without the leading dot
	Extensions []string

	// Parse converts a file into a partial tree
	Parse ParseFunc

	// Merge folds partial trees and finally combines global with local
	Merge MergeStrategy

	// MaxFileSize rejects larger files when positive
	MaxFileSize int64

	// Constants resolves type="constant" values in typed formats
	Constants map[string]any

	// Logger receives debug output about folded files
	Logger *zerolog.Logger
}

// LoaderOption customizes the TreeOptions of a file-based backend
type LoaderOption func(*TreeOptions)

// WithMaxFileSize rejects configuration files larger than n bytes
func WithMaxFileSize(n int64) LoaderOption {
	return func(o *TreeOptions) {
		o.MaxFileSize = n
	}
}

// WithConstants sets the symbolic constants available to typed values
func WithConstants(constants map[string]any) LoaderOption {
	return func(o *TreeOptions) {
		o.Constants = constants
	}
}

// WithLoaderLogger sets the logger used while loading
func WithLoaderLogger(logger zerolog.Logger) LoaderOption {
	return func(o *TreeOptions) {
		o.Logger = &logger
	}
}

func applyLoaderOptions(base TreeOptions, opts []LoaderOption) TreeOptions {
	for _, opt := range opts {
		opt(&base)
	}
	if base.Logger == nil {
		nop := zerolog.Nop()
		base.Logger = &nop
	}
	return base
}

type fileClass int

const (
	fileSkipped fileClass = iota
	fileGlobal
	fileLocal
)

// classifyFile sorts a file name into global or local configuration.
// Local files are named local.<ext> or end in .local.<ext>.
func classifyFile(name string, extensions []string) fileClass {
	for _, ext := range extensions {
		if !strings.HasSuffix(name, "."+ext) {
			continue
		}
		if name == "local."+ext || strings.HasSuffix(name, ".local."+ext) {
			return fileLocal
		}
		return fileGlobal
	}
	return fileSkipped
}

// LoadTree walks root recursively and returns the combined configuration tree.
// Entries are visited in lexical order. Global and local files are folded
// separately and combined with opts.Merge at the end, local taking precedence.
func LoadTree(root string, opts TreeOptions) (Tree, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrConfigPathNotFound, root)
	}
	if opts.Merge == nil {
		opts.Merge = MergeReplace
	}

	global, local, err := walkTree(root, opts)
	if err != nil {
		return nil, err
	}

	return opts.Merge(global, local), nil
}

// walkTree folds the files of dir and its subdirectories into a global and a
// local tree.
func walkTree(dir string, opts TreeOptions) (Tree, Tree, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read config directory '%s': %w", dir, err)
	}

	global, local := make(Tree), make(Tree)
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			subGlobal, subLocal, err := walkTree(path, opts)
			if err != nil {
				return nil, nil, err
			}
			global = opts.Merge(global, subGlobal)
			local = opts.Merge(local, subLocal)
			continue
		}

		class := classifyFile(entry.Name(), opts.Extensions)
		if class == fileSkipped {
			continue
		}

		partial, err := loadFile(path, opts)
		if err != nil {
			return nil, nil, err
		}
		if partial == nil {
			continue
		}

		if class == fileLocal {
			local = opts.Merge(local, partial)
		} else {
			global = opts.Merge(global, partial)
		}
		if opts.Logger != nil {
			opts.Logger.Debug().Str("file", path).Bool("local", class == fileLocal).Msg("folded config file")
		}
	}

	return global, local, nil
}

// loadFile reads and parses one file. Non-regular files yield a nil tree.
func loadFile(path string, opts TreeOptions) (Tree, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file '%s': %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, nil
	}
	if opts.MaxFileSize > 0 && info.Size() > opts.MaxFileSize {
		return nil, fmt.Errorf("%w: '%s' is larger than %d bytes", ErrFileTooLarge, path, opts.MaxFileSize)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file '%s': %w", path, err)
	}
	defer file.Close()

	var reader io.Reader = file
	if opts.MaxFileSize > 0 {
		reader = io.LimitReader(file, opts.MaxFileSize)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	partial, err := opts.Parse(path, data)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s': %w", ErrParse, path, err)
	}
	return partial, nil
}
