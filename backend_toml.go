// FILE: lixenwraith/registry/backend_toml.go
package registry

import (
	"github.com/BurntSushi/toml"
)

// TOMLBackend loads *.toml files from a directory tree. Local configuration
// strictly replaces global values (MergeReplace). Domains containing dots must
// be quoted table names, e.g. ["app.storage"].
type TOMLBackend struct {
	treeBackend
	path string
}

// NewTOMLBackend loads the configuration directory at path.
func NewTOMLBackend(path string, opts ...LoaderOption) (*TOMLBackend, error) {
	treeOpts := applyLoaderOptions(TreeOptions{
		Extensions: []string{"toml"},
		Parse:      parseTOML,
		Merge:      MergeReplace,
	}, opts)

	config, err := LoadTree(path, treeOpts)
	if err != nil {
		return nil, err
	}
	treeOpts.Logger.Debug().Str("path", path).Int("domains", len(config)).Msg("loaded toml config")

	return &TOMLBackend{treeBackend: treeBackend{config: config}, path: path}, nil
}

// Path returns the directory the backend was loaded from
func (b *TOMLBackend) Path() string {
	return b.path
}

func parseTOML(_ string, data []byte) (Tree, error) {
	raw := make(map[string]any)
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return normalizeValue(raw).(Tree), nil
}
