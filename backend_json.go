// FILE: lixenwraith/registry/backend_json.go
package registry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ArrayBackend loads *.json files from a directory tree. Global and local
// configuration are combined with MergeAppend: a scalar set in both becomes a
// list holding the global value followed by the local one.
type ArrayBackend struct {
	treeBackend
	path string
}

// NewArrayBackend loads the configuration directory at path.
func NewArrayBackend(path string, opts ...LoaderOption) (*ArrayBackend, error) {
	treeOpts := applyLoaderOptions(TreeOptions{
		Extensions: []string{"json"},
		Parse:      parseJSON,
		Merge:      MergeAppend,
	}, opts)

	config, err := LoadTree(path, treeOpts)
	if err != nil {
		return nil, err
	}
	treeOpts.Logger.Debug().Str("path", path).Int("domains", len(config)).Msg("loaded json config")

	return &ArrayBackend{treeBackend: treeBackend{config: config}, path: path}, nil
}

// Path returns the directory the backend was loaded from
func (b *ArrayBackend) Path() string {
	return b.path
}

// parseJSON decodes one JSON object, keeping integer precision. Empty files
// yield an empty tree.
func parseJSON(_ string, data []byte) (Tree, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw any
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return make(Tree), nil
		}
		return nil, err
	}

	tree, ok := normalizeValue(raw).(Tree)
	if !ok {
		return nil, fmt.Errorf("top-level JSON value must be an object, got %T", raw)
	}
	return tree, nil
}
