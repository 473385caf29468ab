// FILE: lixenwraith/registry/backend_yaml.go
package registry

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLBackend loads *.yml and *.yaml files from a directory tree. Local
// configuration strictly replaces global values (MergeReplace).
//
// A value may declare its type with a two-key mapping:
//
//	timeout:
//	  value: 30
//	  type: int
//
// Types follow the XML format rules; plain values keep their YAML type.
type YAMLBackend struct {
	treeBackend
	path string
}

// NewYAMLBackend loads the configuration directory at path.
func NewYAMLBackend(path string, opts ...LoaderOption) (*YAMLBackend, error) {
	treeOpts := applyLoaderOptions(TreeOptions{
		Extensions: []string{"yaml", "yml"},
		Merge:      MergeReplace,
	}, opts)
	constants := treeOpts.Constants
	treeOpts.Parse = func(_ string, data []byte) (Tree, error) {
		return parseYAML(data, constants)
	}

	config, err := LoadTree(path, treeOpts)
	if err != nil {
		return nil, err
	}
	treeOpts.Logger.Debug().Str("path", path).Int("domains", len(config)).Msg("loaded yaml config")

	return &YAMLBackend{treeBackend: treeBackend{config: config}, path: path}, nil
}

// Path returns the directory the backend was loaded from
func (b *YAMLBackend) Path() string {
	return b.path
}

func parseYAML(data []byte, constants map[string]any) (Tree, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return make(Tree), nil
	}

	tree, ok := normalizeValue(raw).(Tree)
	if !ok {
		return nil, fmt.Errorf("top-level YAML value must be a mapping, got %T", raw)
	}

	resolved, err := resolveTypedNodes(tree, constants)
	if err != nil {
		return nil, err
	}
	return resolved.(Tree), nil
}

// resolveTypedNodes replaces {value, type} mappings with their coerced value.
func resolveTypedNodes(value any, constants map[string]any) (any, error) {
	switch v := value.(type) {
	case Tree:
		if typ, ok := typedNode(v); ok {
			coerced, err := coerceTyped(typ, scalarText(v["value"]), constants)
			if err != nil {
				return nil, err
			}
			return coerced, nil
		}
		for key, item := range v {
			resolved, err := resolveTypedNodes(item, constants)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			v[key] = resolved
		}
		return v, nil
	case []any:
		for i, item := range v {
			resolved, err := resolveTypedNodes(item, constants)
			if err != nil {
				return nil, err
			}
			v[i] = resolved
		}
		return v, nil
	default:
		return value, nil
	}
}

// typedNode reports whether node is exactly {value: <scalar>, type: <string>}.
func typedNode(node Tree) (string, bool) {
	if len(node) != 2 {
		return "", false
	}
	typ, ok := node["type"].(string)
	if !ok {
		return "", false
	}
	value, ok := node["value"]
	if !ok {
		return "", false
	}
	switch value.(type) {
	case Tree, []any:
		return "", false
	}
	return typ, true
}
