// File: lixenwraith/registry/tree.go
package registry

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// cloneTree returns a deep copy of a tree.
func cloneTree(src Tree) Tree {
	dst := make(Tree, len(src))
	for key, value := range src {
		dst[key] = cloneValue(value)
	}
	return dst
}

// cloneValue deep-copies nested trees and lists, scalars are returned as is.
func cloneValue(value any) any {
	switch v := value.(type) {
	case Tree:
		return cloneTree(v)
	case []any:
		list := make([]any, len(v))
		for i, item := range v {
			list[i] = cloneValue(item)
		}
		return list
	default:
		return value
	}
}

// normalizeValue converts parser output into canonical tree values: integers
// become int64, nested maps become Tree and typed slices become []any.
func normalizeValue(value any) any {
	switch v := value.(type) {
	case Tree:
		out := make(Tree, len(v))
		for key, item := range v {
			out[key] = normalizeValue(item)
		}
		return out
	case map[any]any:
		out := make(Tree, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = normalizeValue(item)
		}
		return out
	case []map[string]any:
		list := make([]any, len(v))
		for i, item := range v {
			list[i] = normalizeValue(item)
		}
		return list
	case []any:
		list := make([]any, len(v))
		for i, item := range v {
			list[i] = normalizeValue(item)
		}
		return list
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case uint64:
		if v <= uint64(^uint64(0)>>1) {
			return int64(v)
		}
		return float64(v)
	case float32:
		return float64(v)
	default:
		return value
	}
}

// flattenTree converts a nested tree to a flat map with dot-notation paths.
func flattenTree(nested Tree, prefix string) map[string]any {
	flat := make(map[string]any)

	for key, value := range nested {
		newPath := key
		if prefix != "" {
			newPath = prefix + "." + key
		}

		if nestedMap, isMap := value.(Tree); isMap && len(nestedMap) > 0 {
			for subPath, subValue := range flattenTree(nestedMap, newPath) {
				flat[subPath] = subValue
			}
		} else {
			flat[newPath] = value
		}
	}

	return flat
}

// sortedPaths returns the flattened paths of a tree in lexical order.
func sortedPaths(nested Tree) []string {
	flat := flattenTree(nested, "")
	paths := make([]string, 0, len(flat))
	for path := range flat {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// navigateToPath traverses a nested tree to reach the specified path
func navigateToPath(nested Tree, path string) any {
	path = strings.Trim(path, ".")
	if path == "" {
		return nested
	}

	current := any(nested)
	for _, segment := range strings.Split(path, ".") {
		currentMap, ok := current.(Tree)
		if !ok {
			return nil
		}

		value, exists := currentMap[segment]
		if !exists {
			return nil
		}
		current = value
	}

	return current
}
