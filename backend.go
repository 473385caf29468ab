// FILE: lixenwraith/registry/backend.go
package registry

import "reflect"

// Tree is a nested configuration mapping. Leaves are string, int64, float64,
// bool, nil, []any or another Tree. At the top level keys are domain names.
type Tree = map[string]any

// Backend is a configuration source. Every implementation loads its data once
// at construction and is read-only afterwards, so all methods are safe for
// concurrent use and have no side effects.
type Backend interface {
	// GetConfigValue returns the value stored for domain.key, or def if absent.
	GetConfigValue(domain, key string, def any) any
	// ClassIsInRegistry reports whether the backend holds any settings for domain.
	ClassIsInRegistry(domain string) bool
	// GetClassConfigValues returns a copy of the settings for domain, or an
	// empty tree if the domain is absent.
	GetClassConfigValues(domain string) Tree
}

// KindOf returns the backend kind: the name of its implementation type.
// A registry holds at most one backend per kind.
func KindOf(b Backend) string {
	if b == nil {
		return "<nil>"
	}
	return reflect.TypeOf(b).String()
}

// treeBackend implements Backend as direct lookups into a loaded tree.
// Concrete backends embed it so that each keeps a distinct kind.
type treeBackend struct {
	config Tree
}

func (b *treeBackend) GetConfigValue(domain, key string, def any) any {
	settings, ok := b.domain(domain)
	if !ok {
		return def
	}
	value, exists := settings[key]
	if !exists || value == nil {
		return def
	}
	return cloneValue(value)
}

func (b *treeBackend) ClassIsInRegistry(domain string) bool {
	_, ok := b.domain(domain)
	return ok
}

func (b *treeBackend) GetClassConfigValues(domain string) Tree {
	settings, ok := b.domain(domain)
	if !ok {
		return make(Tree)
	}
	return cloneTree(settings)
}

// domain returns the settings tree for a domain. Scalar top-level entries are
// not domains.
func (b *treeBackend) domain(name string) (Tree, bool) {
	settings, ok := b.config[name].(Tree)
	return settings, ok
}
