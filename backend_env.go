// FILE: lixenwraith/registry/backend_env.go
package registry

import (
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvBackend serves configuration from a snapshot of the environment taken at
// construction. Domain app.storage and key path with prefix "MYAPP_" map to
// MYAPP_APP_STORAGE_PATH. Names are matched in upper case; values are strings.
type EnvBackend struct {
	prefix string
	vars   map[string]string
}

// NewEnvBackend snapshots the process environment.
func NewEnvBackend(prefix string) *EnvBackend {
	return NewEnvBackendFrom(prefix, os.Environ())
}

// NewEnvBackendFrom snapshots environ, a list of KEY=value entries.
func NewEnvBackendFrom(prefix string, environ []string) *EnvBackend {
	vars := make(map[string]string)
	for name, value := range env.ToMap(environ) {
		vars[strings.ToUpper(name)] = value
	}
	return &EnvBackend{prefix: strings.ToUpper(prefix), vars: vars}
}

// EnvVarName returns the variable consulted for domain.key
func (b *EnvBackend) EnvVarName(domain, key string) string {
	return b.domainPrefix(domain) + strings.ToUpper(key)
}

func (b *EnvBackend) GetConfigValue(domain, key string, def any) any {
	if value, ok := b.vars[b.EnvVarName(domain, key)]; ok {
		return value
	}
	return def
}

func (b *EnvBackend) ClassIsInRegistry(domain string) bool {
	prefix := b.domainPrefix(domain)
	for name := range b.vars {
		if strings.HasPrefix(name, prefix) && len(name) > len(prefix) {
			return true
		}
	}
	return false
}

// GetClassConfigValues returns every variable of the domain, keyed by the
// lower-cased remainder of its name.
func (b *EnvBackend) GetClassConfigValues(domain string) Tree {
	prefix := b.domainPrefix(domain)
	values := make(Tree)
	for name, value := range b.vars {
		if strings.HasPrefix(name, prefix) && len(name) > len(prefix) {
			values[strings.ToLower(strings.TrimPrefix(name, prefix))] = value
		}
	}
	return values
}

// domainPrefix converts a domain to its variable name prefix, e.g.
// app.storage -> MYAPP_APP_STORAGE_.
func (b *EnvBackend) domainPrefix(domain string) string {
	converted := strings.NewReplacer(".", "_", "/", "_", "\\", "_", "-", "_").Replace(domain)
	return b.prefix + strings.ToUpper(converted) + "_"
}
