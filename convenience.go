// FILE: lixenwraith/registry/convenience.go
package registry

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Quick creates a registry from command-line arguments, environment variables
// with envPrefix, and a JSON config directory, in that priority order.
// An empty configDir skips the directory backend.
func Quick(envPrefix, configDir string, opts ...Option) (*Registry, error) {
	builder := NewBuilder().
		WithArgs(os.Args[1:]).
		WithEnv(envPrefix).
		WithOptions(opts...)

	if configDir != "" {
		builder.WithArrayDir(configDir)
	}

	return builder.Build()
}

// MustQuick is like Quick but panics on error
func MustQuick(envPrefix, configDir string, opts ...Option) *Registry {
	r, err := Quick(envPrefix, configDir, opts...)
	if err != nil {
		panic(fmt.Sprintf("registry creation failed: %v", err))
	}
	return r
}

// Validate checks that every required dot-separated path resolves to a non-nil
// value in the merged settings of domain.
func (r *Registry) Validate(domain string, required ...string) error {
	values := r.GetClassConfigValues(domain)

	var missing []string
	for _, path := range required {
		if navigateToPath(values, path) == nil {
			missing = append(missing, path)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration in %q: %s", domain, strings.Join(missing, ", "))
	}
	return nil
}

// Dump writes the merged settings of domain to w in TOML format
func (r *Registry) Dump(domain string, w io.Writer) error {
	encoder := toml.NewEncoder(w)
	if err := encoder.Encode(r.GetClassConfigValues(domain)); err != nil {
		return fmt.Errorf("failed to encode domain %q: %w", domain, err)
	}
	return nil
}
