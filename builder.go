// File: lixenwraith/registry/builder.go
package registry

import (
	"errors"
	"fmt"
)

// Builder provides a fluent interface for assembling a backend chain.
// Backends are registered in the order the With* calls are made, so the first
// one becomes the primary backend. Load errors are collected and returned by Build.
type Builder struct {
	backends   []Backend
	opts       []Option
	loaderOpts []LoaderOption
	err        error
}

// NewBuilder creates a new registry builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLoaderOptions sets options for the file-based backends added after this call
func (b *Builder) WithLoaderOptions(opts ...LoaderOption) *Builder {
	b.loaderOpts = append(b.loaderOpts, opts...)
	return b
}

// WithOptions adds registry options
func (b *Builder) WithOptions(opts ...Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

// WithDumpDir enables the runtime dump into dir
func (b *Builder) WithDumpDir(dir string) *Builder {
	return b.WithOptions(WithDumpDir(dir))
}

// WithBackend adds an already constructed backend
func (b *Builder) WithBackend(backend Backend) *Builder {
	if backend != nil {
		b.backends = append(b.backends, backend)
	}
	return b
}

// WithArgs adds a CLI backend parsed from args
func (b *Builder) WithArgs(args []string) *Builder {
	mapping, err := ParseArgs(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	return b.WithBackend(NewCLIBackend(mapping))
}

// WithEnv adds an environment backend with the given variable prefix
func (b *Builder) WithEnv(prefix string) *Builder {
	return b.WithBackend(NewEnvBackend(prefix))
}

// WithArrayDir adds a JSON directory backend
func (b *Builder) WithArrayDir(path string) *Builder {
	backend, err := NewArrayBackend(path, b.loaderOpts...)
	return b.add(backend, err)
}

// WithTOMLDir adds a TOML directory backend
func (b *Builder) WithTOMLDir(path string) *Builder {
	backend, err := NewTOMLBackend(path, b.loaderOpts...)
	return b.add(backend, err)
}

// WithYAMLDir adds a YAML directory backend
func (b *Builder) WithYAMLDir(path string) *Builder {
	backend, err := NewYAMLBackend(path, b.loaderOpts...)
	return b.add(backend, err)
}

// WithXMLDir adds an XML directory backend
func (b *Builder) WithXMLDir(path string) *Builder {
	backend, err := NewXMLBackend(path, b.loaderOpts...)
	return b.add(backend, err)
}

// add records a constructor result. Typed nil pointers never reach the chain.
func (b *Builder) add(backend Backend, err error) *Builder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	return b.WithBackend(backend)
}

// Build creates the Registry. Backends of a kind already in the chain are skipped.
func (b *Builder) Build() (*Registry, error) {
	if b.err != nil {
		return nil, fmt.Errorf("failed to load backends: %w", b.err)
	}
	if len(b.backends) == 0 {
		return nil, fmt.Errorf("no backends configured")
	}

	r, err := New(b.backends[0], b.opts...)
	if err != nil {
		return nil, err
	}
	for _, backend := range b.backends[1:] {
		r.AddBackend(backend)
	}
	return r, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Registry {
	r, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("registry build failed: %v", err))
	}
	return r
}

// BuildAndDecode builds the registry and decodes domain into target
func (b *Builder) BuildAndDecode(domain string, target any) (*Registry, error) {
	r, err := b.Build()
	if err != nil {
		return nil, err
	}
	if err := r.Decode(domain, target); err != nil {
		return nil, fmt.Errorf("failed to decode domain %q: %w", domain, err)
	}
	return r, nil
}
