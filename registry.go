// FILE: lixenwraith/registry/registry.go
package registry

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Registry chains backends in priority order. The backend given to New is the
// primary one; more can be appended with AddBackend but never removed.
type Registry struct {
	backends []Backend
	mutex    sync.RWMutex

	options Options
	logger  *zerolog.Logger
	dump    *dumpSink // nil when the runtime dump is disabled
}

// New creates a registry with primary as its highest-priority backend.
// When a dump directory is configured, output of a previous run is removed.
func New(primary Backend, opts ...Option) (*Registry, error) {
	if primary == nil {
		return nil, fmt.Errorf("registry requires a primary backend")
	}

	options, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	r := &Registry{
		options: options,
		logger:  options.Logger,
	}
	if options.DumpDir != "" {
		r.dump = newDumpSink(options.DumpDir, options.TraceFile, options.Logger)
	}

	r.AddBackend(primary)
	return r, nil
}

// AddBackend appends b with the lowest priority. It returns true if b was
// added and false if a backend of the same kind is already registered.
func (r *Registry) AddBackend(b Backend) bool {
	if b == nil {
		return false
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	kind := reflect.TypeOf(b)
	for _, registered := range r.backends {
		if reflect.TypeOf(registered) == kind {
			r.logger.Debug().Str("backend", KindOf(b)).Msg("backend kind already registered")
			return false
		}
	}

	r.backends = append(r.backends, b)
	return true
}

// Backends returns the registered backends in priority order.
func (r *Registry) Backends() []Backend {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	backends := make([]Backend, len(r.backends))
	copy(backends, r.backends)
	return backends
}

// GetConfigValue asks the backends in priority order and returns the first
// value that differs from def, or def if none does. A backend storing a value
// equal to def cannot be told apart from one that lacks the key.
func (r *Registry) GetConfigValue(domain, key string, def any) any {
	for _, b := range r.Backends() {
		value := b.GetConfigValue(domain, key, def)
		if !reflect.DeepEqual(value, def) {
			return value
		}
	}
	return def
}

// ClassIsInRegistry reports whether any backend holds settings for domain.
func (r *Registry) ClassIsInRegistry(domain string) bool {
	for _, b := range r.Backends() {
		if b.ClassIsInRegistry(domain) {
			return true
		}
	}
	return false
}

// GetClassConfigValues merges the settings for domain from every backend that
// holds it, in priority order with MergeReplace: values of later backends
// overwrite earlier ones at any path. When the runtime dump is enabled the
// contributing backends and the result are written to it.
func (r *Registry) GetClassConfigValues(domain string) Tree {
	result := make(Tree)
	var records []provenance

	for _, b := range r.Backends() {
		if !b.ClassIsInRegistry(domain) {
			continue
		}
		partial := b.GetClassConfigValues(domain)
		merged := MergeReplace(result, partial)
		if !reflect.DeepEqual(merged, result) {
			records = append(records, provenance{Backend: KindOf(b), Values: partial})
		}
		result = merged
	}

	if r.dump != nil {
		if err := r.dump.write(domain, records, result); err != nil {
			r.logger.Warn().Err(err).Str("domain", domain).Msg("runtime dump failed")
		}
	}

	return result
}

// Debug returns a formatted list of the backends in priority order
func (r *Registry) Debug() string {
	var b strings.Builder
	b.WriteString("Registry backends (highest priority first):\n")
	for i, backend := range r.Backends() {
		b.WriteString(fmt.Sprintf("  %d: %s\n", i, KindOf(backend)))
	}
	if r.dump != nil {
		b.WriteString(fmt.Sprintf("Runtime dump: %s\n", r.dump.dir))
	}
	return b.String()
}
