// FILE: lixenwraith/registry/backend_null.go
package registry

import "fmt"

// NullBackend holds no configuration at all.
type NullBackend struct{}

func NewNullBackend() *NullBackend { return &NullBackend{} }

func (NullBackend) GetConfigValue(_, _ string, def any) any { return def }

func (NullBackend) ClassIsInRegistry(string) bool { return false }

func (NullBackend) GetClassConfigValues(string) Tree { return make(Tree) }

// StubBackend refuses every operation. It marks a configuration source that is
// declared but not available; any call panics with an error wrapping
// ErrNotImplemented.
type StubBackend struct {
	name string
}

// NewStubBackend returns a stub; name identifies it in panic messages.
func NewStubBackend(name string) *StubBackend { return &StubBackend{name: name} }

func (b *StubBackend) GetConfigValue(domain, key string, _ any) any {
	panic(b.refuse("GetConfigValue"))
}

func (b *StubBackend) ClassIsInRegistry(domain string) bool {
	panic(b.refuse("ClassIsInRegistry"))
}

func (b *StubBackend) GetClassConfigValues(domain string) Tree {
	panic(b.refuse("GetClassConfigValues"))
}

func (b *StubBackend) refuse(op string) error {
	return fmt.Errorf("%w: %s.%s", ErrNotImplemented, b.name, op)
}
