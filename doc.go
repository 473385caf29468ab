// File: lixenwraith/registry/doc.go

// Package registry resolves configuration for named domains by consulting an
// ordered chain of backends.
//
// Features:
//   - Directory backends for JSON, TOML, YAML and XML with global/local overrides
//   - Environment and command-line backends
//   - Priority lookup of single values and cross-backend merge of whole domains
//   - Struct decoding and typed accessors
//   - Optional runtime dump recording which backend changed which values
//
// Directory layout:
//
//	config/
//	  global.json            global (safe to version-control)
//	  local.json             local override
//	  storage/
//	    session.json         global
//	    session.local.json   local override
//
// Quick Start:
//
//	reg, err := registry.NewBuilder().
//	    WithArgs(os.Args[1:]).
//	    WithEnv("MYAPP_").
//	    WithArrayDir("./config").
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	host := reg.GetConfigValue("app.db", "host", "localhost")
//	all := reg.GetClassConfigValues("app.db")
//
// Lookup Semantics:
// GetConfigValue returns the value of the first backend (in the order added)
// that differs from the default. GetClassConfigValues merges every backend
// holding the domain; later backends overwrite earlier ones at any path.
//
// Backends load everything at construction and are immutable afterwards.
// AddBackend is guarded by a mutex; queries may run concurrently.
package registry
