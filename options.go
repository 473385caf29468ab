// FILE: lixenwraith/registry/options.go
package registry

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Options configures a Registry
type Options struct {
	// DumpDir enables the runtime dump when non-empty. The directory is
	// removed when the registry is created.
	DumpDir string

	// TraceFile is the provenance trace file name inside DumpDir
	TraceFile string

	// TagName is the struct tag used by Decode
	TagName string

	// Logger receives warnings about failed dump writes
	Logger *zerolog.Logger
}

// Option modifies registry options
type Option func(*Options) error

// DefaultOptions returns the options used for any field left unset
func DefaultOptions() Options {
	nop := zerolog.Nop()
	return Options{
		TraceFile: "trace.log",
		TagName:   "config",
		Logger:    &nop,
	}
}

// WithDumpDir enables the runtime dump into dir
func WithDumpDir(dir string) Option {
	return func(o *Options) error {
		o.DumpDir = dir
		return nil
	}
}

// WithTraceFile sets the provenance trace file name
func WithTraceFile(name string) Option {
	return func(o *Options) error {
		o.TraceFile = name
		return nil
	}
}

// WithTagName sets the struct tag used by Decode
func WithTagName(tag string) Option {
	return func(o *Options) error {
		o.TagName = tag
		return nil
	}
}

// WithLogger sets the registry logger
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) error {
		o.Logger = &logger
		return nil
	}
}

// WithOptions overrides options with the non-zero fields of src
func WithOptions(src Options) Option {
	return func(o *Options) error {
		if err := mergo.Merge(o, src, mergo.WithOverride); err != nil {
			return fmt.Errorf("failed to merge registry options: %w", err)
		}
		return nil
	}
}

// envOptions mirrors the env-settable subset of Options
type envOptions struct {
	DumpDir   string `env:"REGISTRY_DUMP_DIR"`
	TraceFile string `env:"REGISTRY_TRACE_FILE"`
	TagName   string `env:"REGISTRY_TAG_NAME"`
}

// OptionsFromEnv reads REGISTRY_DUMP_DIR, REGISTRY_TRACE_FILE and
// REGISTRY_TAG_NAME. Unset variables leave the fields empty.
func OptionsFromEnv() (Options, error) {
	var parsed envOptions
	if err := env.Parse(&parsed); err != nil {
		return Options{}, fmt.Errorf("error getting env options: %w", err)
	}
	return Options{
		DumpDir:   parsed.DumpDir,
		TraceFile: parsed.TraceFile,
		TagName:   parsed.TagName,
	}, nil
}

// buildOptions applies opts in order and fills unset fields from DefaultOptions.
func buildOptions(opts []Option) (Options, error) {
	var options Options
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&options); err != nil {
			return Options{}, err
		}
	}

	if err := mergo.Merge(&options, DefaultOptions()); err != nil {
		return Options{}, fmt.Errorf("error merging default options: %w", err)
	}
	return options, nil
}
