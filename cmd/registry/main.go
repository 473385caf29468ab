// FILE: cmd/registry/main.go
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/registry"
)

func main() {
	app := &cli.App{
		Name:      "registry",
		Usage:     "resolve configuration domains from a backend chain",
		ArgsUsage: "<domain> [key]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "set", Usage: "override `domain.key=value` (highest priority)"},
			&cli.StringFlag{Name: "env-prefix", Usage: "consult environment variables with this `prefix`"},
			&cli.StringFlag{Name: "json", Usage: "JSON config `dir`"},
			&cli.StringFlag{Name: "toml", Usage: "TOML config `dir`"},
			&cli.StringFlag{Name: "yaml", Usage: "YAML config `dir`"},
			&cli.StringFlag{Name: "xml", Usage: "XML config `dir`"},
			&cli.StringFlag{Name: "discover", Usage: "discover the JSON config dir for application `name`"},
			&cli.StringFlag{Name: "dump-dir", Usage: "write the runtime dump into `dir`", EnvVars: []string{"REGISTRY_DUMP_DIR"}},
			&cli.StringSliceFlag{Name: "require", Usage: "fail unless the domain resolves `path`"},
			&cli.StringFlag{Name: "format", Value: "yaml", Usage: "output format: yaml, json or toml"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "debug logging"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.ShowAppHelp(c)
	}
	domain := c.Args().Get(0)

	level := zerolog.InfoLevel
	if c.Bool("verbose") {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	reg, err := buildRegistry(c, logger)
	if err != nil {
		return err
	}
	logger.Debug().Msg(reg.Debug())

	var out any
	if c.NArg() > 1 {
		key := c.Args().Get(1)
		out = reg.GetConfigValue(domain, key, nil)
		if out == nil {
			return fmt.Errorf("%w: %s.%s", registry.ErrKeyNotFound, domain, key)
		}
	} else {
		if !reg.ClassIsInRegistry(domain) {
			logger.Warn().Str("domain", domain).Msg("domain not found in any backend")
		}
		if err := reg.Validate(domain, c.StringSlice("require")...); err != nil {
			return err
		}
		if c.String("format") == "toml" {
			return reg.Dump(domain, c.App.Writer)
		}
		out = reg.GetClassConfigValues(domain)
	}

	return render(c.App.Writer, c.String("format"), out)
}

// buildRegistry assembles the chain: --set, environment, then the directories
// in the order json, toml, yaml, xml.
func buildRegistry(c *cli.Context, logger zerolog.Logger) (*registry.Registry, error) {
	builder := registry.NewBuilder().
		WithLoaderOptions(registry.WithLoaderLogger(logger)).
		WithOptions(registry.WithLogger(logger))

	if sets := c.StringSlice("set"); len(sets) > 0 {
		args := make([]string, 0, len(sets))
		for _, set := range sets {
			args = append(args, "--"+set)
		}
		builder.WithArgs(args)
	}
	if c.IsSet("env-prefix") {
		builder.WithEnv(c.String("env-prefix"))
	}

	jsonDir := c.String("json")
	if jsonDir == "" && c.String("discover") != "" {
		dir, err := registry.DiscoverConfigDir(registry.DefaultDirDiscoveryOptions(c.String("discover")), c.Args().Slice())
		if err != nil {
			return nil, err
		}
		jsonDir = dir
	}
	if jsonDir != "" {
		builder.WithArrayDir(jsonDir)
	}
	if dir := c.String("toml"); dir != "" {
		builder.WithTOMLDir(dir)
	}
	if dir := c.String("yaml"); dir != "" {
		builder.WithYAMLDir(dir)
	}
	if dir := c.String("xml"); dir != "" {
		builder.WithXMLDir(dir)
	}
	if dir := c.String("dump-dir"); dir != "" {
		builder.WithDumpDir(dir)
	}

	return builder.Build()
}

func render(w io.Writer, format string, value any) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(value)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		return encoder.Encode(value)
	case "toml":
		return fmt.Errorf("toml output requires a whole domain")
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
