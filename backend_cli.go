// FILE: lixenwraith/registry/backend_cli.go
package registry

import (
	"fmt"
	"strings"
)

// CLIBackend serves configuration from a domain -> settings mapping, usually
// built from command-line arguments with ParseArgs.
type CLIBackend struct {
	treeBackend
}

// NewCLIBackend copies mapping into a new backend.
func NewCLIBackend(mapping map[string]Tree) *CLIBackend {
	config := make(Tree, len(mapping))
	for domain, settings := range mapping {
		config[domain] = cloneTree(settings)
	}
	return &CLIBackend{treeBackend: treeBackend{config: config}}
}

// ParseArgs builds a CLI mapping from arguments of the form
// "--domain.key=value", "--domain.key value" or "--domain.key" (true).
// The last dot separates the key from the domain. Non-flag arguments are skipped.
func ParseArgs(args []string) (map[string]Tree, error) {
	result := make(map[string]Tree)
	i := 0
	for i < len(args) {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			i++
			continue
		}

		argContent := strings.TrimPrefix(arg, "--")
		if argContent == "" {
			// "--" separator
			i++
			continue
		}

		var keyPath, valueStr string
		if name, value, found := strings.Cut(argContent, "="); found {
			keyPath, valueStr = name, value
			i++
		} else {
			keyPath = argContent
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "--") {
				valueStr = "true"
				i++
			} else {
				valueStr = args[i+1]
				i += 2
			}
		}

		dot := strings.LastIndex(keyPath, ".")
		if dot <= 0 || dot == len(keyPath)-1 {
			return nil, fmt.Errorf("%w: argument %q is not of the form --domain.key", ErrCLIParse, arg)
		}
		domain, key := keyPath[:dot], keyPath[dot+1:]

		if result[domain] == nil {
			result[domain] = make(Tree)
		}
		result[domain][key] = parseValue(valueStr)
	}

	return result, nil
}

// parseValue recognizes true/false and strips surrounding quotes; everything
// else stays a string.
func parseValue(s string) any {
	if s == "true" {
		return true
	}
	if s == "false" {
		return false
	}

	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}

	return s
}
