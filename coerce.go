// FILE: lixenwraith/registry/coerce.go
package registry

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	integerPattern = regexp.MustCompile(`^\s*[+-]?\d+\s*$`)
	numericPattern = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?\s*$`)
)

// coerceTyped converts text according to a declared value type.
// "string" returns the text unchanged; callers that need to protect it from
// later numeric coercion wrap it themselves.
func coerceTyped(typ, text string, constants map[string]any) (any, error) {
	switch typ {
	case "constant", "const":
		if text == "" {
			return nil, nil
		}
		value, ok := constants[text]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUndefinedConstant, text)
		}
		return value, nil
	case "integer", "int":
		i, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %q to integer: %w", text, err)
		}
		return i, nil
	case "double", "float":
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %q to float: %w", text, err)
		}
		return f, nil
	case "boolean", "bool":
		switch strings.ToLower(text) {
		case "true", "1":
			return true, nil
		case "false", "0":
			return false, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrInvalidBooleanLiteral, text)
	case "string":
		return text, nil
	case "null", "NULL":
		return nil, nil
	case "array":
		return make(Tree), nil
	case "resource", "object":
		return nil, fmt.Errorf("%w: %s", ErrDisallowedType, typ)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, typ)
	}
}

// coerceUntyped interprets text without a declared type: true/false in any
// case become booleans, everything else stays a string.
func coerceUntyped(text string) any {
	switch {
	case strings.EqualFold(text, "true"):
		return true
	case strings.EqualFold(text, "false"):
		return false
	default:
		return text
	}
}

// parseNumeric converts numeric-looking strings to int64 or float64.
func parseNumeric(s string) (any, bool) {
	if !numericPattern.MatchString(s) {
		return nil, false
	}
	trimmed := strings.TrimSpace(s)
	if integerPattern.MatchString(s) {
		if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return i, true
		}
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil, false
	}
	return f, true
}

// scalarText renders a scalar as the text a typed value would carry.
func scalarText(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
