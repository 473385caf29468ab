// File: lixenwraith/registry/type.go
package registry

import (
	"fmt"
	"reflect"
	"strconv"
)

// absent is the default passed to GetConfigValue to detect missing keys.
// No backend stores it, so it can only come back as the default itself.
type absent struct{}

// lookup returns the resolved value of domain.key or ErrKeyNotFound.
func (r *Registry) lookup(domain, key string) (any, error) {
	val := r.GetConfigValue(domain, key, absent{})
	if _, missing := val.(absent); missing {
		return nil, fmt.Errorf("%w: %s.%s", ErrKeyNotFound, domain, key)
	}
	return val, nil
}

// String retrieves a string value of domain.key.
// Attempts conversion from common types if the stored value isn't already a string.
func (r *Registry) String(domain, key string) (string, error) {
	val, err := r.lookup(domain, key)
	if err != nil {
		return "", err
	}

	switch v := val.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("cannot convert type %T to string for %s.%s", val, domain, key)
	}
}

// Int64 retrieves an int64 value of domain.key.
// Attempts conversion from numeric types, parsable strings, and booleans.
func (r *Registry) Int64(domain, key string) (int64, error) {
	val, err := r.lookup(domain, key)
	if err != nil {
		return 0, err
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Float32, reflect.Float64:
		// Truncate float to int
		return int64(v.Float()), nil
	case reflect.String:
		s := v.String()
		if i, err := strconv.ParseInt(s, 0, 64); err == nil {
			return i, nil
		} else if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			return int64(f), nil
		} else {
			return 0, fmt.Errorf("cannot convert string %q to int64 for %s.%s: %w", s, domain, key, err)
		}
	case reflect.Bool:
		if v.Bool() {
			return 1, nil
		}
		return 0, nil
	}

	return 0, fmt.Errorf("cannot convert type %T to int64 for %s.%s", val, domain, key)
}

// Bool retrieves a boolean value of domain.key.
// Attempts conversion from numeric types (0=false, non-zero=true) and parsable strings.
func (r *Registry) Bool(domain, key string) (bool, error) {
	val, err := r.lookup(domain, key)
	if err != nil {
		return false, err
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.String:
		b, err := strconv.ParseBool(v.String())
		if err != nil {
			return false, fmt.Errorf("cannot convert string %q to bool for %s.%s: %w", v.String(), domain, key, err)
		}
		return b, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0, nil
	case reflect.Float32, reflect.Float64:
		return v.Float() != 0, nil
	}

	return false, fmt.Errorf("cannot convert type %T to bool for %s.%s", val, domain, key)
}

// Float64 retrieves a float64 value of domain.key.
func (r *Registry) Float64(domain, key string) (float64, error) {
	val, err := r.lookup(domain, key)
	if err != nil {
		return 0, err
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.String:
		f, err := strconv.ParseFloat(v.String(), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert string %q to float64 for %s.%s: %w", v.String(), domain, key, err)
		}
		return f, nil
	case reflect.Bool:
		if v.Bool() {
			return 1, nil
		}
		return 0, nil
	}

	return 0, fmt.Errorf("cannot convert type %T to float64 for %s.%s", val, domain, key)
}
