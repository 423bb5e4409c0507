package trendyol

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
)

var numericID = regexp.MustCompile(`^\d+$`)

// Validate checks that the credentials are usable: a numeric seller id, a
// key and secret, and a known environment.
func (c Credentials) Validate() error {
	var errs []error
	if !numericID.MatchString(c.SellerID) {
		errs = append(errs, fmt.Errorf("seller id %q must be numeric", c.SellerID))
	}
	if c.APIKey == "" {
		errs = append(errs, &MissingParameterError{Name: "apiKey"})
	}
	if c.APISecret == "" {
		errs = append(errs, &MissingParameterError{Name: "apiSecret"})
	}
	switch c.Environment {
	case "", Production, Sandbox:
	default:
		errs = append(errs, fmt.Errorf("unknown environment %q", c.Environment))
	}
	return errors.Join(errs...)
}

// ErrMissingParameter matches every MissingParameterError via errors.Is.
var ErrMissingParameter = errors.New("missing required parameter")

// MissingParameterError reports a required argument that was absent. It is
// returned before any network I/O.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("required parameter %q is missing or empty", e.Name)
}

// Is reports whether target is ErrMissingParameter.
func (e *MissingParameterError) Is(target error) bool {
	return target == ErrMissingParameter
}

// requireValue fails when value is nil, an empty string, a nil pointer, an
// empty slice or map, or reports IsZero. Numbers are never missing.
func requireValue(value any, name string) error {
	if isMissing(value) {
		return &MissingParameterError{Name: name}
	}
	return nil
}

// requireID fails for non-positive numeric identifiers.
func requireID(id int64, name string) error {
	if id <= 0 {
		return &MissingParameterError{Name: name}
	}
	return nil
}

func isMissing(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
	case reflect.Slice, reflect.Map, reflect.String:
		return rv.Len() == 0
	}

	if z, ok := value.(interface{ IsZero() bool }); ok {
		return z.IsZero()
	}
	return false
}
