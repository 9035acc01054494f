package validate

import (
	"fmt"
	"reflect"

	jsoniter "github.com/json-iterator/go"
)

// Checker is implemented by types that can validate themselves.
//
// Contract:
// - Errors: Validate returns nil for a valid value, or an error describing
//   every violation (use Rules to join several).
// - Concurrency: Validate must not mutate the receiver.
type Checker interface {
	Validate() error
}

// Check validates v if it implements Checker.
//
// Validation is opt-in: nil values and types that do not implement Checker
// pass unconditionally. A typed-nil pointer passes as well, since its
// Validate would dereference nil.
func Check(v any) error {
	if v == nil {
		return nil
	}

	c, ok := v.(Checker)
	if !ok {
		return nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil
	}

	if err := c.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// JSON verifies data is well-formed JSON.
func JSON(data []byte) error {
	if !jsoniter.ConfigFastest.Valid(data) {
		return ErrInvalidJSON
	}
	return nil
}
