package validate

import "errors"

var (
	// ErrInvalid wraps every failure reported by Check.
	ErrInvalid = errors.New("validate: value is invalid")

	// ErrInvalidJSON indicates malformed JSON data.
	ErrInvalidJSON = errors.New("validate: json is not valid")
)
