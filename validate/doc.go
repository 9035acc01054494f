// Package validate provides opt-in validation for call inputs and outputs.
//
// Values that implement Checker are validated; everything else passes
// untouched. Rule combinators help build Checker implementations without
// repetitive error plumbing.
package validate
