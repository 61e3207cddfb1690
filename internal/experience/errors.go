package experience

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// LoadError reports a candidate file that could not be read or decoded
type LoadError struct {
	Path string
	// Format is "yaml" or "json" when decoding failed, empty when reading failed
	Format string
	Cause  error
}

func (e *LoadError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("failed to read candidate file %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("failed to decode candidate file %s as %s: %v", e.Path, strings.ToUpper(e.Format), e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// profileIndex marks a NormalizationError raised by the profile rather than a certification
const profileIndex = -1

// NormalizationError reports a profile or certification that fails validation after normalization
type NormalizationError struct {
	// Index is the certification's position after normalization, or -1 for the profile
	Index int
	// Title of the offending certification
	Title string
	// Fields that failed validation
	Fields []string
	Cause  error
}

func newNormalizationError(index int, title string, err error) *NormalizationError {
	normErr := &NormalizationError{Index: index, Title: title, Cause: err}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			normErr.Fields = append(normErr.Fields, fe.Field())
		}
	}
	return normErr
}

// IsProfile reports whether the profile, not a certification, was invalid
func (e *NormalizationError) IsProfile() bool {
	return e.Index == profileIndex
}

func (e *NormalizationError) Error() string {
	fields := strings.Join(e.Fields, ", ")
	if e.IsProfile() {
		return fmt.Sprintf("invalid profile (%s): %v", fields, e.Cause)
	}
	return fmt.Sprintf("invalid certification %d %q (%s): %v", e.Index, e.Title, fields, e.Cause)
}

func (e *NormalizationError) Unwrap() error {
	return e.Cause
}
