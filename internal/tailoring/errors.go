package tailoring

import "fmt"

// InputError is a request the caller must fix: short documents, invalid job data and the like
type InputError struct {
	Message string
	Field   string
	Cause   error
}

func (e *InputError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("%s (%s)", e.Message, e.Field)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *InputError) Unwrap() error {
	return e.Cause
}

// NoEditableTargetError means the document has no headline, summary or skills section to rewrite
type NoEditableTargetError struct {
	Dialect string
}

func (e *NoEditableTargetError) Error() string {
	if e.Dialect == "latex" {
		return "Headline, Summary, or Skills section not found in LaTeX resume."
	}
	return "Headline, Summary, or Skills section not found in resume."
}
