package frontmatter

import "fmt"

// FormatError represents a malformed or missing frontmatter block.
// It is distinct from schema validation errors: a document that does not
// even open with a delimited metadata block never reaches the validator.
type FormatError struct {
	Message string
	Cause   error
}

func (e *FormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("frontmatter format error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("frontmatter format error: %s", e.Message)
}

func (e *FormatError) Unwrap() error {
	return e.Cause
}
