package pdf

import "fmt"

// TemplateMissingError means a form declares a custom template path but
// the bytes cannot be read. The placeholder is never substituted for an
// explicitly configured upload.
type TemplateMissingError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *TemplateMissingError) Error() string {
	return fmt.Sprintf("custom template missing at %s: %v", e.Path, e.Err)
}

func (e *TemplateMissingError) Unwrap() error {
	return e.Err
}

// CompositionError means the template bytes are not a parseable document
// or the composition primitive failed mid-render. No partial output is
// ever returned alongside one.
type CompositionError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *CompositionError) Error() string {
	return fmt.Sprintf("composition failed during %s: %v", e.Op, e.Err)
}

func (e *CompositionError) Unwrap() error {
	return e.Err
}
