package forms

import (
	"fmt"
	"sort"
	"strings"
)

// FieldIssue pinpoints one invalid attribute of one field.
type FieldIssue struct {
	Field     string `json:"field"`
	Attribute string `json:"attribute"`
	Message   string `json:"message"`
}

// ValidationError reports every problem found in a fields mapping. A
// mapping that produces a ValidationError must not be committed anywhere.
type ValidationError struct {
	Issues []FieldIssue
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("%s.%s: %s", issue.Field, issue.Attribute, issue.Message))
	}
	return "invalid fields config: " + strings.Join(parts, "; ")
}

// ValidateFields checks every field against the model invariants and
// collects all issues instead of stopping at the first. A nil return means
// the whole mapping is safe to commit.
func ValidateFields(fields FieldsConfig) error {
	var issues []FieldIssue

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		field := fields[name]
		if strings.TrimSpace(name) == "" {
			issues = append(issues, FieldIssue{Field: name, Attribute: "name", Message: "field name cannot be blank"})
		}
		if field.X < 0 {
			issues = append(issues, FieldIssue{Field: name, Attribute: "x", Message: "must be >= 0"})
		}
		if field.Y < 0 {
			issues = append(issues, FieldIssue{Field: name, Attribute: "y", Message: "must be >= 0"})
		}
		// Page 0 means "unset" on the wire and resolves to 1.
		if field.Page < 0 {
			issues = append(issues, FieldIssue{Field: name, Attribute: "page", Message: "must be >= 1"})
		}
		if strings.TrimSpace(field.Font) == "" {
			issues = append(issues, FieldIssue{Field: name, Attribute: "font", Message: "font is required"})
		}
		if field.Size <= 0 {
			issues = append(issues, FieldIssue{Field: name, Attribute: "size", Message: "must be > 0"})
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
