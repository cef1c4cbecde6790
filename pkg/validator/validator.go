// Package validator provides a Validator type for accumulating field-level
// validation errors. All rules for a payload are evaluated before the result
// is returned, so clients see every violation at once.
package validator

import "regexp"

// ISBNRX matches a bare 10 or 13 digit ISBN (the 10-digit form may end in X).
var ISBNRX = regexp.MustCompile(`^(?:\d{9}[\dX]|\d{13})$`)

// ISSNRX matches the grouped ISSN form, e.g. 1234-567X.
var ISSNRX = regexp.MustCompile(`^\d{4}-\d{3}[\dX]$`)

// FieldError is a single violated rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator collects field errors in the order they were recorded.
// A Validator with no recorded errors is considered valid.
type Validator struct {
	errors []FieldError
	seen   map[string]bool
}

// New creates and returns a fresh, empty Validator.
func New() *Validator {
	return &Validator{seen: make(map[string]bool)}
}

// Valid returns true when no errors have been recorded.
func (v *Validator) Valid() bool {
	return len(v.errors) == 0
}

// Errors returns the collected field errors.
func (v *Validator) Errors() []FieldError {
	return v.errors
}

// AddError records field as failing with the given message. Only the first
// failure per field is kept, so the most specific rule should run first.
func (v *Validator) AddError(field, message string) {
	if v.seen[field] {
		return
	}
	v.seen[field] = true
	v.errors = append(v.errors, FieldError{Field: field, Message: message})
}

// Check adds an error for field with message only when ok is false.
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// In returns true if value is present in list.
func In(value string, list ...string) bool {
	for _, item := range list {
		if value == item {
			return true
		}
	}
	return false
}

// Matches returns true if value matches the provided compiled regexp.
func Matches(value string, rx *regexp.Regexp) bool {
	return rx.MatchString(value)
}

// Unique returns true if every string in values is distinct.
func Unique(values []string) bool {
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
