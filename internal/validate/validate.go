// Package validate implements form field validation: required-ness plus
// shape checks for email, URL, and phone values.
package validate

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

// Kind selects which shape check applies to a field value.
type Kind int

const (
	// Text fields only carry the required-ness check.
	Text Kind = iota
	Email
	URL
	Phone
)

// Validation failures. Handlers render these as inline field messages.
var (
	ErrMissingRequired = errors.New("This field is required")
	ErrInvalidEmail    = errors.New("Please enter a valid email address")
	ErrInvalidURL      = errors.New("Please enter a valid URL")
	ErrInvalidPhone    = errors.New("Please enter a valid phone number")
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9][0-9]{0,15}$`)
)

// phoneStrip drops formatting characters before the shape check: any
// whitespace rune plus dashes and parentheses.
func phoneStrip(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' || r == '(' || r == ')' {
			return -1
		}
		return r
	}, value)
}

// Field is one form input to validate.
type Field struct {
	Name     string
	Kind     Kind
	Value    string
	Required bool
}

// ValidateField checks a single value. Leading and trailing whitespace is
// ignored. An empty optional value always passes; shape checks apply only to
// non-empty values.
func ValidateField(kind Kind, value string, required bool) error {
	value = strings.TrimSpace(value)

	if value == "" {
		if required {
			return ErrMissingRequired
		}
		return nil
	}

	switch kind {
	case Email:
		if !emailPattern.MatchString(value) {
			return ErrInvalidEmail
		}
	case URL:
		// Any absolute URL counts, including host-less schemes like mailto.
		if u, err := url.Parse(value); err != nil || !u.IsAbs() {
			return ErrInvalidURL
		}
	case Phone:
		if !phonePattern.MatchString(phoneStrip(value)) {
			return ErrInvalidPhone
		}
	}
	return nil
}

// FieldErrors maps field names to their validation failures.
type FieldErrors map[string]error

// Messages returns the failures as plain strings, for JSON rendering.
func (fe FieldErrors) Messages() map[string]string {
	if len(fe) == 0 {
		return nil
	}
	out := make(map[string]string, len(fe))
	for name, err := range fe {
		out[name] = err.Error()
	}
	return out
}

// ValidateForm checks every field and collects all failures. It never
// short-circuits, so each field can display its own error simultaneously.
// The form passes only when the result is empty.
func ValidateForm(fields []Field) FieldErrors {
	failures := make(FieldErrors)
	for _, f := range fields {
		if err := ValidateField(f.Kind, f.Value, f.Required); err != nil {
			failures[f.Name] = err
		}
	}
	if len(failures) == 0 {
		return nil
	}
	return failures
}
