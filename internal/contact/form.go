// Package contact runs the contact form's mock submission flow. Nothing is
// sent anywhere; the delays only simulate a round trip.
package contact

import (
	"errors"
	"fmt"
	"strings"
)

// Fields are the values of the contact form.
type Fields struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Subject string `form:"subject" json:"subject"`
	Message string `form:"message" json:"message"`
}

// ErrMissingField is wrapped by validation errors.
var ErrMissingField = errors.New("required field missing")

// FieldError lists the fields left blank.
type FieldError struct {
	Fields []string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingField, strings.Join(e.Fields, ", "))
}

func (e *FieldError) Unwrap() error { return ErrMissingField }

// Has reports whether field is among the missing ones.
func (e *FieldError) Has(field string) bool {
	for _, f := range e.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// Validate requires every field to be non-blank.
func (f Fields) Validate() error {
	var missing []string
	for _, kv := range []struct{ name, value string }{
		{"name", f.Name},
		{"email", f.Email},
		{"subject", f.Subject},
		{"message", f.Message},
	} {
		if strings.TrimSpace(kv.value) == "" {
			missing = append(missing, kv.name)
		}
	}
	if len(missing) > 0 {
		return &FieldError{Fields: missing}
	}
	return nil
}

// IsZero reports whether every field is empty.
func (f Fields) IsZero() bool { return f == Fields{} }
