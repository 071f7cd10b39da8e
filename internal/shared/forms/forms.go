// Package forms turns ozzo-validation results into per-field messages for templates.
package forms

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Errors maps a form field name to its first validation message.
type Errors map[string]string

// Has reports whether field has an error. Used by templates.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Get returns the message for field. Used by templates.
func (e Errors) Get(field string) string {
	return e[field]
}

// FieldErrors extracts per-field messages from a validation error.
// ok is false when err is not a validation error.
func FieldErrors(err error) (Errors, bool) {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	out := make(Errors, len(verrs))
	for field, ferr := range verrs {
		if ferr == nil {
			continue
		}
		out[field] = capitalize(ferr.Error())
	}
	return out, true
}

// Single builds a validation error for one field, for checks done outside ValidateStruct.
func Single(field, message string) error {
	return validation.Errors{field: errors.New(message)}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Decimal matches a non-negative number with up to 4 integer digits and 2 decimals (NUMERIC(6,2)).
var Decimal = regexp.MustCompile(`^\d{1,4}(\.\d{1,2})?$`)

// Trim returns s without surrounding whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}
