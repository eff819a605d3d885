package storefront

import (
	"fmt"
	"regexp"
	"strings"
)

// Mobile numbers are exactly 10 ASCII digits, no country code or separators.
var mobileRegex = regexp.MustCompile(`^[0-9]{10}$`)

// Email only needs a local@domain.tld shape; full RFC validation is the mail
// provider's problem.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError describes a single failing form field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Validate checks a customer form against the checkout field rules and
// returns every failing field, in rule order. It is pure and deterministic:
// no network calls, same input always yields the same verdict. A nil result
// means the form is valid.
//
// Rules:
//  1. name non-empty
//  2. address non-empty
//  3. mobile exactly 10 ASCII digits
//  4. email, when present, local@domain.tld shaped (empty is valid)
//  5. gstNumber required iff gstRequired
func Validate(form CustomerForm) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(form.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Reason: "name is required"})
	}
	if strings.TrimSpace(form.Address) == "" {
		errs = append(errs, FieldError{Field: "address", Reason: "address is required"})
	}
	if !mobileRegex.MatchString(form.Mobile) {
		errs = append(errs, FieldError{Field: "mobile", Reason: "mobile must be exactly 10 digits"})
	}
	if form.Email != "" && !emailRegex.MatchString(form.Email) {
		errs = append(errs, FieldError{Field: "email", Reason: "email must look like local@domain.tld"})
	}
	if form.GSTRequired && strings.TrimSpace(form.GSTNumber) == "" {
		errs = append(errs, FieldError{Field: "gstNumber", Reason: "gst number is required when gst invoice is requested"})
	}

	return errs
}

// ValidationError wraps a non-empty set of field errors into a StoreError
// with one detail entry per failing field. Returns nil for an empty set.
func ValidationError(errs []FieldError) *StoreError {
	if len(errs) == 0 {
		return nil
	}
	details := make(map[string]interface{}, len(errs))
	for _, fe := range errs {
		details[fe.Field] = fe.Reason
	}
	return NewStoreError(ErrCodeValidationFailed,
		fmt.Sprintf("%d field(s) failed validation", len(errs)), details)
}
