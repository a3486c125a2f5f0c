package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,50}$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex    = regexp.MustCompile(`^\+?[0-9][0-9 -]{6,18}[0-9]$`)
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// HasErrors returns true if there are any validation errors
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Validator provides validation methods
type Validator struct {
	errors ValidationErrors
}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{
		errors: make(ValidationErrors, 0),
	}
}

// AddError adds a validation error
func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, &ValidationError{
		Field:   field,
		Message: message,
	})
}

// Errors returns all validation errors
func (v *Validator) Errors() ValidationErrors {
	return v.errors
}

// HasErrors returns true if there are any validation errors
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Required checks if a string is not empty
func (v *Validator) Required(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "this field is required")
		return false
	}
	return true
}

// MaxLength checks if a string doesn't exceed maximum length
func (v *Validator) MaxLength(field, value string, max int) bool {
	if utf8.RuneCountInString(value) > max {
		v.AddError(field, fmt.Sprintf("must be at most %d characters", max))
		return false
	}
	return true
}

// ValidateUsername validates a username
func (v *Validator) ValidateUsername(field, value string) bool {
	if !v.Required(field, value) {
		return false
	}
	if !usernameRegex.MatchString(value) {
		v.AddError(field, "may only contain letters, digits, underscores and hyphens, 3-50 characters")
		return false
	}
	return true
}

// ValidateEmail validates an email address
func (v *Validator) ValidateEmail(field, value string) bool {
	if !v.Required(field, value) {
		return false
	}
	if !emailRegex.MatchString(value) {
		v.AddError(field, "must be a valid email address")
		return false
	}
	return true
}

// ValidatePassword validates a password
func (v *Validator) ValidatePassword(field, value string) bool {
	if !v.Required(field, value) {
		return false
	}
	if len(value) < MinPasswordLength {
		v.AddError(field, "must be at least 8 characters")
		return false
	}
	if len(value) > MaxPasswordLength {
		v.AddError(field, "must be at most 72 characters")
		return false
	}
	return true
}

// ValidateTitle validates a listing title
func (v *Validator) ValidateTitle(field, value string) bool {
	if !v.Required(field, value) {
		return false
	}
	length := utf8.RuneCountInString(value)
	if length < 2 {
		v.AddError(field, "must be at least 2 characters")
		return false
	}
	if length > 150 {
		v.AddError(field, "must be at most 150 characters")
		return false
	}
	return true
}

// ValidateContactNumber validates a phone number
func (v *Validator) ValidateContactNumber(field, value string) bool {
	if !v.Required(field, value) {
		return false
	}
	if !phoneRegex.MatchString(value) {
		v.AddError(field, "must be a valid contact number")
		return false
	}
	return true
}

// ParseNonNegativeInt parses a user-entered numeric string. Used for the
// price filter bounds, which arrive as strings and must be rejected before
// any query is compiled.
func ParseNonNegativeInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("must not be negative: %d", n)
	}
	return n, nil
}

// SanitizeString removes potentially dangerous characters
func SanitizeString(s string) string {
	// Remove null bytes and control characters
	s = strings.Map(func(r rune) rune {
		if r < 32 && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}
