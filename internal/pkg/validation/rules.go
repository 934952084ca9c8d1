package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validation rule patterns shared by the API services and the portal forms.
var (
	EmailPattern = `^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`

	// PhonePattern accepts an optional +, digits, spaces and dashes.
	PhonePattern = `^\+?[0-9][0-9 \-]{6,18}[0-9]$`

	// SlugPattern is used for seeded identifiers such as "school-001".
	SlugPattern = `^[a-z0-9][a-z0-9\-]{1,62}$`

	PasswordMinLength = 6

	NameMinLength = 2
	NameMaxLength = 100

	BatchYearMin = 1950
	BatchYearMax = 2100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	Phone *regexp.Regexp
	Slug  *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	Phone: regexp.MustCompile(PhonePattern),
	Slug:  regexp.MustCompile(SlugPattern),
}

// StringValidation is a small fluent checker for one string value.
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a required string validation. The value is
// trimmed before any rule runs.
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    strings.TrimSpace(value),
		Required: true,
	}
}

func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate reports whether the value passes every configured rule. Empty
// optional values always pass. Lengths count runes, so Telugu names are
// measured in characters rather than bytes.
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return !v.Required
	}

	length := utf8.RuneCountInString(v.Value)
	if v.MinLen > 0 && length < v.MinLen {
		return false
	}
	if v.MaxLen > 0 && length > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return NewStringValidation(s).WithPattern(CompiledPatterns.Email).Validate()
}

// IsPhone reports whether s looks like a phone number.
func IsPhone(s string) bool {
	return NewStringValidation(s).WithPattern(CompiledPatterns.Phone).Validate()
}

// IsName reports whether s is an acceptable display name.
func IsName(s string) bool {
	return NewStringValidation(s).WithMinLength(NameMinLength).WithMaxLength(NameMaxLength).Validate()
}

// IsBatchYear reports whether year is a plausible graduation batch.
func IsBatchYear(year int) bool {
	return year >= BatchYearMin && year <= BatchYearMax
}
