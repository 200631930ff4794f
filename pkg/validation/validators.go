package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Basic local@domain.tld shape; intentionally loose beyond that
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	digitRegex = regexp.MustCompile(`[0-9]`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("inquiry_phone", InquiryPhone)
}

// ValidEmail reports whether a string looks like an email address.
func ValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// DigitCount returns the number of decimal digits in s, ignoring
// formatting characters like "+", spaces, and dashes.
func DigitCount(s string) int {
	return len(digitRegex.FindAllString(s, -1))
}

// ValidPhone reports whether a phone number carries at least 10 digits.
// Formatting characters are allowed, so "+91 98765 43210" passes.
func ValidPhone(s string) bool {
	return DigitCount(s) >= 10
}

// InquiryPhone is ValidPhone wrapped as a validator/v10 custom rule.
func InquiryPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return ValidPhone(val)
}
