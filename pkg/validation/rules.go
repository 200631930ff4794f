package validation

import "strings"

// User-facing messages for the local validation rules. These are shown by
// the form before any network call is made.
const (
	MsgFullNameRequired = "Please enter your full name."
	MsgEmailInvalid     = "Please enter a valid email address."
	MsgPhoneInvalid     = "Please enter a valid phone number (at least 10 digits)."
)

// CheckDraft runs the local validation rules in their fixed order and
// returns the message of the first failing rule, or "" when the draft is
// fit to submit. A draft that fails here must never reach the network.
func CheckDraft(fullName, email, phone string) string {
	if strings.TrimSpace(fullName) == "" {
		return MsgFullNameRequired
	}
	if !ValidEmail(email) {
		return MsgEmailInvalid
	}
	if !ValidPhone(phone) {
		return MsgPhoneInvalid
	}
	return ""
}
