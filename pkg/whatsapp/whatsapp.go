// Package whatsapp builds wa.me deep links for the post-submission
// handoff. The handoff is a best-effort secondary channel: a link that
// fails to open never affects the already-completed email notification.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// Summary holds the fields echoed into the handoff message. Optional
// fields are omitted when empty, mirroring the notification email.
type Summary struct {
	Name        string
	Email       string
	Phone       string
	Service     string
	ProductName string
	Message     string
	SentAt      string
}

// Opener opens a URL in a new browsing context. Implementations decide
// what that means (browser tab, system handler); failures are the
// caller's to ignore.
type Opener interface {
	Open(url string) error
}

// Link builds a pre-filled wa.me deep link for the given number.
// The number must be digits with country code, no "+".
func Link(number string, text string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(text))
}

// ComposeText renders the summary as the chat message body.
func ComposeText(s Summary) string {
	var b strings.Builder
	if s.ProductName != "" {
		b.WriteString("*Quote Request*\n")
		fmt.Fprintf(&b, "Product: %s\n", s.ProductName)
	} else {
		b.WriteString("*New Inquiry*\n")
	}
	fmt.Fprintf(&b, "Name: %s\n", s.Name)
	fmt.Fprintf(&b, "Email: %s\n", s.Email)
	if s.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", s.Phone)
	}
	if s.Service != "" {
		fmt.Fprintf(&b, "Service: %s\n", s.Service)
	}
	if s.Message != "" {
		fmt.Fprintf(&b, "Message: %s\n", s.Message)
	}
	if s.SentAt != "" {
		fmt.Fprintf(&b, "Sent: %s\n", s.SentAt)
	}
	return b.String()
}
