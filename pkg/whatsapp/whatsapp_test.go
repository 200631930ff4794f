package whatsapp_test

import (
	"net/url"
	"testing"

	"techfix-backend/pkg/whatsapp"

	"github.com/stretchr/testify/assert"
)

func TestLinkEncoding(t *testing.T) {
	link := whatsapp.Link("919876500000", "Name: Asha Rao\nProduct: 27\" Monitor & stand")

	parsed, err := url.Parse(link)
	assert.NoError(t, err)
	assert.Equal(t, "wa.me", parsed.Host)
	assert.Equal(t, "/919876500000", parsed.Path)

	// The query must decode back to the original text exactly
	assert.Equal(t, "Name: Asha Rao\nProduct: 27\" Monitor & stand", parsed.Query().Get("text"))
}

func TestComposeTextQuote(t *testing.T) {
	text := whatsapp.ComposeText(whatsapp.Summary{
		Name:        "Asha Rao",
		Email:       "asha@example.com",
		Phone:       "9876543210",
		ProductName: `27" 4K IPS Monitor`,
		SentAt:      "05 Jan 2026, 04:00 PM IST",
	})

	assert.Contains(t, text, "*Quote Request*")
	assert.Contains(t, text, `Product: 27" 4K IPS Monitor`)
	assert.Contains(t, text, "Name: Asha Rao")
	assert.Contains(t, text, "Sent: 05 Jan 2026, 04:00 PM IST")
	assert.NotContains(t, text, "Service:")
	assert.NotContains(t, text, "Message:")
}

func TestComposeTextContactOmitsEmptyFields(t *testing.T) {
	text := whatsapp.ComposeText(whatsapp.Summary{
		Name:  "Ravi",
		Email: "ravi@example.com",
	})

	assert.Contains(t, text, "*New Inquiry*")
	assert.NotContains(t, text, "Phone:")
	assert.NotContains(t, text, "Product:")
}
