package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"
)

// InquiryData holds the data rendered into inquiry notification emails.
// Mobile, Service, and ProductName are optional; empty values are omitted
// from both renderings.
type InquiryData struct {
	Heading     string // "New Contact Inquiry" or "New Quote Request"
	SenderName  string
	SenderEmail string
	Mobile      string
	Service     string
	ProductName string
	Message     string
	SentAt      string // filled by Compose when empty
}

// Message is one fully composed email, ready for a Sender. TextBody and
// HTMLBody are alternative renderings of the same content.
type Message struct {
	Subject  string
	ReplyTo  string
	TextBody string
	HTMLBody string
}

// inquiryEmailTemplate is the HTML rendering of an inquiry email.
// white-space: pre-wrap keeps the customer's line breaks intact.
const inquiryEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Heading}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1a73e8; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #1a73e8; margin-top: 10px; white-space: pre-wrap; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.Heading}}</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">From:</div>
                <div class="value">{{.SenderName}} ({{.SenderEmail}})</div>
            </div>
            {{if .Mobile}}<div class="field">
                <div class="label">Phone:</div>
                <div class="value">{{.Mobile}}</div>
            </div>
            {{end}}{{if .Service}}<div class="field">
                <div class="label">Service:</div>
                <div class="value">{{.Service}}</div>
            </div>
            {{end}}{{if .ProductName}}<div class="field">
                <div class="label">Product:</div>
                <div class="value">{{.ProductName}}</div>
            </div>
            {{end}}{{if .Message}}<div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
            {{end}}<div class="field">
                <div class="label">Received:</div>
                <div class="value">{{.SentAt}}</div>
            </div>
        </div>
        <div class="footer">
            <p>This email was sent from the TechFix Computer Solutions website.</p>
            <p>To reply, send an email to: {{.SenderEmail}}</p>
        </div>
    </div>
</body>
</html>`

var inquiryTmpl = template.Must(template.New("inquiry").Parse(inquiryEmailTemplate))

// Compose builds the subject and both renderings for one inquiry.
// Subject references the product for quotes and the selected service (or a
// generic label) for contact inquiries.
func Compose(data InquiryData) (Message, error) {
	if data.SentAt == "" {
		data.SentAt = Timestamp(time.Now())
	}

	var subject string
	switch {
	case data.ProductName != "":
		subject = fmt.Sprintf("Quote Request: %s", data.ProductName)
	case data.Service != "":
		subject = fmt.Sprintf("New Inquiry: %s", data.Service)
	default:
		subject = "New Contact Form Submission"
	}

	var html bytes.Buffer
	if err := inquiryTmpl.Execute(&html, data); err != nil {
		return Message{}, fmt.Errorf("failed to execute email template: %w", err)
	}

	return Message{
		Subject:  subject,
		ReplyTo:  data.SenderEmail,
		TextBody: composeText(data),
		HTMLBody: html.String(),
	}, nil
}

// composeText builds the plain-text rendering. Line breaks in the
// customer's message are carried through verbatim.
func composeText(data InquiryData) string {
	var b strings.Builder
	b.WriteString(data.Heading + "\r\n\r\n")
	fmt.Fprintf(&b, "From: %s (%s)\r\n", data.SenderName, data.SenderEmail)
	if data.Mobile != "" {
		fmt.Fprintf(&b, "Phone: %s\r\n", data.Mobile)
	}
	if data.Service != "" {
		fmt.Fprintf(&b, "Service: %s\r\n", data.Service)
	}
	if data.ProductName != "" {
		fmt.Fprintf(&b, "Product: %s\r\n", data.ProductName)
	}
	if data.Message != "" {
		b.WriteString("\r\nMessage:\r\n" + data.Message + "\r\n")
	}
	fmt.Fprintf(&b, "\r\nReceived: %s\r\n", data.SentAt)
	return b.String()
}

// Timestamp renders t for the business's region. The shop operates in
// India, so send-time stamps use IST; UTC is the fallback if the zone
// database is missing on the host.
func Timestamp(t time.Time) string {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return t.UTC().Format("02 Jan 2006, 03:04 PM") + " UTC"
	}
	return t.In(loc).Format("02 Jan 2006, 03:04 PM") + " IST"
}
