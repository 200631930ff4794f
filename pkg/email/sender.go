package email

import (
	"context"
	"fmt"
	"log/slog"
	"mime/quotedprintable"
	"net/smtp"
	"strings"

	"techfix-backend/config"
)

// Sender delivers a composed inquiry email. It is an interface so the
// SMTP implementation can be swapped out in tests and local development.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPSender delivers mail over SMTP with PLAIN auth (Brevo relay by
// default). One delivery attempt per call; retries are the caller's
// decision.
type SMTPSender struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	fromName  string
	toEmail   string
}

// NewSMTPSender creates an SMTP sender from the loaded configuration.
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
		fromName:  cfg.SMTPFromName,
		toEmail:   cfg.ContactEmailTo,
	}
}

// IsConfigured checks if the sender has valid SMTP configuration
func (s *SMTPSender) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

// Send delivers msg to the configured business inbox.
func (s *SMTPSender) Send(_ context.Context, msg Message) error {
	raw := s.buildMIME(msg)

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{s.toEmail}, raw); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// buildMIME assembles a multipart/alternative message carrying the text
// and HTML renderings, with Reply-To pointed at the submitter so replies
// reach the customer directly.
func (s *SMTPSender) buildMIME(msg Message) []byte {
	const boundary = "techfix-inquiry-boundary"

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", s.fromName, s.fromEmail)
	fmt.Fprintf(&b, "To: %s\r\n", s.toEmail)
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	b.WriteString("\r\n")

	writePart(&b, boundary, "text/plain; charset=UTF-8", msg.TextBody)
	writePart(&b, boundary, "text/html; charset=UTF-8", msg.HTMLBody)
	fmt.Fprintf(&b, "--%s--\r\n", boundary)

	return []byte(b.String())
}

func writePart(b *strings.Builder, boundary, contentType, body string) {
	fmt.Fprintf(b, "--%s\r\n", boundary)
	fmt.Fprintf(b, "Content-Type: %s\r\n", contentType)
	b.WriteString("Content-Transfer-Encoding: quoted-printable\r\n")
	b.WriteString("\r\n")
	qp := quotedprintable.NewWriter(b)
	_, _ = qp.Write([]byte(body))
	_ = qp.Close()
	b.WriteString("\r\n")
}

// LogSender logs composed emails instead of delivering them. Used when
// SMTP credentials are not configured, so local development never needs a
// mail account.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a logging sender.
func NewLogSender(log *slog.Logger) *LogSender {
	return &LogSender{log: log}
}

// Send logs the email details instead of sending.
func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.log.Info("inquiry email (logged, not delivered)",
		"subject", msg.Subject,
		"reply_to", msg.ReplyTo,
		"body", msg.TextBody,
	)
	return nil
}
