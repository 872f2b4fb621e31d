package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

func (m *implMailer) IsConfigured() bool {
	return m.cfg.Host != "" && m.cfg.From != ""
}

// Send delivers an HTML message to the given recipients.
func (m *implMailer) Send(ctx context.Context, to []string, subject, htmlBody string) error {
	if !m.IsConfigured() {
		return ErrNotConfigured
	}
	if len(to) == 0 {
		return ErrNoRecipients
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	fromHeader := m.cfg.From
	if strings.TrimSpace(m.cfg.FromName) != "" {
		fromHeader = fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.From)
	}

	sanitized := make([]string, len(to))
	for i, rcpt := range to {
		sanitized[i] = sanitizeHeader(rcpt)
	}

	msg := []string{
		fmt.Sprintf("From: %s", sanitizeHeader(fromHeader)),
		fmt.Sprintf("To: %s", strings.Join(sanitized, ", ")),
		fmt.Sprintf("Subject: %s", sanitizeHeader(subject)),
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=UTF-8",
		"",
		htmlBody,
	}

	return smtp.SendMail(addr, m.auth, m.cfg.From, sanitized, []byte(strings.Join(msg, "\r\n")))
}

// sanitizeHeader strips CRLF so recipient-controlled values cannot inject
// extra headers.
func sanitizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "")
	return s
}
