package mailer

import "errors"

var (
	ErrNotConfigured = errors.New("mailer: SMTP is not configured")
	ErrNoRecipients  = errors.New("mailer: no recipients")
)
