package mailer

import (
	"context"
	"net/smtp"
)

// IMailer sends HTML mail.
type IMailer interface {
	Send(ctx context.Context, to []string, subject, htmlBody string) error
	IsConfigured() bool
}

// Config holds SMTP configuration.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	// From is the SMTP envelope sender.
	From string
	// FromName is an optional display name used only for the message header.
	FromName string
}

type implMailer struct {
	cfg  Config
	auth smtp.Auth
}

// New creates an SMTP mailer.
func New(cfg Config) IMailer {
	var auth smtp.Auth
	if cfg.User != "" && cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.User, cfg.Password, cfg.Host)
	}

	return &implMailer{cfg: cfg, auth: auth}
}
