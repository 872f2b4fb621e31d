package webhook

import (
	"context"
	"net/http"
	"time"

	"smap-engine/pkg/log"
)

// IWebhook posts JSON payloads to customer-configured endpoints.
type IWebhook interface {
	Post(ctx context.Context, url string, payload any, headers map[string]string) error
}

// New creates a webhook client. A zero timeout falls back to DefaultTimeout.
func New(l log.Logger, cfg Config) IWebhook {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &implWebhook{
		l:       l,
		timeout: timeout,
		client:  &http.Client{Timeout: timeout},
	}
}

// DefaultTimeout bounds a single webhook delivery so a slow receiver cannot
// stall the triggering rule.
const DefaultTimeout = 5 * time.Second

// Config holds webhook client configuration.
type Config struct {
	Timeout time.Duration
}

type implWebhook struct {
	l       log.Logger
	timeout time.Duration
	client  *http.Client
}
