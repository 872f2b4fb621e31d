package notifier

import (
	"context"

	"smap-engine/pkg/log"
	pkgRedis "smap-engine/pkg/redis"
)

// INotifier delivers in-app notifications. The engine publishes them to the
// Redis channel the notification service fans out from; it never talks to
// user sockets itself.
type INotifier interface {
	Notify(ctx context.Context, input NotifyInput) error
}

type NotifyInput struct {
	TenantID string         `json:"tenant_id"`
	UserID   string         `json:"user_id"`
	Title    string         `json:"title"`
	Message  string         `json:"message"`
	Type     string         `json:"type"`
	Link     string         `json:"link,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type implNotifier struct {
	l     log.Logger
	redis pkgRedis.IRedis
}

// New creates a Redis-backed notifier.
func New(l log.Logger, redis pkgRedis.IRedis) INotifier {
	return &implNotifier{l: l, redis: redis}
}
