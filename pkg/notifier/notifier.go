package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// channelPattern matches the subscription the notification service holds per
// user hub.
const channelPattern = "notifications:user:%s"

type message struct {
	NotifyInput
	PublishedAt time.Time `json:"published_at"`
}

// Notify publishes the notification for the target user.
func (n *implNotifier) Notify(ctx context.Context, input NotifyInput) error {
	if input.UserID == "" {
		return ErrUserRequired
	}

	payload, err := json.Marshal(message{NotifyInput: input, PublishedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	channel := fmt.Sprintf(channelPattern, input.UserID)
	if err := n.redis.Publish(ctx, channel, payload); err != nil {
		n.l.Errorf(ctx, "pkg.notifier.Notify.Publish: %v", err)
		return err
	}

	return nil
}
