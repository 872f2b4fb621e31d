package usecase

import (
	"fmt"
	"strings"

	"smap-engine/internal/action"
)

// summarize builds the human-readable title and message for a dispatch.
func summarize(ip action.DispatchInput) (title, message string) {
	title = fmt.Sprintf("Alert: %s", ip.Rule.Name)

	if ip.Mention != nil {
		message = fmt.Sprintf("Rule %q matched a %s mention by @%s: %s",
			ip.Rule.Name, ip.Mention.Platform, ip.Mention.AuthorHandle, excerpt(ip.Mention.Content, 200))
		return title, message
	}

	if cur, ok := ip.Event.EventData["currentCount"]; ok {
		message = fmt.Sprintf("Rule %q detected a volume spike: %v mentions in the current window", ip.Rule.Name, cur)
		return title, message
	}

	message = fmt.Sprintf("Rule %q triggered (%s)", ip.Rule.Name, ip.Event.EventType)
	return title, message
}

func (uc *usecase) eventLink(eventID string) string {
	return fmt.Sprintf("%s/alerts/%s", strings.TrimRight(uc.webappURL, "/"), eventID)
}

func excerpt(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max < 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
