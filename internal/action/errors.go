package action

import "errors"

var (
	ErrUnknownActionType = errors.New("unknown action type")
	ErrMissingWebhookURL = errors.New("webhook action has no url configured")
	ErrNoRecipients      = errors.New("email action has no recipients configured")
)
