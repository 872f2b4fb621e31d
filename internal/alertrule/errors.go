package alertrule

import "errors"

var (
	ErrRuleNotFound      = errors.New("alert rule not found")
	ErrEventNotFound     = errors.New("alert event not found")
	ErrInvalidRuleType   = errors.New("invalid rule type")
	ErrInvalidStatus     = errors.New("invalid event status")
	ErrEventNotPending   = errors.New("alert event is not pending")
	ErrInvalidConditions = errors.New("invalid rule conditions")
)
