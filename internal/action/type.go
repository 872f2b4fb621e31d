package action

import "smap-engine/internal/model"

// DispatchInput carries a triggered rule, the mention that matched it (nil
// for volume-spike events), and the persisted alert event.
type DispatchInput struct {
	Rule    model.AlertRule
	Mention *model.Mention
	Event   model.AlertEvent

	// Allow restricts which action kinds run. Nil means every kind is
	// allowed; the spike sweep passes {notification, email}.
	Allow []model.ActionType
}

// Allows reports whether the action kind may run for this dispatch.
func (ip DispatchInput) Allows(t model.ActionType) bool {
	if ip.Allow == nil {
		return true
	}
	for _, a := range ip.Allow {
		if a == t {
			return true
		}
	}
	return false
}
