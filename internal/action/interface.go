package action

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Dispatch executes the triggered rule's action list in order. Failures
	// are isolated per action and logged; they never surface to the caller.
	Dispatch(ctx context.Context, ip DispatchInput)
}
