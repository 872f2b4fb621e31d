package spike

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// CheckVolumeSpikes runs one sweep over every active volume_spike rule,
	// comparing the current mention window against the previous one.
	// Failures are isolated per rule.
	CheckVolumeSpikes(ctx context.Context) error
}
