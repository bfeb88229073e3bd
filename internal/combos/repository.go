package combos

import "context"

// Repository is the combo-tier slice of the catalog read port.
type Repository interface {

	// GetActiveTiers returns active tiers with their benefits, constraints
	// already decoded. No ordering guarantee; the service sorts.
	GetActiveTiers(ctx context.Context, org string) ([]ComboTier, error)
}
