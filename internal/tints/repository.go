package tints

import "context"

// Repository is the tint slice of the catalog read port.
type Repository interface {

	// GetTint fetches a tint color or mirror coating by id.
	// Returns xerrors.NotFoundError for an unknown id.
	GetTint(ctx context.Context, org string, id string) (*Tint, error)

	// GetPriceEntry fetches the price addition for a (tint, lens index)
	// pair. ok=false means the combination has no configured entry.
	GetPriceEntry(ctx context.Context, org string, id string, lensIndex string) (*PriceEntry, bool, error)
}
