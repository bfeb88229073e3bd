package rxpricing

import "context"

// Repository is the pricing-band slice of the catalog read port.
type Repository interface {

	// GetBands returns every configured band for a lens, all axes.
	// An empty slice is a valid answer (lens has no RX surcharges).
	GetBands(ctx context.Context, org string, lensCode string) ([]PricingBand, error)
}
