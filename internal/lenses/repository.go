package lenses

import "context"

// Repository is the lens slice of the catalog read port.
type Repository interface {

	// GetLens fetches a single lens by catalog code.
	// Returns xerrors.NotFoundError when the code is unknown.
	GetLens(ctx context.Context, org string, code string) (*Lens, error)
}
