package vbl

import "context"

// HydrateClient defines the interface for fetching division hydrate payloads
// from the VolleyballLife API. This allows for mock implementations to be
// used in tests.
type HydrateClient interface {
	GetDivisionHydrate(ctx context.Context, divisionID int) (*Hydrate, error)
}
