package collector

import "context"

// Fetcher defines the interface for fetching a spot price.
type Fetcher interface {
	FetchSpotPrice(ctx context.Context, symbol string) (float64, error)
	Name() string
}
