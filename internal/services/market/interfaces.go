package market

import "context"

// Provider fetches one page of registry transactions.
type Provider interface {
	Fetch(ctx context.Context, q Query) (*Batch, error)
}
