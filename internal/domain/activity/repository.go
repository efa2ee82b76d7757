package activity

import "context"

type Repository interface {
	Append(ctx context.Context, entry *Entry) error
	// ListRecent orders by created_at, newest first.
	ListRecent(ctx context.Context, limit int) ([]*Listing, error)
}
