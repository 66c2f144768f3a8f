package ports

import (
	"context"

	"release-notes-bot/internal/domain/model"
)

// ReleaseStore executes rendered queries against the release notes store.
type ReleaseStore interface {
	// Exec runs a statement and waits for it to complete.
	Exec(ctx context.Context, query string) error
	// QueryProducts runs a select and maps each row to a Product, keeping row order.
	QueryProducts(ctx context.Context, query string) ([]model.Product, error)
}
