// Package store implements the catalog store: a keyed collection of Items
// with upsert/delete/scan, backed by an embedded SQLite file under a
// configurable data directory.
package store

import (
	"context"

	"github.com/lmendesdev/lookkg/internal/catalog"
)

// CatalogStore is the contract the recommender depends on. A missing
// backing file is treated as an empty catalog. I/O failures on reads and
// writes surface as errors (apperr.StoreFailure). In SQLiteStore a corrupt
// backing file is not treated as empty: Open returns a StoreFailure for it.
type CatalogStore interface {
	LoadAll(ctx context.Context) ([]catalog.Item, error)
	Get(ctx context.Context, itemID string) (*catalog.Item, error)
	Add(ctx context.Context, item catalog.Item) (catalog.Item, error)
	Delete(ctx context.Context, itemID string) (bool, error)
	Search(ctx context.Context, query string, limit int) ([]catalog.Item, error)
}
