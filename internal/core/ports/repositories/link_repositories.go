package repositories

import (
	"context"

	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/domain"
)

// LinkRepository defines operations on the record link adjacency structure.
type LinkRepository interface {
	// FindLinks returns the outgoing links of the source record in insertion
	// order. Unknown ids yield an empty slice, not an error.
	FindLinks(ctx context.Context, sourceID string) ([]domain.LinkedRecord, error)

	// SaveLink appends a link to the source record's adjacency list. No-op
	// when a link to the same target id already exists (idempotent).
	SaveLink(ctx context.Context, sourceID string, link domain.LinkedRecord) error

	// DeleteLink removes the single matching link, if present; no-op
	// otherwise.
	DeleteLink(ctx context.Context, sourceID, targetID string) error
}
