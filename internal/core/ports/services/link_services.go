package services

import (
	"context"

	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/domain"
)

// LinkGraphSvcFacade manages the directed record link graph. AddLink and
// RemoveLink touch only the source record's adjacency list; LinkBoth is the
// explicit way to materialize a symmetric association.
type LinkGraphSvcFacade interface {
	// Links returns the outgoing links of the record in insertion order;
	// empty for unknown ids, never an error.
	Links(ctx context.Context, recordID string) ([]domain.LinkedRecord, error)

	// AddLink appends a directed link. Idempotent on the target record id.
	AddLink(ctx context.Context, sourceID string, target domain.LinkedRecord) error

	// LinkBoth adds the forward link and its mirror edge.
	LinkBoth(ctx context.Context, sourceID string, target domain.LinkedRecord, source domain.LinkedRecord) error

	// RemoveLink removes the matching forward link, if present.
	RemoveLink(ctx context.Context, sourceID, targetID string) error

	// IsReachable reports whether targetID can be reached from sourceID by
	// following forward links.
	IsReachable(ctx context.Context, sourceID, targetID string) (bool, error)

	// HasCycle reports whether any cycle is reachable from sourceID.
	HasCycle(ctx context.Context, sourceID string) (bool, error)
}
