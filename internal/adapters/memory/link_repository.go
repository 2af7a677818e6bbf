package memory

import (
	"context"
	"sync"

	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/domain"
	portsrepo "github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/ports/repositories"
)

// LinkRepository is the in-memory record link adjacency store: source
// record id -> outgoing links in insertion order.
type LinkRepository struct {
	mu    sync.RWMutex
	links map[string][]domain.LinkedRecord
}

// NewLinkRepository creates an empty in-memory link store.
func NewLinkRepository() *LinkRepository {
	return &LinkRepository{
		links: make(map[string][]domain.LinkedRecord),
	}
}

var _ portsrepo.LinkRepository = (*LinkRepository)(nil)

// FindLinks returns a copy of the source record's outgoing links.
func (r *LinkRepository) FindLinks(_ context.Context, sourceID string) ([]domain.LinkedRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adj := r.links[sourceID]
	out := make([]domain.LinkedRecord, len(adj))
	copy(out, adj)
	return out, nil
}

// SaveLink appends a link, suppressing duplicates by target record id.
func (r *LinkRepository) SaveLink(_ context.Context, sourceID string, link domain.LinkedRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.links[sourceID] {
		if existing.RecordID == link.RecordID {
			return nil
		}
	}
	r.links[sourceID] = append(r.links[sourceID], link)
	return nil
}

// DeleteLink removes the matching link, if present.
func (r *LinkRepository) DeleteLink(_ context.Context, sourceID, targetID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	adj := r.links[sourceID]
	for i, existing := range adj {
		if existing.RecordID == targetID {
			r.links[sourceID] = append(adj[:i:i], adj[i+1:]...)
			return nil
		}
	}
	return nil
}
