package memory

import (
	"context"
	"sync"
	"time"

	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/domain"
	portsrepo "github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/ports/repositories"
)

// AuditLogRepository is the in-memory append-only audit log. Per-record
// trails keep insertion order; entries are never mutated or removed.
type AuditLogRepository struct {
	mu      sync.RWMutex
	entries map[string][]domain.AuditLogEntry // keyed by record id
}

// NewAuditLogRepository creates an empty in-memory audit log.
func NewAuditLogRepository() *AuditLogRepository {
	return &AuditLogRepository{
		entries: make(map[string][]domain.AuditLogEntry),
	}
}

var _ portsrepo.AuditLogRepository = (*AuditLogRepository)(nil)

// AppendEntry appends one entry to the record's trail.
func (r *AuditLogRepository) AppendEntry(_ context.Context, entry domain.AuditLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[entry.RecordID] = append(r.entries[entry.RecordID], entry)
	return nil
}

// FindEntriesByRecordID returns a copy of the record's full trail, oldest
// first. Unknown ids yield an empty slice.
func (r *AuditLogRepository) FindEntriesByRecordID(_ context.Context, recordID string) ([]domain.AuditLogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trail := r.entries[recordID]
	out := make([]domain.AuditLogEntry, len(trail))
	copy(out, trail)
	return out, nil
}

// FindEntriesAfter returns up to limit entries strictly after the
// (timestamp, entryID) cursor, oldest first. The cursor entry is located by
// id; when the id is gone or zero, entries after the timestamp are used.
func (r *AuditLogRepository) FindEntriesAfter(_ context.Context, recordID string, after time.Time, afterEntryID string, limit int) ([]domain.AuditLogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trail := r.entries[recordID]
	start := 0
	if afterEntryID != "" {
		for i, e := range trail {
			if e.EntryID == afterEntryID {
				start = i + 1
				break
			}
			if e.Timestamp.After(after) {
				start = i
				break
			}
		}
	} else if !after.IsZero() {
		for i, e := range trail {
			if e.Timestamp.After(after) {
				start = i
				break
			}
			start = i + 1
		}
	}

	if start >= len(trail) {
		return []domain.AuditLogEntry{}, nil
	}
	end := len(trail)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	out := make([]domain.AuditLogEntry, end-start)
	copy(out, trail[start:end])
	return out, nil
}
