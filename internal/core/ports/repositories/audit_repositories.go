package repositories

import (
	"context"
	"time"

	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/domain"
)

// AuditLogRepository defines operations on the append-only audit log.
// Entries are immutable once appended; per-record ordering is insertion
// order.
type AuditLogRepository interface {
	// AppendEntry appends one entry to the record's trail.
	AppendEntry(ctx context.Context, entry domain.AuditLogEntry) error

	// FindEntriesByRecordID returns the record's full trail, oldest first.
	// Unknown record ids yield an empty slice, not an error.
	FindEntriesByRecordID(ctx context.Context, recordID string) ([]domain.AuditLogEntry, error)

	// FindEntriesAfter returns up to limit entries of the record's trail
	// strictly after the (timestamp, entryID) cursor, oldest first. A zero
	// cursor starts from the beginning.
	FindEntriesAfter(ctx context.Context, recordID string, after time.Time, afterEntryID string, limit int) ([]domain.AuditLogEntry, error)
}
