package repositories

import (
	"context"

	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/domain"
)

// RecordRepository defines persistence operations for safety records.
type RecordRepository interface {
	// SaveRecord stores a new record. Fails with apperrors.ErrDuplicate if a
	// record with the same id already exists.
	SaveRecord(ctx context.Context, record domain.Record) error

	// FindRecordByID retrieves a record by id. Fails with
	// apperrors.ErrNotFound when absent.
	FindRecordByID(ctx context.Context, recordID string) (*domain.Record, error)

	// FindRecords retrieves records in creation order, paginated.
	FindRecords(ctx context.Context, limit, offset int) ([]domain.Record, error)

	// UpdateRecord replaces a stored record. Fails with apperrors.ErrNotFound
	// when absent.
	UpdateRecord(ctx context.Context, record domain.Record) error

	// NextRecordNumber returns the next human-readable number for the given
	// record type (monotonic per type).
	NextRecordNumber(ctx context.Context, recordType domain.RecordType) (string, error)
}
