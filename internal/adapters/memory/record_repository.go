package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/apperrors"
	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/domain"
	portsrepo "github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/ports/repositories"
)

// RecordRepository is the in-memory record store. Maps are guarded by a
// RWMutex so the core stays safe if it is ever embedded behind concurrent
// callers, even though the session model assumes a single logical actor.
type RecordRepository struct {
	mu       sync.RWMutex
	records  map[string]domain.Record
	order    []string // record ids in creation order
	counters map[domain.RecordType]int
	now      func() time.Time
}

// NewRecordRepository creates an empty in-memory record repository.
func NewRecordRepository() *RecordRepository {
	return &RecordRepository{
		records:  make(map[string]domain.Record),
		counters: make(map[domain.RecordType]int),
		now:      time.Now,
	}
}

var _ portsrepo.RecordRepository = (*RecordRepository)(nil)

// SaveRecord stores a new record.
func (r *RecordRepository) SaveRecord(_ context.Context, record domain.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[record.RecordID]; exists {
		return fmt.Errorf("record %s: %w", record.RecordID, apperrors.ErrDuplicate)
	}
	r.records[record.RecordID] = record
	r.order = append(r.order, record.RecordID)
	return nil
}

// FindRecordByID retrieves a record by id.
func (r *RecordRepository) FindRecordByID(_ context.Context, recordID string) (*domain.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[recordID]
	if !ok {
		return nil, fmt.Errorf("record %s: %w", recordID, apperrors.ErrNotFound)
	}
	return &record, nil
}

// FindRecords retrieves records in creation order, paginated.
func (r *RecordRepository) FindRecords(_ context.Context, limit, offset int) ([]domain.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset < 0 {
		offset = 0
	}
	if offset >= len(r.order) {
		return []domain.Record{}, nil
	}
	end := len(r.order)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	out := make([]domain.Record, 0, end-offset)
	for _, id := range r.order[offset:end] {
		out = append(out, r.records[id])
	}
	return out, nil
}

// UpdateRecord replaces a stored record.
func (r *RecordRepository) UpdateRecord(_ context.Context, record domain.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[record.RecordID]; !exists {
		return fmt.Errorf("record %s: %w", record.RecordID, apperrors.ErrNotFound)
	}
	r.records[record.RecordID] = record
	return nil
}

// NextRecordNumber returns the next human-readable number for the type,
// e.g. INC-2026-0001. The counter is monotonic per type.
func (r *RecordRepository) NextRecordNumber(_ context.Context, recordType domain.RecordType) (string, error) {
	prefix, ok := domain.RecordNumberPrefixes[recordType]
	if !ok {
		return "", fmt.Errorf("unknown record type %q: %w", recordType, apperrors.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.counters[recordType]++
	return fmt.Sprintf("%s-%d-%04d", prefix, r.now().UTC().Year(), r.counters[recordType]), nil
}
