package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/apperrors"
	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/domain"
	portsrepo "github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/ports/repositories"
	portssvc "github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/ports/services"
	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/dto"
	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/utils/pagination"
)

const defaultAuditPageSize = 20

// auditService reads and appends record audit trails.
type auditService struct {
	auditRepo portsrepo.AuditLogRepository
	pageSize  int
	now       func() time.Time
}

// NewAuditService creates an audit service over the given store. pageSize
// is the default page size for TrailPage; non-positive values fall back to
// the package default.
func NewAuditService(auditRepo portsrepo.AuditLogRepository, pageSize int) portssvc.AuditSvcFacade {
	if pageSize <= 0 {
		pageSize = defaultAuditPageSize
	}
	return &auditService{
		auditRepo: auditRepo,
		pageSize:  pageSize,
		now:       time.Now,
	}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// Append stamps the entry with an id and timestamp when missing and appends
// it to the record's trail.
func (s *auditService) Append(ctx context.Context, entry domain.AuditLogEntry) (*domain.AuditLogEntry, error) {
	if entry.RecordID == "" {
		return nil, fmt.Errorf("audit entry record id is required: %w", apperrors.ErrValidation)
	}
	if entry.Action == "" {
		return nil, fmt.Errorf("audit entry action is required: %w", apperrors.ErrValidation)
	}
	if entry.EntryID == "" {
		entry.EntryID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now().UTC()
	}
	if err := s.auditRepo.AppendEntry(ctx, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Trail returns the record's full audit trail, oldest first.
func (s *auditService) Trail(ctx context.Context, recordID string) ([]domain.AuditLogEntry, error) {
	return s.auditRepo.FindEntriesByRecordID(ctx, recordID)
}

// TrailPage returns one page of the trail with an opaque cursor for the
// next page.
func (s *auditService) TrailPage(ctx context.Context, recordID string, limit int, token string) (*dto.AuditTrailResponse, error) {
	if limit <= 0 {
		limit = s.pageSize
	}

	var after time.Time
	var afterEntryID string
	if token != "" {
		var err error
		after, afterEntryID, err = pagination.DecodeToken(token)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
	}

	// Fetch one extra entry to learn whether another page exists.
	entries, err := s.auditRepo.FindEntriesAfter(ctx, recordID, after, afterEntryID, limit+1)
	if err != nil {
		return nil, err
	}

	nextToken := ""
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		nextToken = pagination.EncodeToken(last.Timestamp, last.EntryID)
	}

	return &dto.AuditTrailResponse{
		RecordID:  recordID,
		Entries:   entries,
		NextToken: nextToken,
	}, nil
}
