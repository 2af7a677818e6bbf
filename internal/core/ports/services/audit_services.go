package services

import (
	"context"

	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/domain"
	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/dto"
)

// AuditReaderSvc defines read access to record audit trails.
type AuditReaderSvc interface {
	// Trail returns the record's full audit trail, oldest first. Unknown
	// record ids yield an empty trail.
	Trail(ctx context.Context, recordID string) ([]domain.AuditLogEntry, error)

	// TrailPage returns one page of the trail. token is the opaque cursor
	// from a previous page ("" for the first); the response carries the next
	// token, empty when the trail is exhausted.
	TrailPage(ctx context.Context, recordID string, limit int, token string) (*dto.AuditTrailResponse, error)
}

// AuditWriterSvc appends entries to the audit log. Entries are immutable
// once appended.
type AuditWriterSvc interface {
	// Append stamps the entry with an id and timestamp when missing and
	// appends it to the record's trail.
	Append(ctx context.Context, entry domain.AuditLogEntry) (*domain.AuditLogEntry, error)
}

// AuditSvcFacade combines all audit log service interfaces.
type AuditSvcFacade interface {
	AuditReaderSvc
	AuditWriterSvc
}
