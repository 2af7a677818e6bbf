package services

import (
	"context"

	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/domain"
	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/dto"
)

// RecordReaderSvc defines permission-gated read operations over records.
type RecordReaderSvc interface {
	// GetRecord retrieves a record the role is allowed to see. Fails with
	// apperrors.ErrForbidden when the role cannot view the record's module.
	GetRecord(ctx context.Context, recordID string, role domain.Role) (*dto.RecordResponse, error)

	// ListRecords returns the records whose modules are visible to the role,
	// in creation order.
	ListRecords(ctx context.Context, role domain.Role, params dto.ListRecordsParams) (*dto.ListRecordsResponse, error)
}

// RecordWriterSvc defines the mutations view layers perform on records.
// Every mutation leaves an audit entry.
type RecordWriterSvc interface {
	// CreateRecord validates the request, checks create permission, and
	// stores a new draft record with a generated id and record number.
	CreateRecord(ctx context.Context, req dto.CreateRecordRequest, role domain.Role, actor string) (*dto.RecordResponse, error)

	// TransitionRecord moves a record through the workflow engine.
	TransitionRecord(ctx context.Context, recordID string, target domain.RecordStatus, role domain.Role, actor, comment string) (*dto.RecordResponse, error)

	// AddComment appends a comment-only audit entry to the record's trail.
	AddComment(ctx context.Context, recordID string, role domain.Role, actor, comment string) (*domain.AuditLogEntry, error)
}

// RecordLinkerSvc associates records in the link graph.
type RecordLinkerSvc interface {
	// LinkRecords links source to target (mirrored when auto-mirroring is
	// configured). Fails with apperrors.ErrLinkCycle when the edge would
	// close a cycle.
	LinkRecords(ctx context.Context, sourceID, targetID string, role domain.Role, actor string) error

	// UnlinkRecords removes the association created by LinkRecords.
	UnlinkRecords(ctx context.Context, sourceID, targetID string, role domain.Role, actor string) error

	// LinkedRecords returns the records linked from the given record.
	LinkedRecords(ctx context.Context, recordID string) ([]domain.LinkedRecord, error)
}

// RecordSvcFacade combines all record service interfaces. It is the
// in-process contract form and page collaborators consume.
type RecordSvcFacade interface {
	RecordReaderSvc
	RecordWriterSvc
	RecordLinkerSvc
}
