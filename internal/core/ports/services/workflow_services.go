package services

import (
	"context"

	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/domain"
)

// WorkflowReaderSvc defines the pure, side-effect-free queries over the
// transition table.
type WorkflowReaderSvc interface {
	// AvailableTransitions returns the transition-table rows for status whose
	// allowed roles contain role. Empty for archived and for roles with no
	// permitted transition; callers suppress transition controls on empty.
	AvailableTransitions(status domain.RecordStatus, role domain.Role) []domain.WorkflowTransition

	// CanTransition reports whether target appears among
	// AvailableTransitions(status, role).
	CanTransition(status, target domain.RecordStatus, role domain.Role) bool
}

// WorkflowExecutorSvc applies transitions to stored records.
type WorkflowExecutorSvc interface {
	// Transition validates and applies a status change, returning the updated
	// record and the single audit entry recorded for it. The status update
	// and the audit append are both visible before the call returns.
	// Fails with apperrors.ErrInvalidTransition or apperrors.ErrMissingComment.
	Transition(ctx context.Context, recordID string, target domain.RecordStatus, role domain.Role, actor, comment string) (*domain.Record, *domain.AuditLogEntry, error)
}

// WorkflowSvcFacade combines the workflow engine interfaces.
type WorkflowSvcFacade interface {
	WorkflowReaderSvc
	WorkflowExecutorSvc
}
