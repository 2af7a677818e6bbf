package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/apperrors"
	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/domain"
	portsrepo "github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/ports/repositories"
	portssvc "github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/ports/services"
	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/platform/logging"
)

// workflowService is the finite-state engine governing record lifecycle.
// It is the only code path that changes a record's status, so every change
// carries exactly one audit entry.
type workflowService struct {
	recordRepo portsrepo.RecordRepository
	auditRepo  portsrepo.AuditLogRepository
	now        func() time.Time
}

// NewWorkflowService creates a new workflow engine over the given stores.
func NewWorkflowService(recordRepo portsrepo.RecordRepository, auditRepo portsrepo.AuditLogRepository) portssvc.WorkflowSvcFacade {
	return &workflowService{
		recordRepo: recordRepo,
		auditRepo:  auditRepo,
		now:        time.Now,
	}
}

var _ portssvc.WorkflowSvcFacade = (*workflowService)(nil)

// AvailableTransitions returns the transition-table rows for status whose
// allowed roles contain role. Pure; no side effects.
func (s *workflowService) AvailableTransitions(status domain.RecordStatus, role domain.Role) []domain.WorkflowTransition {
	available := []domain.WorkflowTransition{}
	for _, t := range domain.TransitionTable[status] {
		if t.RoleAllowed(role) {
			available = append(available, t)
		}
	}
	return available
}

// CanTransition reports whether target appears among the transitions
// available to role from status.
func (s *workflowService) CanTransition(status, target domain.RecordStatus, role domain.Role) bool {
	for _, t := range s.AvailableTransitions(status, role) {
		if t.To == target {
			return true
		}
	}
	return false
}

// matchTransition finds the transition-table row from status to target,
// ignoring roles. Used to distinguish wrong-state from wrong-role failures
// in diagnostics.
func matchTransition(status, target domain.RecordStatus) (domain.WorkflowTransition, bool) {
	for _, t := range domain.TransitionTable[status] {
		if t.To == target {
			return t, true
		}
	}
	return domain.WorkflowTransition{}, false
}

// Transition validates and applies a status change. The record update and
// the audit append both complete before the call returns, so the new entry
// is visible to any trail reader immediately.
func (s *workflowService) Transition(ctx context.Context, recordID string, target domain.RecordStatus, role domain.Role, actor, comment string) (*domain.Record, *domain.AuditLogEntry, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	record, err := s.recordRepo.FindRecordByID(ctx, recordID)
	if err != nil {
		return nil, nil, err
	}

	row, exists := matchTransition(record.Status, target)
	if !exists {
		return nil, nil, fmt.Errorf("%w: no transition from %s to %s", apperrors.ErrInvalidTransition, record.Status, target)
	}
	if !row.RoleAllowed(role) {
		return nil, nil, fmt.Errorf("%w: role %s may not move %s from %s to %s", apperrors.ErrInvalidTransition, role, record.Type, record.Status, target)
	}
	if row.RequiresComment && strings.TrimSpace(comment) == "" {
		return nil, nil, fmt.Errorf("%w: %s -> %s", apperrors.ErrMissingComment, record.Status, target)
	}

	now := s.now().UTC()
	fromStatus := record.Status
	record.Status = target
	record.LastUpdatedAt = now
	record.LastUpdatedBy = actor

	if err := s.recordRepo.UpdateRecord(ctx, *record); err != nil {
		return nil, nil, fmt.Errorf("failed to update record %s: %w", recordID, err)
	}

	entry := domain.AuditLogEntry{
		EntryID:    uuid.NewString(),
		RecordID:   recordID,
		Timestamp:  now,
		User:       actor,
		Role:       role,
		Action:     domain.AuditActionStatusChange,
		FromStatus: fromStatus,
		ToStatus:   target,
		Comment:    strings.TrimSpace(comment),
	}
	if err := s.auditRepo.AppendEntry(ctx, entry); err != nil {
		// Roll the status back so no change is observable without its entry.
		record.Status = fromStatus
		if revertErr := s.recordRepo.UpdateRecord(ctx, *record); revertErr != nil {
			logger.Error("Failed to revert record after audit append failure",
				slog.String("record_id", recordID), slog.String("error", revertErr.Error()))
		}
		return nil, nil, fmt.Errorf("failed to append audit entry for record %s: %w", recordID, err)
	}

	logger.Info("Record transitioned",
		slog.String("record_id", recordID),
		slog.String("from", string(fromStatus)),
		slog.String("to", string(target)),
		slog.String("role", string(role)),
		slog.String("actor", actor),
	)

	return record, &entry, nil
}
