package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/apperrors"
	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/domain"
	portsrepo "github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/ports/repositories"
	portssvc "github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/ports/services"
	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/dto"
	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/platform/logging"
)

// recordService is the in-process contract form and page collaborators
// consume: permission-gated CRUD over records, lifecycle moves through the
// workflow engine, comments, and record linking. Every mutation leaves an
// audit entry.
type recordService struct {
	recordRepo    portsrepo.RecordRepository
	permissionSvc portssvc.PermissionSvcFacade
	workflowSvc   portssvc.WorkflowSvcFacade
	auditSvc      portssvc.AuditSvcFacade
	linkSvc       portssvc.LinkGraphSvcFacade
	validate      *validator.Validate
	autoMirror    bool
	now           func() time.Time
}

// RecordServiceOption configures optional behavior of the record service.
type RecordServiceOption func(*recordService)

// WithLinkAutoMirror makes LinkRecords create the reverse edge as well, so
// associations read the same from both ends.
func WithLinkAutoMirror(enabled bool) RecordServiceOption {
	return func(s *recordService) {
		s.autoMirror = enabled
	}
}

// NewRecordService creates a record service wired to its collaborators.
func NewRecordService(
	recordRepo portsrepo.RecordRepository,
	permissionSvc portssvc.PermissionSvcFacade,
	workflowSvc portssvc.WorkflowSvcFacade,
	auditSvc portssvc.AuditSvcFacade,
	linkSvc portssvc.LinkGraphSvcFacade,
	opts ...RecordServiceOption,
) portssvc.RecordSvcFacade {
	s := &recordService{
		recordRepo:    recordRepo,
		permissionSvc: permissionSvc,
		workflowSvc:   workflowSvc,
		auditSvc:      auditSvc,
		linkSvc:       linkSvc,
		validate:      validator.New(),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.RecordSvcFacade = (*recordService)(nil)

// CreateRecord validates the request, checks create permission, and stores
// a new draft record.
func (s *recordService) CreateRecord(ctx context.Context, req dto.CreateRecordRequest, role domain.Role, actor string) (*dto.RecordResponse, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	recordType := domain.RecordType(req.Type)
	if !recordType.IsValid() {
		return nil, fmt.Errorf("%w: unknown record type %q", apperrors.ErrValidation, req.Type)
	}

	if !s.permissionSvc.CanCreateRecord(role, recordType) {
		return nil, fmt.Errorf("%w: role %s may not create %s records", apperrors.ErrForbidden, role, recordType)
	}

	priority := domain.RecordPriority(req.Priority)
	if priority == "" {
		priority = domain.PriorityMedium
	}

	recordNumber, err := s.recordRepo.NextRecordNumber(ctx, recordType)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	record := domain.Record{
		RecordID:     uuid.NewString(),
		RecordNumber: recordNumber,
		Type:         recordType,
		Title:        req.Title,
		Description:  req.Description,
		Status:       domain.StatusDraft,
		Priority:     priority,
		Owner:        req.Owner,
		Site:         req.Site,
		Payload:      req.Payload,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if err := s.recordRepo.SaveRecord(ctx, record); err != nil {
		return nil, err
	}

	if _, err := s.auditSvc.Append(ctx, domain.AuditLogEntry{
		RecordID:  record.RecordID,
		Timestamp: now,
		User:      actor,
		Role:      role,
		Action:    domain.AuditActionCreated,
		ToStatus:  domain.StatusDraft,
	}); err != nil {
		return nil, fmt.Errorf("failed to record creation of %s: %w", record.RecordID, err)
	}

	logger.Info("Record created",
		slog.String("record_id", record.RecordID),
		slog.String("record_number", record.RecordNumber),
		slog.String("type", string(recordType)),
		slog.String("actor", actor),
	)

	return s.toResponse(&record, role), nil
}

// GetRecord retrieves a record the role is allowed to see.
func (s *recordService) GetRecord(ctx context.Context, recordID string, role domain.Role) (*dto.RecordResponse, error) {
	record, err := s.recordRepo.FindRecordByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if !s.permissionSvc.CanViewModule(role, record.Type.Module()) {
		return nil, fmt.Errorf("%w: role %s may not view %s", apperrors.ErrForbidden, role, record.Type.Module())
	}
	return s.toResponse(record, role), nil
}

// ListRecords returns the records whose modules are visible to the role.
func (s *recordService) ListRecords(ctx context.Context, role domain.Role, params dto.ListRecordsParams) (*dto.ListRecordsResponse, error) {
	if params.Limit <= 0 {
		params.Limit = 20
	}

	records, err := s.recordRepo.FindRecords(ctx, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}

	responses := []dto.RecordResponse{}
	for i := range records {
		if !s.permissionSvc.CanViewModule(role, records[i].Type.Module()) {
			continue
		}
		responses = append(responses, *s.toResponse(&records[i], role))
	}

	return &dto.ListRecordsResponse{
		Records: responses,
		Limit:   params.Limit,
		Offset:  params.Offset,
	}, nil
}

// TransitionRecord moves a record through the workflow engine.
func (s *recordService) TransitionRecord(ctx context.Context, recordID string, target domain.RecordStatus, role domain.Role, actor, comment string) (*dto.RecordResponse, error) {
	record, _, err := s.workflowSvc.Transition(ctx, recordID, target, role, actor, comment)
	if err != nil {
		return nil, err
	}
	return s.toResponse(record, role), nil
}

// AddComment appends a comment-only audit entry to the record's trail.
func (s *recordService) AddComment(ctx context.Context, recordID string, role domain.Role, actor, comment string) (*domain.AuditLogEntry, error) {
	if strings.TrimSpace(comment) == "" {
		return nil, fmt.Errorf("%w: comment must not be empty", apperrors.ErrValidation)
	}
	if _, err := s.recordRepo.FindRecordByID(ctx, recordID); err != nil {
		return nil, err
	}
	return s.auditSvc.Append(ctx, domain.AuditLogEntry{
		RecordID: recordID,
		User:     actor,
		Role:     role,
		Action:   domain.AuditActionComment,
		Comment:  strings.TrimSpace(comment),
	})
}

// LinkRecords links source to target, refusing edges that would close a
// cycle. With auto-mirroring the reverse edge is created in the same call.
func (s *recordService) LinkRecords(ctx context.Context, sourceID, targetID string, role domain.Role, actor string) error {
	logger := logging.GetLoggerFromCtx(ctx)

	if sourceID == targetID {
		return fmt.Errorf("%w: a record cannot link to itself", apperrors.ErrValidation)
	}

	source, err := s.recordRepo.FindRecordByID(ctx, sourceID)
	if err != nil {
		return err
	}
	target, err := s.recordRepo.FindRecordByID(ctx, targetID)
	if err != nil {
		return err
	}

	// The mirrored pair source<->target is deliberately not a cycle; only a
	// longer way back from target to source is.
	if !s.autoMirror {
		reachable, err := s.linkSvc.IsReachable(ctx, targetID, sourceID)
		if err != nil {
			return err
		}
		if reachable {
			return fmt.Errorf("%w: %s is already reachable from %s", apperrors.ErrLinkCycle, sourceID, targetID)
		}
	}

	now := s.now().UTC()
	targetLink := toLinkedRecord(target, now)
	if s.autoMirror {
		err = s.linkSvc.LinkBoth(ctx, sourceID, targetLink, toLinkedRecord(source, now))
	} else {
		err = s.linkSvc.AddLink(ctx, sourceID, targetLink)
	}
	if err != nil {
		return err
	}

	if _, err := s.auditSvc.Append(ctx, domain.AuditLogEntry{
		RecordID: sourceID,
		User:     actor,
		Role:     role,
		Action:   domain.AuditActionLinked,
		Comment:  fmt.Sprintf("linked to %s", target.RecordNumber),
	}); err != nil {
		return err
	}
	if s.autoMirror {
		if _, err := s.auditSvc.Append(ctx, domain.AuditLogEntry{
			RecordID: targetID,
			User:     actor,
			Role:     role,
			Action:   domain.AuditActionLinked,
			Comment:  fmt.Sprintf("linked to %s", source.RecordNumber),
		}); err != nil {
			return err
		}
	}

	logger.Info("Records linked",
		slog.String("source_id", sourceID),
		slog.String("target_id", targetID),
		slog.Bool("mirrored", s.autoMirror),
	)
	return nil
}

// UnlinkRecords removes the association created by LinkRecords.
func (s *recordService) UnlinkRecords(ctx context.Context, sourceID, targetID string, role domain.Role, actor string) error {
	if err := s.linkSvc.RemoveLink(ctx, sourceID, targetID); err != nil {
		return err
	}
	if s.autoMirror {
		if err := s.linkSvc.RemoveLink(ctx, targetID, sourceID); err != nil {
			return err
		}
	}
	if _, err := s.auditSvc.Append(ctx, domain.AuditLogEntry{
		RecordID: sourceID,
		User:     actor,
		Role:     role,
		Action:   domain.AuditActionUnlinked,
		Comment:  fmt.Sprintf("unlinked from %s", targetID),
	}); err != nil {
		return err
	}
	return nil
}

// LinkedRecords returns the records linked from the given record.
func (s *recordService) LinkedRecords(ctx context.Context, recordID string) ([]domain.LinkedRecord, error) {
	return s.linkSvc.Links(ctx, recordID)
}

func (s *recordService) toResponse(record *domain.Record, role domain.Role) *dto.RecordResponse {
	resp := dto.ToRecordResponse(record, s.workflowSvc.AvailableTransitions(record.Status, role))
	return &resp
}

func toLinkedRecord(record *domain.Record, linkedAt time.Time) domain.LinkedRecord {
	return domain.LinkedRecord{
		RecordID:     record.RecordID,
		Type:         record.Type,
		RecordNumber: record.RecordNumber,
		Title:        record.Title,
		Status:       record.Status,
		LinkedAt:     linkedAt,
	}
}
