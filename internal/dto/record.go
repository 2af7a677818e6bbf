package dto

import (
	"time"

	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/domain"
)

// CreateRecordRequest defines the data needed to create a new safety record.
// New records always start in draft; status is not a caller input.
type CreateRecordRequest struct {
	Type        string            `json:"type" validate:"required"`
	Title       string            `json:"title" validate:"required,min=3,max=200"`
	Description string            `json:"description" validate:"max=5000"`
	Priority    string            `json:"priority" validate:"omitempty,oneof=low medium high critical"`
	Owner       string            `json:"owner" validate:"required"`
	Site        string            `json:"site" validate:"max=100"`
	Payload     map[string]string `json:"payload"`
}

// ListRecordsParams defines pagination parameters for listing records.
type ListRecordsParams struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// RecordResponse is the outward representation of a safety record, enriched
// with the transitions available to the requesting role so view layers can
// render action controls without consulting the engine separately.
type RecordResponse struct {
	RecordID             string                      `json:"recordID"`
	RecordNumber         string                      `json:"recordNumber"`
	Type                 domain.RecordType           `json:"type"`
	Title                string                      `json:"title"`
	Description          string                      `json:"description,omitempty"`
	Status               domain.RecordStatus         `json:"status"`
	Priority             domain.RecordPriority       `json:"priority"`
	Owner                string                      `json:"owner"`
	Site                 string                      `json:"site,omitempty"`
	Payload              map[string]string           `json:"payload,omitempty"`
	CreatedAt            time.Time                   `json:"createdAt"`
	UpdatedAt            time.Time                   `json:"updatedAt"`
	AvailableTransitions []domain.WorkflowTransition `json:"availableTransitions"`
}

// ToRecordResponse converts a domain Record to its response DTO.
func ToRecordResponse(r *domain.Record, transitions []domain.WorkflowTransition) RecordResponse {
	if transitions == nil {
		transitions = []domain.WorkflowTransition{}
	}
	return RecordResponse{
		RecordID:             r.RecordID,
		RecordNumber:         r.RecordNumber,
		Type:                 r.Type,
		Title:                r.Title,
		Description:          r.Description,
		Status:               r.Status,
		Priority:             r.Priority,
		Owner:                r.Owner,
		Site:                 r.Site,
		Payload:              r.Payload,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.LastUpdatedAt,
		AvailableTransitions: transitions,
	}
}

// ListRecordsResponse wraps a page of records.
type ListRecordsResponse struct {
	Records []RecordResponse `json:"records"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

// AuditTrailResponse wraps a page of a record's audit trail along with the
// opaque token for fetching the next page ("" when exhausted).
type AuditTrailResponse struct {
	RecordID  string                 `json:"recordID"`
	Entries   []domain.AuditLogEntry `json:"entries"`
	NextToken string                 `json:"nextToken,omitempty"`
}
