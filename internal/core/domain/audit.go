package domain

import "time"

// AuditAction names the kind of event an audit entry records.
type AuditAction string

const (
	AuditActionCreated      AuditAction = "created"
	AuditActionStatusChange AuditAction = "status_change"
	AuditActionComment      AuditAction = "comment"
	AuditActionLinked       AuditAction = "linked"
	AuditActionUnlinked     AuditAction = "unlinked"
)

// AuditLogEntry is one immutable entry in a record's audit trail. Entries
// are append-only and totally ordered by insertion; a status change on a
// record has exactly one corresponding entry, created atomically with the
// mutation.
type AuditLogEntry struct {
	EntryID    string       `json:"entryID"`  // Primary key (UUID)
	RecordID   string       `json:"recordID"` // Record the entry belongs to
	Timestamp  time.Time    `json:"timestamp"`
	User       string       `json:"user"` // Acting user
	Role       Role         `json:"role"` // Simulated role at the time of the action
	Action     AuditAction  `json:"action"`
	FromStatus RecordStatus `json:"fromStatus,omitempty"`
	ToStatus   RecordStatus `json:"toStatus,omitempty"`
	Comment    string       `json:"comment,omitempty"`
}
