package domain

// RecordType identifies the concrete variant of a safety record.
type RecordType string

const (
	RecordTypeIncident    RecordType = "incident"
	RecordTypeInspection  RecordType = "inspection"
	RecordTypeJSA         RecordType = "jsa"
	RecordTypePermit      RecordType = "permit"
	RecordTypeObservation RecordType = "observation"
	RecordTypeCAPA        RecordType = "capa"
	RecordTypeTraining    RecordType = "training"
	RecordTypeSiteDiary   RecordType = "site_diary"
)

// RecordNumberPrefixes maps each record type to the prefix used when
// generating human-readable record numbers (e.g. INC-2026-0001).
var RecordNumberPrefixes = map[RecordType]string{
	RecordTypeIncident:    "INC",
	RecordTypeInspection:  "INSP",
	RecordTypeJSA:         "JSA",
	RecordTypePermit:      "PRM",
	RecordTypeObservation: "OBS",
	RecordTypeCAPA:        "CAPA",
	RecordTypeTraining:    "TRN",
	RecordTypeSiteDiary:   "SD",
}

// IsValid reports whether t is a known record type.
func (t RecordType) IsValid() bool {
	_, ok := RecordNumberPrefixes[t]
	return ok
}

// moduleForType maps each record type to the UI module its records live in.
// Module names are what the permission table's view lists refer to.
var moduleForType = map[RecordType]string{
	RecordTypeIncident:    "incidents",
	RecordTypeInspection:  "inspections",
	RecordTypeJSA:         "jsas",
	RecordTypePermit:      "permits",
	RecordTypeObservation: "observations",
	RecordTypeCAPA:        "capas",
	RecordTypeTraining:    "trainings",
	RecordTypeSiteDiary:   "site_diary",
}

// Module returns the module name records of this type are viewed under.
func (t RecordType) Module() string {
	return moduleForType[t]
}

// RecordStatus indicates where a record sits in the workflow lifecycle.
type RecordStatus string

const (
	StatusDraft       RecordStatus = "draft"
	StatusSubmitted   RecordStatus = "submitted"
	StatusUnderReview RecordStatus = "under_review"
	StatusApproved    RecordStatus = "approved"
	StatusClosed      RecordStatus = "closed"
	StatusArchived    RecordStatus = "archived" // terminal
)

// AllStatuses lists every workflow status in lifecycle order.
var AllStatuses = []RecordStatus{
	StatusDraft,
	StatusSubmitted,
	StatusUnderReview,
	StatusApproved,
	StatusClosed,
	StatusArchived,
}

// IsValid reports whether s is a member of the fixed status enumeration.
func (s RecordStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s RecordStatus) IsTerminal() bool {
	return s == StatusArchived
}

// RecordPriority classifies the urgency of a record.
type RecordPriority string

const (
	PriorityLow      RecordPriority = "low"
	PriorityMedium   RecordPriority = "medium"
	PriorityHigh     RecordPriority = "high"
	PriorityCritical RecordPriority = "critical"
)

// Record represents a safety-domain entity (incident, inspection, JSA,
// permit, observation, CAPA, training, site diary) subject to the workflow
// lifecycle. Status changes only via the workflow engine, never by direct
// assignment, so every change is audited.
type Record struct {
	RecordID     string            `json:"recordID"`     // Primary key (UUID)
	RecordNumber string            `json:"recordNumber"` // Human-readable number, e.g. INC-2026-0001
	Type         RecordType        `json:"type"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Status       RecordStatus      `json:"status"`   // Default: draft
	Priority     RecordPriority    `json:"priority"` // Default: medium
	Owner        string            `json:"owner"`    // UserID reference
	Site         string            `json:"site"`     // Site or project identifier
	Payload      map[string]string `json:"payload,omitempty"` // Type-specific fields
	AuditFields
}
