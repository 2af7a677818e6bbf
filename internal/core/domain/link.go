package domain

import "time"

// LinkedRecord is a directed association from a source record to another
// safety record. Links live in an adjacency structure keyed by source
// record id; the reverse edge is a separate association that callers create
// explicitly (or via the auto-mirror option on the record service).
type LinkedRecord struct {
	RecordID     string       `json:"recordID"` // Target record id
	Type         RecordType   `json:"type"`
	RecordNumber string       `json:"recordNumber"` // Target's human-readable number
	Title        string       `json:"title"`
	Status       RecordStatus `json:"status"`
	LinkedAt     time.Time    `json:"linkedAt"`
}
