package models

import "time"

// MaxAuditEntries caps the audit trail; the oldest entry is evicted when
// a 101st is appended.
const MaxAuditEntries = 100

// AuditEntry is one user-attributed action, newest first in the trail.
type AuditEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Action    string    `json:"action"`
	Module    string    `json:"module"` // "tasks" | "utilities" | ...
}
