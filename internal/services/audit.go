package services

import (
	"time"

	"github.com/google/uuid"

	"chronos/internal/models"
)

// appendAudit prepends a user-attributed entry and truncates the trail
// to MaxAuditEntries. It must run inside a container mutation so the
// entry lands in the same snapshot as the change it describes.
//
// Only task add/status/delete and bill add are audited; bill edits and
// reminder operations are not.
func appendAudit(draft *models.AppState, now time.Time, action, module string) {
	entry := models.AuditEntry{
		ID:        uuid.New().String(),
		Timestamp: now,
		Action:    action,
		Module:    module,
	}
	if u := draft.UserByID(draft.CurrentUserID); u != nil {
		entry.UserID = u.ID
		entry.UserName = u.Name
	}
	draft.AuditLogs = append([]models.AuditEntry{entry}, draft.AuditLogs...)
	if len(draft.AuditLogs) > models.MaxAuditEntries {
		draft.AuditLogs = draft.AuditLogs[:models.MaxAuditEntries]
	}
}
