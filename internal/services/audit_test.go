package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronos/internal/models"
)

func TestAuditTrail_CappedAtHundred(t *testing.T) {
	c := newTestContainer()
	now := time.Now()

	for i := 0; i < models.MaxAuditEntries+1; i++ {
		action := fmt.Sprintf("action %03d", i)
		c.Mutate(func(st *models.AppState) bool {
			appendAudit(st, now, action, "tasks")
			return true
		})
	}

	st := c.Snapshot()
	require.Len(t, st.AuditLogs, models.MaxAuditEntries)
	// newest first; entry 000 was evicted
	assert.Equal(t, "action 100", st.AuditLogs[0].Action)
	assert.Equal(t, "action 001", st.AuditLogs[len(st.AuditLogs)-1].Action)
}

func TestAuditTrail_AttributesCurrentUser(t *testing.T) {
	c := newTestContainer()
	c.Mutate(func(st *models.AppState) bool {
		appendAudit(st, time.Now(), "did a thing", "tasks")
		return true
	})

	entry := c.Snapshot().AuditLogs[0]
	assert.Equal(t, "u1", entry.UserID)
	assert.Equal(t, "Operator", entry.UserName)
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.Timestamp.IsZero())
}

func TestAuditTrail_UnknownCurrentUserLeavesAttributionEmpty(t *testing.T) {
	c := newTestContainer()
	c.Mutate(func(st *models.AppState) bool {
		st.CurrentUserID = "gone"
		appendAudit(st, time.Now(), "orphaned", "utilities")
		return true
	})

	entry := c.Snapshot().AuditLogs[0]
	assert.Empty(t, entry.UserID)
	assert.Empty(t, entry.UserName)
}
