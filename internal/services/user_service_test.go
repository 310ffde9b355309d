package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronos/internal/models"
)

func TestUserService_SwitchRejectsSuspended(t *testing.T) {
	c := newTestContainer()
	svc := NewUserService(c)

	u, err := svc.Add(UserDraft{Name: "Temp", Email: "temp@chronos.local", Role: models.RoleStaff})
	require.NoError(t, err)

	suspended := true
	_, err = svc.Update(u.ID, models.UserUpdate{Suspended: &suspended})
	require.NoError(t, err)

	_, err = svc.SetCurrent(u.ID)
	assert.ErrorIs(t, err, ErrSuspended)
	assert.Equal(t, "u1", c.Snapshot().CurrentUserID, "the acting user must not change")
}

func TestUserService_SwitchChangesAttribution(t *testing.T) {
	c := newTestContainer()
	users := NewUserService(c)
	tasks := NewTaskService(c)

	u, err := users.Add(UserDraft{Name: "Second", Email: "second@chronos.local", Role: models.RoleManager})
	require.NoError(t, err)
	_, err = users.SetCurrent(u.ID)
	require.NoError(t, err)

	tasks.Add(TaskDraft{Title: "attributed"})
	assert.Equal(t, "Second", c.Snapshot().AuditLogs[0].UserName)
}

func TestUserService_DeleteCurrentClearsReference(t *testing.T) {
	c := newTestContainer()
	svc := NewUserService(c)

	require.NoError(t, svc.Delete("u1"))
	assert.Empty(t, c.Snapshot().CurrentUserID)
}

func TestUserService_RejectsUnknownRole(t *testing.T) {
	c := newTestContainer()
	svc := NewUserService(c)

	_, err := svc.Add(UserDraft{Name: "X", Role: models.Role("Owner")})
	assert.Error(t, err)
}
