package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronos/internal/models"
)

type countingStore struct {
	saves int
	last  *models.AppState
}

func (s *countingStore) Load() (*models.AppState, error) { return nil, nil }
func (s *countingStore) Save(st *models.AppState) error {
	s.saves++
	s.last = st
	return nil
}

func TestContainer_MutateReplacesSnapshot(t *testing.T) {
	store := &countingStore{}
	c := NewContainer(store, models.DefaultState(time.Now()))
	before := c.Snapshot()

	c.Mutate(func(st *models.AppState) bool {
		st.DarkMode = true
		return true
	})

	after := c.Snapshot()
	assert.NotSame(t, before, after)
	assert.False(t, before.DarkMode, "published snapshots are immutable")
	assert.True(t, after.DarkMode)
	assert.Equal(t, 1, store.saves)
	assert.Same(t, after, store.last, "every swap is persisted synchronously")
}

func TestContainer_UnchangedDraftIsDiscarded(t *testing.T) {
	store := &countingStore{}
	c := NewContainer(store, models.DefaultState(time.Now()))
	before := c.Snapshot()

	c.Mutate(func(st *models.AppState) bool {
		st.DarkMode = true // thrown away: fn reports no change
		return false
	})

	assert.Same(t, before, c.Snapshot())
	assert.Zero(t, store.saves, "no redundant persistence churn")
}

func TestContainer_DraftNeverAliasesSnapshot(t *testing.T) {
	c := NewContainer(nil, models.DefaultState(time.Now()))
	before := c.Snapshot()
	beforeTitle := before.Tasks[0].Title

	c.Mutate(func(st *models.AppState) bool {
		st.Tasks[0].Title = "mutated"
		ts := time.Now()
		st.Tasks[0].CompletedAt = &ts
		st.ReminderSeq[models.RecurrenceDaily] = 42
		return true
	})

	assert.Equal(t, beforeTitle, before.Tasks[0].Title)
	assert.Nil(t, before.Tasks[0].CompletedAt)
	assert.Zero(t, before.ReminderSeq[models.RecurrenceDaily])
}

func TestContainer_SubscribersSeeEverySwap(t *testing.T) {
	c := NewContainer(nil, models.DefaultState(time.Now()))

	var seen []*models.AppState
	c.Subscribe(func(st *models.AppState) { seen = append(seen, st) })

	c.Mutate(func(st *models.AppState) bool { st.DarkMode = true; return true })
	c.Mutate(func(st *models.AppState) bool { return false })
	c.Mutate(func(st *models.AppState) bool { st.DarkMode = false; return true })

	require.Len(t, seen, 2, "discarded drafts are not announced")
	assert.Same(t, c.Snapshot(), seen[1])
}

func TestContainer_SubscribeDuringNotify(t *testing.T) {
	c := NewContainer(nil, models.DefaultState(time.Now()))

	var late int
	c.Subscribe(func(*models.AppState) {
		c.Subscribe(func(*models.AppState) { late++ })
	})

	// the notification list is copied under the lock, so a registration
	// from inside a subscriber only takes effect on the next swap
	c.Mutate(func(st *models.AppState) bool { st.DarkMode = true; return true })
	assert.Zero(t, late)

	c.Mutate(func(st *models.AppState) bool { st.DarkMode = false; return true })
	assert.Equal(t, 1, late)
}
