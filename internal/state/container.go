// internal/state/container.go
package state

import (
	"log"
	"sync"

	"chronos/internal/models"
	"chronos/internal/storage"
)

// Container owns the current AppState snapshot. Every mutation runs on a
// deep copy and replaces the published pointer atomically, so readers
// always see a consistent whole and there is exactly one writer path.
type Container struct {
	mu      sync.Mutex
	current *models.AppState
	store   storage.SnapshotStore
	subs    []func(*models.AppState)
}

func NewContainer(store storage.SnapshotStore, initial *models.AppState) *Container {
	return &Container{store: store, current: initial}
}

// Snapshot returns the published state. Callers must treat it as
// read-only; mutations go through Mutate.
func (c *Container) Snapshot() *models.AppState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Mutate runs fn on a draft copy. When fn reports a change the draft
// becomes the new snapshot and is saved; otherwise it is discarded and
// no persistence write happens (the accrual tick relies on this).
func (c *Container) Mutate(fn func(draft *models.AppState) bool) {
	c.mu.Lock()
	draft := c.current.Clone()
	if !fn(draft) {
		c.mu.Unlock()
		return
	}
	c.current = draft
	if c.store != nil {
		if err := c.store.Save(draft); err != nil {
			// хранилище может отставать, состояние в памяти — главное
			log.Printf("[state][save][err] %v", err)
		}
	}
	subs := make([]func(*models.AppState), len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, sub := range subs {
		sub(draft)
	}
}

// Subscribe registers fn to run after every snapshot swap. Subscribers
// are called outside the container lock and may call Mutate themselves.
func (c *Container) Subscribe(fn func(*models.AppState)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}
