package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronos/internal/models"
)

func TestTimer_ThreeTicksAccrueThreeSeconds(t *testing.T) {
	c := newTestContainer()
	svc := NewTaskService(c)
	task := svc.Add(TaskDraft{Title: "count me"})
	_, err := svc.Start(task.ID)
	require.NoError(t, err)

	sup := &TimerSupervisor{container: c, interval: time.Second}
	sup.Tick()
	sup.Tick()
	sup.Tick()

	got := c.Snapshot().TaskByID(task.ID)
	assert.InDelta(t, 3.0/60, got.ActualTime, 1e-9)
	assert.Equal(t, models.StatusInProgress, got.Status)
}

func TestTimer_AccruesAllRunningTasksPerTick(t *testing.T) {
	c := newTestContainer()
	svc := NewTaskService(c)
	a := svc.Add(TaskDraft{Title: "a"})
	b := svc.Add(TaskDraft{Title: "b"})
	idle := svc.Add(TaskDraft{Title: "idle"})

	// single-active-task is not enforced; both accrue independently
	_, err := svc.Start(a.ID)
	require.NoError(t, err)
	_, err = svc.Start(b.ID)
	require.NoError(t, err)

	sup := &TimerSupervisor{container: c, interval: time.Second}
	sup.Tick()

	st := c.Snapshot()
	assert.InDelta(t, 1.0/60, st.TaskByID(a.ID).ActualTime, 1e-9)
	assert.InDelta(t, 1.0/60, st.TaskByID(b.ID).ActualTime, 1e-9)
	assert.Zero(t, st.TaskByID(idle.ID).ActualTime)
}

func TestTimer_NoSwapWhenNothingRuns(t *testing.T) {
	c := newTestContainer()
	svc := NewTaskService(c)
	svc.Add(TaskDraft{Title: "pending only"})
	before := c.Snapshot()

	sup := &TimerSupervisor{container: c, interval: time.Second}
	sup.Tick()

	assert.Same(t, before, c.Snapshot(), "an idle tick must not emit a new snapshot")
}

func TestTimer_ActualTimeFrozenAfterComplete(t *testing.T) {
	c := newTestContainer()
	svc := NewTaskService(c)
	task := svc.Add(TaskDraft{Title: "finish line"})
	_, err := svc.Start(task.ID)
	require.NoError(t, err)

	sup := &TimerSupervisor{container: c, interval: time.Second}
	sup.Tick()
	accrued := c.Snapshot().TaskByID(task.ID).ActualTime

	_, err = svc.Complete(task.ID)
	require.NoError(t, err)
	sup.Tick()
	sup.Tick()

	got := c.Snapshot().TaskByID(task.ID)
	assert.Equal(t, accrued, got.ActualTime)
	require.NotNil(t, got.CompletedAt)
}

func TestTimerSupervisor_ReactiveLifecycle(t *testing.T) {
	c := newTestContainer()
	svc := NewTaskService(c)
	task := svc.Add(TaskDraft{Title: "real ticks"})

	sup := NewTimerSupervisor(c, 5*time.Millisecond)
	defer sup.Shutdown()
	sup.Run()

	_, err := svc.Start(task.ID)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return c.Snapshot().TaskByID(task.ID).ActualTime > 0
	}, 2*time.Second, 5*time.Millisecond, "loop should accrue while the task runs")

	_, err = svc.Complete(task.ID)
	require.NoError(t, err)
	frozen := c.Snapshot().TaskByID(task.ID).ActualTime

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, frozen, c.Snapshot().TaskByID(task.ID).ActualTime,
		"loop must tear down once no task is in progress")
}
