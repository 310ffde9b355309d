// internal/services/task_service.go
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"chronos/internal/models"
	"chronos/internal/state"
)

// TaskDraft is the caller-supplied part of a new task; id, actual time
// and creation timestamp are assigned by the service.
type TaskDraft struct {
	Title         string                `json:"title"`
	Category      string                `json:"category"`
	Priority      models.Priority       `json:"priority"`
	EstimatedTime float64               `json:"estimated_time"`
	DueDate       string                `json:"due_date"`
	Type          models.RecurrenceType `json:"type"`
	Status        models.TaskStatus     `json:"status"`
}

// TaskService owns the task collection and its status machine:
// Pending ⇄ In Progress → Completed, with reopen back to Pending.
type TaskService interface {
	Add(draft TaskDraft) models.Task
	Update(id string, upd models.TaskUpdate) (*models.Task, error)
	Delete(id string) error
	Clone(id string) (*models.Task, error)
	Start(id string) (*models.Task, error)
	Pause(id string) (*models.Task, error)
	Complete(id string) (*models.Task, error)
	Reopen(id string) (*models.Task, error)
}

type taskService struct {
	container *state.Container
	now       func() time.Time
}

func NewTaskService(container *state.Container) TaskService {
	return &taskService{container: container, now: time.Now}
}

func (s *taskService) Add(draft TaskDraft) models.Task {
	if draft.Priority == "" {
		draft.Priority = models.PriorityMedium
	}
	if draft.Type == "" {
		draft.Type = models.RecurrenceOneTime
	}
	if draft.Status == "" {
		draft.Status = models.StatusPending
	}
	now := s.now()
	task := models.Task{
		ID:            uuid.New().String(),
		Title:         draft.Title,
		Category:      draft.Category,
		Priority:      draft.Priority,
		EstimatedTime: draft.EstimatedTime,
		ActualTime:    0,
		DueDate:       draft.DueDate,
		Type:          draft.Type,
		Status:        draft.Status,
		CreatedAt:     now,
	}
	s.container.Mutate(func(st *models.AppState) bool {
		st.Tasks = append([]models.Task{task}, st.Tasks...)
		appendAudit(st, now, fmt.Sprintf("Created task %q", task.Title), "tasks")
		return true
	})
	return task
}

func (s *taskService) Update(id string, upd models.TaskUpdate) (*models.Task, error) {
	var out *models.Task
	err := ErrNotFound
	now := s.now()
	s.container.Mutate(func(st *models.AppState) bool {
		t := st.TaskByID(id)
		if t == nil {
			return false
		}
		statusChanged := false
		if upd.Title != nil {
			t.Title = *upd.Title
		}
		if upd.Category != nil {
			t.Category = *upd.Category
		}
		if upd.Priority != nil {
			t.Priority = *upd.Priority
		}
		if upd.EstimatedTime != nil {
			t.EstimatedTime = *upd.EstimatedTime
		}
		if upd.ActualTime != nil {
			t.ActualTime = *upd.ActualTime
		}
		if upd.DueDate != nil {
			t.DueDate = *upd.DueDate
		}
		if upd.Type != nil {
			t.Type = *upd.Type
		}
		if upd.Status != nil && *upd.Status != t.Status {
			statusChanged = true
			s.applyStatus(t, *upd.Status, now)
		}
		if statusChanged {
			appendAudit(st, now, fmt.Sprintf("Changed task %q status to %s", t.Title, t.Status), "tasks")
		}
		out = t
		err = nil
		return true
	})
	return out, err
}

func (s *taskService) Delete(id string) error {
	err := ErrNotFound
	now := s.now()
	s.container.Mutate(func(st *models.AppState) bool {
		for i := range st.Tasks {
			if st.Tasks[i].ID != id {
				continue
			}
			title := st.Tasks[i].Title
			st.Tasks = append(st.Tasks[:i], st.Tasks[i+1:]...)
			if st.ActiveTaskID == id {
				st.ActiveTaskID = ""
			}
			appendAudit(st, now, fmt.Sprintf("Deleted task %q", title), "tasks")
			err = nil
			return true
		}
		return false
	})
	return err
}

func (s *taskService) Clone(id string) (*models.Task, error) {
	src := s.container.Snapshot().TaskByID(id)
	if src == nil {
		return nil, ErrNotFound
	}
	clone := s.Add(TaskDraft{
		Title:         src.Title + " (Clone)",
		Category:      src.Category,
		Priority:      src.Priority,
		EstimatedTime: src.EstimatedTime,
		DueDate:       src.DueDate,
		Type:          src.Type,
		Status:        models.StatusPending,
	})
	return &clone, nil
}

func (s *taskService) Start(id string) (*models.Task, error) {
	return s.transition(id, models.StatusInProgress)
}

func (s *taskService) Pause(id string) (*models.Task, error) {
	return s.transition(id, models.StatusPending)
}

func (s *taskService) Complete(id string) (*models.Task, error) {
	return s.transition(id, models.StatusCompleted)
}

// Reopen puts a completed task back into the Pending ⇄ In Progress
// cycle; there is no terminal state.
func (s *taskService) Reopen(id string) (*models.Task, error) {
	return s.transition(id, models.StatusPending)
}

func (s *taskService) transition(id string, to models.TaskStatus) (*models.Task, error) {
	var out *models.Task
	err := ErrNotFound
	now := s.now()
	s.container.Mutate(func(st *models.AppState) bool {
		t := st.TaskByID(id)
		if t == nil {
			return false
		}
		s.applyStatus(t, to, now)
		if to == models.StatusInProgress {
			st.ActiveTaskID = t.ID
		}
		appendAudit(st, now, fmt.Sprintf("Changed task %q status to %s", t.Title, to), "tasks")
		out = t
		err = nil
		return true
	})
	return out, err
}

// applyStatus keeps the status/timestamp invariants: CompletedAt is set
// iff the task is Completed, StartTime marks the last start,
// LastPausedAt the last drop back to Pending.
func (s *taskService) applyStatus(t *models.Task, to models.TaskStatus, now time.Time) {
	from := t.Status
	t.Status = to
	switch to {
	case models.StatusInProgress:
		ts := now
		t.StartTime = &ts
		t.CompletedAt = nil
	case models.StatusCompleted:
		ts := now
		t.CompletedAt = &ts
	case models.StatusPending:
		if from == models.StatusInProgress {
			ts := now
			t.LastPausedAt = &ts
		}
		t.CompletedAt = nil
	}
}
