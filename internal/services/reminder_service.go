package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"chronos/internal/models"
	"chronos/internal/state"
)

type ReminderDraft struct {
	Title         string                `json:"title"`
	Category      string                `json:"category"`
	Priority      models.Priority       `json:"priority"`
	EstimatedTime float64               `json:"estimated_time"`
	Type          models.RecurrenceType `json:"type"` // Daily|Weekly|Monthly
}

// ReminderService is the blueprint registry: reusable task templates
// grouped by cadence, each instantiable into a fresh Pending task any
// number of times.
type ReminderService interface {
	Add(draft ReminderDraft) (*models.Reminder, error)
	Update(id string, upd models.ReminderUpdate) (*models.Reminder, error)
	Delete(id string) error
	Instantiate(id string) (*models.Task, error)
}

type reminderService struct {
	container *state.Container
	tasks     TaskService
	now       func() time.Time
}

func NewReminderService(container *state.Container, tasks TaskService) ReminderService {
	return &reminderService{container: container, tasks: tasks, now: time.Now}
}

var cadencePrefix = map[models.RecurrenceType]string{
	models.RecurrenceDaily:   "D",
	models.RecurrenceWeekly:  "W",
	models.RecurrenceMonthly: "M",
}

func (s *reminderService) Add(draft ReminderDraft) (*models.Reminder, error) {
	prefix, ok := cadencePrefix[draft.Type]
	if !ok {
		return nil, fmt.Errorf("invalid reminder cadence %q", draft.Type)
	}
	if draft.Priority == "" {
		draft.Priority = models.PriorityMedium
	}
	var out models.Reminder
	s.container.Mutate(func(st *models.AppState) bool {
		// per-cadence monotonic counter: display ids never repeat even
		// after deleting and re-adding reminders of the same cadence
		st.ReminderSeq[draft.Type]++
		out = models.Reminder{
			ID:            uuid.New().String(),
			DisplayID:     fmt.Sprintf("%s-%02d", prefix, st.ReminderSeq[draft.Type]),
			Title:         draft.Title,
			Category:      draft.Category,
			Priority:      draft.Priority,
			EstimatedTime: draft.EstimatedTime,
			Type:          draft.Type,
		}
		st.Reminders = append(st.Reminders, out)
		return true
	})
	return &out, nil
}

func (s *reminderService) Update(id string, upd models.ReminderUpdate) (*models.Reminder, error) {
	var out *models.Reminder
	err := ErrNotFound
	s.container.Mutate(func(st *models.AppState) bool {
		r := st.ReminderByID(id)
		if r == nil {
			return false
		}
		if upd.Title != nil {
			r.Title = *upd.Title
		}
		if upd.Category != nil {
			r.Category = *upd.Category
		}
		if upd.Priority != nil {
			r.Priority = *upd.Priority
		}
		if upd.EstimatedTime != nil {
			r.EstimatedTime = *upd.EstimatedTime
		}
		out = r
		err = nil
		return true
	})
	return out, err
}

func (s *reminderService) Delete(id string) error {
	err := ErrNotFound
	s.container.Mutate(func(st *models.AppState) bool {
		for i := range st.Reminders {
			if st.Reminders[i].ID == id {
				st.Reminders = append(st.Reminders[:i], st.Reminders[i+1:]...)
				err = nil
				return true
			}
		}
		return false
	})
	return err
}

// Instantiate copies the template into a new Pending task due today.
// The reminder itself is never mutated.
func (s *reminderService) Instantiate(id string) (*models.Task, error) {
	r := s.container.Snapshot().ReminderByID(id)
	if r == nil {
		return nil, ErrNotFound
	}
	task := s.tasks.Add(TaskDraft{
		Title:         r.Title,
		Category:      r.Category,
		Priority:      r.Priority,
		EstimatedTime: r.EstimatedTime,
		DueDate:       s.now().Format("2006-01-02"),
		Type:          r.Type,
		Status:        models.StatusPending,
	})
	return &task, nil
}
