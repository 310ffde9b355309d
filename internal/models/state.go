// internal/models/state.go
package models

import "time"

// AppState is the aggregate root. It exclusively owns every collection;
// mutations never edit a published snapshot in place, they replace it
// with a new one (see internal/state).
type AppState struct {
	Tasks     []Task        `json:"tasks"`
	Bills     []UtilityBill `json:"bills"`
	Reminders []Reminder    `json:"reminders"`
	// ReminderSeq holds a monotonic per-cadence counter used for display
	// ids, so deleting and re-adding reminders never repeats an id.
	ReminderSeq   map[RecurrenceType]int `json:"reminder_seq"`
	Users         []User                 `json:"users"`
	AuditLogs     []AuditEntry           `json:"audit_logs"`
	Settings      Settings               `json:"settings"`
	DarkMode      bool                   `json:"dark_mode"`
	CurrentUserID string                 `json:"current_user_id"`
	ActiveTaskID  string                 `json:"active_task_id,omitempty"`
}

// Clone returns a deep copy. Pointer fields inside tasks are re-allocated
// so a draft can never alias a published snapshot.
func (s *AppState) Clone() *AppState {
	out := *s

	out.Tasks = make([]Task, len(s.Tasks))
	for i, t := range s.Tasks {
		t.StartTime = copyTime(t.StartTime)
		t.LastPausedAt = copyTime(t.LastPausedAt)
		t.CompletedAt = copyTime(t.CompletedAt)
		out.Tasks[i] = t
	}
	out.Bills = append([]UtilityBill(nil), s.Bills...)
	out.Reminders = append([]Reminder(nil), s.Reminders...)
	out.Users = append([]User(nil), s.Users...)
	out.AuditLogs = append([]AuditEntry(nil), s.AuditLogs...)

	out.ReminderSeq = make(map[RecurrenceType]int, len(s.ReminderSeq))
	for k, v := range s.ReminderSeq {
		out.ReminderSeq[k] = v
	}
	if s.Settings.RolePermissions != nil {
		out.Settings.RolePermissions = make(map[Role]Permission, len(s.Settings.RolePermissions))
		for k, v := range s.Settings.RolePermissions {
			out.Settings.RolePermissions[k] = v
		}
	}
	return &out
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// TaskByID returns a pointer into the receiver's own slice, or nil.
// Callers must only use it on a draft they own.
func (s *AppState) TaskByID(id string) *Task {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i]
		}
	}
	return nil
}

func (s *AppState) BillByID(id string) *UtilityBill {
	for i := range s.Bills {
		if s.Bills[i].ID == id {
			return &s.Bills[i]
		}
	}
	return nil
}

func (s *AppState) ReminderByID(id string) *Reminder {
	for i := range s.Reminders {
		if s.Reminders[i].ID == id {
			return &s.Reminders[i]
		}
	}
	return nil
}

func (s *AppState) UserByID(id string) *User {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

// AnyTaskInProgress reports whether the accrual timer has work to do.
func (s *AppState) AnyTaskInProgress() bool {
	for i := range s.Tasks {
		if s.Tasks[i].Status == StatusInProgress {
			return true
		}
	}
	return false
}
