// internal/models/task.go
package models

import "time"

// TaskStatus defines the possible statuses for a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "Pending"
	StatusInProgress TaskStatus = "In Progress"
	StatusCompleted  TaskStatus = "Completed"
)

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// RecurrenceType is a descriptive tag only; it does not drive any
// automatic rescheduling.
type RecurrenceType string

const (
	RecurrenceOneTime RecurrenceType = "One-time"
	RecurrenceDaily   RecurrenceType = "Daily"
	RecurrenceWeekly  RecurrenceType = "Weekly"
	RecurrenceMonthly RecurrenceType = "Monthly"
)

// Task represents a unit of trackable work with estimated vs actual time
// and a status lifecycle.
type Task struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Category      string         `json:"category"`
	Priority      Priority       `json:"priority"`
	EstimatedTime float64        `json:"estimated_time"` // minutes
	ActualTime    float64        `json:"actual_time"`    // minutes, accrued by the timer
	DueDate       string         `json:"due_date"`       // YYYY-MM-DD
	Type          RecurrenceType `json:"type"`
	Status        TaskStatus     `json:"status"`
	StartTime     *time.Time     `json:"start_time,omitempty"`
	LastPausedAt  *time.Time     `json:"last_paused_at,omitempty"`
	CompletedAt   *time.Time     `json:"completed_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// TaskUpdate carries a partial update; nil fields are left untouched.
type TaskUpdate struct {
	Title         *string         `json:"title"`
	Category      *string         `json:"category"`
	Priority      *Priority       `json:"priority"`
	EstimatedTime *float64        `json:"estimated_time"`
	ActualTime    *float64        `json:"actual_time"`
	DueDate       *string         `json:"due_date"`
	Type          *RecurrenceType `json:"type"`
	Status        *TaskStatus     `json:"status"`
}
