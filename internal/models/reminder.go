package models

// Reminder is a reusable task blueprint. It never carries a status or
// actual time; instantiation copies the template fields into a fresh
// Pending task and leaves the reminder untouched.
type Reminder struct {
	ID            string         `json:"id"`
	DisplayID     string         `json:"display_id"` // "D-01", "W-03", "M-12"
	Title         string         `json:"title"`
	Category      string         `json:"category"`
	Priority      Priority       `json:"priority"`
	EstimatedTime float64        `json:"estimated_time"` // minutes
	Type          RecurrenceType `json:"type"`           // Daily|Weekly|Monthly only
}

type ReminderUpdate struct {
	Title         *string   `json:"title"`
	Category      *string   `json:"category"`
	Priority      *Priority `json:"priority"`
	EstimatedTime *float64  `json:"estimated_time"`
}
