package services

import (
	"time"

	"chronos/internal/models"
	"chronos/internal/state"
)

// ReportSummary is a read-only projection computed from the snapshot;
// building it never mutates state.
type ReportSummary struct {
	GeneratedAt time.Time `json:"generated_at"`
	OrgName     string    `json:"org_name"`

	TasksTotal       int                       `json:"tasks_total"`
	TasksByStatus    map[models.TaskStatus]int `json:"tasks_by_status"`
	TasksByCategory  map[string]int            `json:"tasks_by_category"`
	EstimatedMinutes float64                   `json:"estimated_minutes"`
	ActualMinutes    float64                   `json:"actual_minutes"`
	CompletionRate   float64                   `json:"completion_rate"` // 0..1

	BillsTotal         int     `json:"bills_total"`
	BillsPending       int     `json:"bills_pending"`
	BillsPaid          int     `json:"bills_paid"`
	BillsTotalAmount   float64 `json:"bills_total_amount"`
	BillsPendingAmount float64 `json:"bills_pending_amount"`
}

type ReportService struct {
	container *state.Container
	now       func() time.Time
}

func NewReportService(container *state.Container) *ReportService {
	return &ReportService{container: container, now: time.Now}
}

func (s *ReportService) Summary() ReportSummary {
	st := s.container.Snapshot()
	sum := ReportSummary{
		GeneratedAt:     s.now(),
		OrgName:         st.Settings.OrgName,
		TasksTotal:      len(st.Tasks),
		TasksByStatus:   map[models.TaskStatus]int{},
		TasksByCategory: map[string]int{},
		BillsTotal:      len(st.Bills),
	}
	for i := range st.Tasks {
		t := &st.Tasks[i]
		sum.TasksByStatus[t.Status]++
		sum.TasksByCategory[t.Category]++
		sum.EstimatedMinutes += t.EstimatedTime
		sum.ActualMinutes += t.ActualTime
	}
	if sum.TasksTotal > 0 {
		sum.CompletionRate = float64(sum.TasksByStatus[models.StatusCompleted]) / float64(sum.TasksTotal)
	}
	for i := range st.Bills {
		b := &st.Bills[i]
		sum.BillsTotalAmount += b.Amount
		switch b.Status {
		case models.BillPaid:
			sum.BillsPaid++
		default:
			sum.BillsPending++
			sum.BillsPendingAmount += b.Amount
		}
	}
	return sum
}

// OverdueBills lists unpaid bills whose due date is before today.
func (s *ReportService) OverdueBills() []models.UtilityBill {
	st := s.container.Snapshot()
	today := s.now().Format("2006-01-02")
	var out []models.UtilityBill
	for _, b := range st.Bills {
		if b.Status != models.BillPaid && b.DueDate != "" && b.DueDate < today {
			out = append(out, b)
		}
	}
	return out
}
