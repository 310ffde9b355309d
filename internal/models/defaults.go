package models

import (
	"time"

	"github.com/google/uuid"
)

var Categories = []string{"Operations", "Finance", "Administration", "IT", "Maintenance", "HR"}

// DefaultState seeds a fresh install: the standard recurring tasks, the
// current billing inventory and a single Super Admin operator.
func DefaultState(now time.Time) *AppState {
	today := now.Format("2006-01-02")
	admin := User{
		ID:    uuid.New().String(),
		Name:  "Administrator",
		Email: "admin@chronos.local",
		Role:  RoleSuperAdmin,
	}

	return &AppState{
		Tasks: []Task{
			{
				ID: uuid.New().String(), Title: "Donation & Receipt Management",
				Category: "Finance", Priority: PriorityHigh, EstimatedTime: 45,
				DueDate: today, Type: RecurrenceDaily, Status: StatusPending, CreatedAt: now,
			},
			{
				ID: uuid.New().String(), Title: "Coin Box Management",
				Category: "Operations", Priority: PriorityMedium, EstimatedTime: 30,
				DueDate: today, Type: RecurrenceDaily, Status: StatusPending, CreatedAt: now,
			},
			{
				ID: uuid.New().String(), Title: "Weekly Expense Review",
				Category: "Finance", Priority: PriorityHigh, EstimatedTime: 120,
				DueDate: today, Type: RecurrenceWeekly, Status: StatusPending, CreatedAt: now,
			},
		},
		Bills: []UtilityBill{
			{ID: uuid.New().String(), Type: "Storm Fiber", Location: "Main Campus", ContactNumber: "0333-3265994", ReferenceNumber: "SF-MAIN-001", Month: "May 2024", DueDate: "2024-05-15", Amount: 3500, Status: BillPending},
			{ID: uuid.New().String(), Type: "Storm Fiber", Location: "Main Campus", ContactNumber: "0300-2225354", ReferenceNumber: "SF-MAIN-002", Month: "May 2024", DueDate: "2024-05-15", Amount: 4200, Status: BillPending},
			{ID: uuid.New().String(), Type: "PTCL", Location: "Main Campus", ContactNumber: "021-34613474", ReferenceNumber: "02134613474", Month: "May 2024", DueDate: "2024-05-20", Amount: 2800, Status: BillPending},
			{ID: uuid.New().String(), Type: "K-Electric", Location: "Main Campus", ReferenceNumber: "0400030577440", Month: "May 2024", DueDate: "2024-05-18", Amount: 15400, Status: BillPending},
			{ID: uuid.New().String(), Type: "SSGC (Gas)", Location: "Main Campus", ReferenceNumber: "2490615583", Month: "May 2024", DueDate: "2024-05-12", Amount: 850, Status: BillPaid},
		},
		Reminders:     []Reminder{},
		ReminderSeq:   map[RecurrenceType]int{},
		Users:         []User{admin},
		AuditLogs:     []AuditEntry{},
		CurrentUserID: admin.ID,
		Settings: Settings{
			OrgName: "Chronos Operations",
			Modules: ModuleToggles{Tasks: true, Utilities: true, Reports: true},
		},
	}
}
