package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"chronos/internal/models"
	"chronos/internal/state"
)

type BillDraft struct {
	Type            string            `json:"type"`
	Location        string            `json:"location"`
	ReferenceNumber string            `json:"reference_number"`
	ContactNumber   string            `json:"contact_number"`
	Month           string            `json:"month"`
	DueDate         string            `json:"due_date"`
	Amount          float64           `json:"amount"`
	Status          models.BillStatus `json:"status"`
	AttachmentURL   string            `json:"attachment_url"`
}

// BillService is the utility-bill collection; no timer semantics.
// Only Add writes an audit entry.
type BillService interface {
	Add(draft BillDraft) models.UtilityBill
	Update(id string, upd models.BillUpdate) (*models.UtilityBill, error)
	Delete(id string) error
	Clone(id string) (*models.UtilityBill, error)
}

type billService struct {
	container *state.Container
	now       func() time.Time
}

func NewBillService(container *state.Container) BillService {
	return &billService{container: container, now: time.Now}
}

func (s *billService) Add(draft BillDraft) models.UtilityBill {
	if draft.Status == "" {
		draft.Status = models.BillPending
	}
	bill := models.UtilityBill{
		ID:              uuid.New().String(),
		Type:            draft.Type,
		Location:        draft.Location,
		ReferenceNumber: draft.ReferenceNumber,
		ContactNumber:   draft.ContactNumber,
		Month:           draft.Month,
		DueDate:         draft.DueDate,
		Amount:          draft.Amount,
		Status:          draft.Status,
		AttachmentURL:   draft.AttachmentURL,
	}
	now := s.now()
	s.container.Mutate(func(st *models.AppState) bool {
		st.Bills = append([]models.UtilityBill{bill}, st.Bills...)
		appendAudit(st, now, fmt.Sprintf("Added %s bill for %s (%s)", bill.Type, bill.Location, bill.Month), "utilities")
		return true
	})
	return bill
}

func (s *billService) Update(id string, upd models.BillUpdate) (*models.UtilityBill, error) {
	var out *models.UtilityBill
	err := ErrNotFound
	s.container.Mutate(func(st *models.AppState) bool {
		b := st.BillByID(id)
		if b == nil {
			return false
		}
		if upd.Type != nil {
			b.Type = *upd.Type
		}
		if upd.Location != nil {
			b.Location = *upd.Location
		}
		if upd.ReferenceNumber != nil {
			b.ReferenceNumber = *upd.ReferenceNumber
		}
		if upd.ContactNumber != nil {
			b.ContactNumber = *upd.ContactNumber
		}
		if upd.Month != nil {
			b.Month = *upd.Month
		}
		if upd.DueDate != nil {
			b.DueDate = *upd.DueDate
		}
		if upd.Amount != nil {
			b.Amount = *upd.Amount
		}
		if upd.Status != nil {
			b.Status = *upd.Status
		}
		if upd.AttachmentURL != nil {
			b.AttachmentURL = *upd.AttachmentURL
		}
		out = b
		err = nil
		return true
	})
	return out, err
}

func (s *billService) Delete(id string) error {
	err := ErrNotFound
	s.container.Mutate(func(st *models.AppState) bool {
		for i := range st.Bills {
			if st.Bills[i].ID == id {
				st.Bills = append(st.Bills[:i], st.Bills[i+1:]...)
				err = nil
				return true
			}
		}
		return false
	})
	return err
}

// Clone copies all fields except identity and resets the status to
// Pending; the month is advanced to the current one.
func (s *billService) Clone(id string) (*models.UtilityBill, error) {
	src := s.container.Snapshot().BillByID(id)
	if src == nil {
		return nil, ErrNotFound
	}
	clone := *src
	clone.ID = uuid.New().String()
	clone.Status = models.BillPending
	clone.Month = s.now().Format("January 2006")
	s.container.Mutate(func(st *models.AppState) bool {
		st.Bills = append([]models.UtilityBill{clone}, st.Bills...)
		return true
	})
	return &clone, nil
}
