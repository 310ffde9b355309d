package models

type BillStatus string

const (
	BillPending BillStatus = "Pending"
	BillPaid    BillStatus = "Paid"
)

// UtilityBill is a payable item tracked per billing month. Bills have no
// timer semantics.
type UtilityBill struct {
	ID              string     `json:"id"`
	Type            string     `json:"type"`     // provider, e.g. "K-Electric"
	Location        string     `json:"location"` // campus/site label
	ReferenceNumber string     `json:"reference_number"`
	ContactNumber   string     `json:"contact_number,omitempty"`
	Month           string     `json:"month"` // display label, e.g. "May 2024"
	DueDate         string     `json:"due_date"`
	Amount          float64    `json:"amount"`
	Status          BillStatus `json:"status"`
	AttachmentURL   string     `json:"attachment_url,omitempty"`
}

type BillUpdate struct {
	Type            *string     `json:"type"`
	Location        *string     `json:"location"`
	ReferenceNumber *string     `json:"reference_number"`
	ContactNumber   *string     `json:"contact_number"`
	Month           *string     `json:"month"`
	DueDate         *string     `json:"due_date"`
	Amount          *float64    `json:"amount"`
	Status          *BillStatus `json:"status"`
	AttachmentURL   *string     `json:"attachment_url"`
}
