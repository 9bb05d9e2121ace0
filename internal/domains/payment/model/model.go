package model

import (
	"time"

	"frontdesk/shared/model"
)

const (
	CollectionKey = "payments"
	EntityName    = "payment"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldMethod    = "method"
	FieldStatus    = "status"
	FieldSearch    = "search"
)

const (
	StatusCompleted = "completed"
	// Reserved states. No code path produces them; they exist so foreign
	// snapshots carrying them still decode and filter cleanly.
	StatusPending = "pending"
	StatusFailed  = "failed"
)

const (
	MethodCash = "cash"
	MethodCard = "card"
	MethodUPI  = "upi"
)

// Payment is an immutable ledger entry. CustomerName and RoomNumber are
// denormalized at record time so the ledger reads as a historical document
// even after customer or room edits.
type Payment struct {
	ID            string    `json:"id"`
	BookingID     string    `json:"bookingId"`
	CustomerName  string    `json:"customerName"`
	RoomNumber    string    `json:"roomNumber"`
	Amount        int64     `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	PaymentDate   time.Time `json:"paymentDate"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	model.Metadata
}

func (p *Payment) IsCompleted() bool {
	return p.Status == StatusCompleted
}
