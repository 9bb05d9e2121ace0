package model

import (
	"time"

	"frontdesk/shared/constant"
	"frontdesk/shared/model"
)

const (
	CollectionKey = "bookings"
	EntityName    = "booking"

	FieldID         = "id"
	FieldRoomID     = "room_id"
	FieldCustomerID = "customer_id"
	FieldStatus     = "status"
	FieldSearch     = "search"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Booking is a stay. CustomerName is a snapshot taken at creation time and is
// intentionally never re-synced with later customer edits. TotalAmount freezes
// the room's nightly price at creation; later price changes do not touch it.
type Booking struct {
	ID           string `json:"id"`
	RoomID       string `json:"roomId"`
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Status       string `json:"status"`
	TotalAmount  int64  `json:"totalAmount"`
	model.Metadata
}

func (b *Booking) IsActive() bool {
	return b.Status == StatusActive
}

// Transition moves an active booking into one of the two terminal states.
// Terminal states accept no further transitions.
func (b *Booking) Transition(status, operator string, at time.Time) bool {
	if !b.IsActive() {
		return false
	}

	b.Status = status
	b.ModifiedBy = operator
	b.ModifiedAt = at

	return true
}

// Nights computes the stay length from the stored date strings. CheckOutDate
// is the exclusive end of the stay, so a one-night stay spans two dates.
func Nights(checkInDate, checkOutDate string) (int, error) {
	checkIn, err := time.Parse(constant.DateOnlyFormat, checkInDate)
	if err != nil {
		return 0, err
	}

	checkOut, err := time.Parse(constant.DateOnlyFormat, checkOutDate)
	if err != nil {
		return 0, err
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)

	return nights, nil
}
