package model

import (
	"time"

	"frontdesk/shared/model"
)

const (
	CollectionKey = "rooms"
	EntityName    = "room"
	SequenceName  = "room"

	FieldID     = "id"
	FieldStatus = "status"
	FieldType   = "type"
)

const (
	StatusAvailable   = "available"
	StatusBooked      = "booked"
	StatusMaintenance = "maintenance"
)

const (
	TypeAC    = "AC"
	TypeNonAC = "Non-AC"
)

// Room is an inventory record. Price is the nightly rate in currency
// minor-unit-free integers; booking totals freeze it at creation time.
type Room struct {
	ID         string `json:"id"`
	RoomNumber string `json:"roomNumber"`
	Type       string `json:"type"`
	Price      int64  `json:"price"`
	Status     string `json:"status"`
	Floor      string `json:"floor"`
	model.Metadata
}

// SetStatus overwrites the room status unconditionally. Invariant upkeep
// (no double booking, freeing on terminal transitions) is the caller's job.
func (r *Room) SetStatus(status, operator string, at time.Time) {
	r.Status = status
	r.ModifiedBy = operator
	r.ModifiedAt = at
}
