package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"frontdesk/internal/domains/booking/model"
)

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		expected int
		wantErr  bool
	}{
		{name: "two nights", checkIn: "2026-01-10", checkOut: "2026-01-12", expected: 2},
		{name: "single night", checkIn: "2026-01-10", checkOut: "2026-01-11", expected: 1},
		{name: "same day", checkIn: "2026-01-10", checkOut: "2026-01-10", expected: 0},
		{name: "checkout before checkin", checkIn: "2026-01-12", checkOut: "2026-01-10", expected: -2},
		{name: "across month boundary", checkIn: "2026-01-30", checkOut: "2026-02-02", expected: 3},
		{name: "malformed checkin", checkIn: "10-01-2026", checkOut: "2026-01-12", wantErr: true},
		{name: "malformed checkout", checkIn: "2026-01-10", checkOut: "not-a-date", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			nights, err := model.Nights(test.checkIn, test.checkOut)

			if test.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, test.expected, nights)
		})
	}
}

func TestBooking_Transition(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		from       string
		to         string
		expectedOK bool
	}{
		{name: "active to completed", from: model.StatusActive, to: model.StatusCompleted, expectedOK: true},
		{name: "active to cancelled", from: model.StatusActive, to: model.StatusCancelled, expectedOK: true},
		{name: "completed is terminal", from: model.StatusCompleted, to: model.StatusCancelled, expectedOK: false},
		{name: "cancelled is terminal", from: model.StatusCancelled, to: model.StatusCompleted, expectedOK: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			booking := model.Booking{ID: "b-1", Status: test.from}

			ok := booking.Transition(test.to, "reception-a", at)

			assert.Equal(t, test.expectedOK, ok)

			if test.expectedOK {
				assert.Equal(t, test.to, booking.Status)
				assert.Equal(t, "reception-a", booking.ModifiedBy)
				assert.Equal(t, at, booking.ModifiedAt)
			} else {
				assert.Equal(t, test.from, booking.Status)
			}
		})
	}
}
