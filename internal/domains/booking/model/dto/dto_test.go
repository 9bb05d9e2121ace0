package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		RoomID:       "RM101",
		CustomerID:   "CUST001",
		CheckInDate:  "2026-01-10",
		CheckOutDate: "2026-01-12",
	}

	booking := req.ToModel("Rahul Sharma", 4000, "reception-a")

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "RM101", booking.RoomID)
	assert.Equal(t, "CUST001", booking.CustomerID)
	assert.Equal(t, "Rahul Sharma", booking.CustomerName)
	assert.Equal(t, model.StatusActive, booking.Status)
	assert.Equal(t, int64(4000), booking.TotalAmount)
	assert.Equal(t, "reception-a", booking.CreatedBy)
}

func TestBookingFilter_Matches(t *testing.T) {
	booking := model.Booking{
		ID:           "bk-77",
		RoomID:       "RM105",
		CustomerID:   "CUST002",
		CustomerName: "Priya Patel",
		Status:       model.StatusActive,
	}

	tests := []struct {
		name     string
		filter   dto.BookingFilter
		expected bool
	}{
		{name: "empty filter matches", filter: dto.BookingFilter{}, expected: true},
		{name: "status match", filter: dto.BookingFilter{Status: model.StatusActive}, expected: true},
		{name: "status mismatch", filter: dto.BookingFilter{Status: model.StatusCancelled}, expected: false},
		{name: "room match", filter: dto.BookingFilter{RoomID: "RM105"}, expected: true},
		{name: "customer mismatch", filter: dto.BookingFilter{CustomerID: "CUST009"}, expected: false},
		{name: "search hits customer name", filter: dto.BookingFilter{Search: "priya"}, expected: true},
		{name: "search hits booking id", filter: dto.BookingFilter{Search: "bk-77"}, expected: true},
		{name: "search hits room", filter: dto.BookingFilter{Search: "rm105"}, expected: true},
		{name: "search misses", filter: dto.BookingFilter{Search: "vikram"}, expected: false},
		{name: "search with status mismatch", filter: dto.BookingFilter{Status: model.StatusCompleted, Search: "priya"}, expected: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.filter.Matches(booking))
		})
	}
}
