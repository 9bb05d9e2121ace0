package dto

import (
	"strings"

	"github.com/google/uuid"

	"frontdesk/internal/domains/booking/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type CreateBookingRequest struct {
	RoomID       string `json:"room_id"        validate:"required"`
	CustomerID   string `json:"customer_id"    validate:"required"`
	CheckInDate  string `json:"check_in_date"  validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
}

// ToModel builds an active booking with a frozen total. The customer name is
// copied in as a historical snapshot.
func (c *CreateBookingRequest) ToModel(customerName string, totalAmount int64, operator string) model.Booking {
	return model.Booking{
		ID:           uuid.NewString(),
		RoomID:       c.RoomID,
		CustomerID:   c.CustomerID,
		CustomerName: customerName,
		CheckInDate:  c.CheckInDate,
		CheckOutDate: c.CheckOutDate,
		Status:       model.StatusActive,
		TotalAmount:  totalAmount,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  operator,
			ModifiedBy: operator,
		},
	}
}

type BookingFilter struct {
	Status     string `json:"status"`
	RoomID     string `json:"room_id"`
	CustomerID string `json:"customer_id"`
	Search     string `json:"search"`
}

func (f BookingFilter) Matches(booking model.Booking) bool {
	if f.Status != "" && booking.Status != f.Status {
		return false
	}

	if f.RoomID != "" && booking.RoomID != f.RoomID {
		return false
	}

	if f.CustomerID != "" && booking.CustomerID != f.CustomerID {
		return false
	}

	if f.Search != "" {
		needle := strings.ToLower(f.Search)

		return strings.Contains(strings.ToLower(booking.ID), needle) ||
			strings.Contains(strings.ToLower(booking.CustomerName), needle) ||
			strings.Contains(strings.ToLower(booking.RoomID), needle)
	}

	return true
}

type BookingResponse struct {
	ID           string `json:"id"`
	RoomID       string `json:"room_id"`
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Status       string `json:"status"`
	TotalAmount  int64  `json:"total_amount"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.CustomerID = model.CustomerID
	r.CustomerName = model.CustomerName
	r.CheckInDate = model.CheckInDate
	r.CheckOutDate = model.CheckOutDate
	r.Status = model.Status
	r.TotalAmount = model.TotalAmount
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
