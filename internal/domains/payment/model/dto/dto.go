package dto

import (
	"strings"

	"github.com/google/uuid"

	bookingModel "frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/payment/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type RecordPaymentRequest struct {
	BookingID     string `json:"booking_id"     validate:"required"`
	Amount        int64  `json:"amount"         validate:"required,gt=0"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash card upi"`
	Notes         string `json:"notes"          validate:"omitempty,max=255"`
}

// ToModel builds a completed ledger entry. The amount is taken as given, not
// reconciled against the booking total: partial and adjusted payments are a
// desk-side decision.
func (r *RecordPaymentRequest) ToModel(booking bookingModel.Booking, roomNumber, operator string) model.Payment {
	return model.Payment{
		ID:            uuid.NewString(),
		BookingID:     booking.ID,
		CustomerName:  booking.CustomerName,
		RoomNumber:    roomNumber,
		Amount:        r.Amount,
		PaymentMethod: r.PaymentMethod,
		PaymentDate:   timezone.Now(),
		Status:        model.StatusCompleted,
		Notes:         r.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  operator,
			ModifiedBy: operator,
		},
	}
}

type PaymentFilter struct {
	BookingID     string `json:"booking_id"`
	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status"`
	Search        string `json:"search"`
}

func (f PaymentFilter) Matches(payment model.Payment) bool {
	if f.BookingID != "" && payment.BookingID != f.BookingID {
		return false
	}

	if f.PaymentMethod != "" && payment.PaymentMethod != f.PaymentMethod {
		return false
	}

	if f.Status != "" && payment.Status != f.Status {
		return false
	}

	if f.Search != "" {
		needle := strings.ToLower(f.Search)

		return strings.Contains(strings.ToLower(payment.CustomerName), needle) ||
			strings.Contains(strings.ToLower(payment.BookingID), needle) ||
			strings.Contains(strings.ToLower(payment.RoomNumber), needle)
	}

	return true
}

type PaymentResponse struct {
	ID            string `json:"id"`
	BookingID     string `json:"booking_id"`
	CustomerName  string `json:"customer_name"`
	RoomNumber    string `json:"room_number"`
	Amount        int64  `json:"amount"`
	PaymentMethod string `json:"payment_method"`
	PaymentDate   string `json:"payment_date"`
	Status        string `json:"status"`
	Notes         string `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.CustomerName = model.CustomerName
	r.RoomNumber = model.RoomNumber
	r.Amount = model.Amount
	r.PaymentMethod = model.PaymentMethod
	r.PaymentDate = timezone.Format(model.PaymentDate, constant.DateFormat)
	r.Status = model.Status
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}

// UnpaidBookingResponse is one row of the pending payments view: an active
// booking with no completed payment against it.
type UnpaidBookingResponse struct {
	BookingID    string `json:"booking_id"`
	RoomID       string `json:"room_id"`
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	TotalAmount  int64  `json:"total_amount"`
}

func (r *UnpaidBookingResponse) FromModel(booking bookingModel.Booking) {
	r.BookingID = booking.ID
	r.RoomID = booking.RoomID
	r.CustomerID = booking.CustomerID
	r.CustomerName = booking.CustomerName
	r.CheckInDate = booking.CheckInDate
	r.CheckOutDate = booking.CheckOutDate
	r.TotalAmount = booking.TotalAmount
}
