package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	bookingModel "frontdesk/internal/domains/booking/model"
	customerMocks "frontdesk/internal/domains/customer/mocks"
	paymentMocks "frontdesk/internal/domains/payment/mocks"
	paymentModel "frontdesk/internal/domains/payment/model"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/report/service"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/failure"
)

type reporterMocks struct {
	rooms     *roomMocks.MockRoom
	bookings  *bookingMocks.MockBooking
	customers *customerMocks.MockCustomer
	payments  *paymentMocks.MockPayment
	cache     *cacheMocks.MockRedisCache
}

func newTestReporter(t *testing.T) (service.Reporter, reporterMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := reporterMocks{
		rooms:     roomMocks.NewMockRoom(ctrl),
		bookings:  bookingMocks.NewMockBooking(ctrl),
		customers: customerMocks.NewMockCustomer(ctrl),
		payments:  paymentMocks.NewMockPayment(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.rooms, m.bookings, m.customers, m.payments, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func TestReporter_Dashboard(t *testing.T) {
	svc, m := newTestReporter(t)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))
	m.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	m.rooms.EXPECT().
		GetAll(gomock.Any()).
		Return([]roomModel.Room{
			{ID: "RM101", Type: roomModel.TypeAC, Status: roomModel.StatusBooked},
			{ID: "RM102", Type: roomModel.TypeAC, Status: roomModel.StatusAvailable},
			{ID: "RM103", Type: roomModel.TypeNonAC, Status: roomModel.StatusAvailable},
			{ID: "RM104", Type: roomModel.TypeNonAC, Status: roomModel.StatusMaintenance},
		}, nil)
	m.bookings.EXPECT().
		GetAll(gomock.Any()).
		Return([]bookingModel.Booking{
			{ID: "b-1", Status: bookingModel.StatusActive, TotalAmount: 4000},
			{ID: "b-2", Status: bookingModel.StatusCompleted, TotalAmount: 2400},
			{ID: "b-3", Status: bookingModel.StatusCancelled, TotalAmount: 1200},
		}, nil)
	m.payments.EXPECT().
		GetAll(gomock.Any()).
		Return([]paymentModel.Payment{
			{ID: "p-1", Amount: 2400, Status: paymentModel.StatusCompleted},
			{ID: "p-2", Amount: 999, Status: paymentModel.StatusPending},
		}, nil)
	m.customers.EXPECT().Count(gomock.Any()).Return(5, nil)

	res, err := svc.Dashboard(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 4, res.TotalRooms)
	assert.Equal(t, 2, res.AvailableRooms)
	assert.Equal(t, 1, res.BookedRooms)
	assert.Equal(t, 1, res.MaintenanceRooms)
	assert.Equal(t, 2, res.ACRooms)
	assert.Equal(t, 2, res.NonACRooms)
	assert.InDelta(t, 25.0, res.OccupancyRate, 0.001)
	assert.Equal(t, 1, res.ActiveBookings)
	assert.Equal(t, 1, res.CompletedBookings)
	assert.Equal(t, 1, res.CancelledBookings)
	assert.Equal(t, 5, res.TotalCustomers)
	assert.Equal(t, int64(6400), res.BookingRevenue)
	assert.Equal(t, int64(2400), res.CollectedRevenue)
}

func TestReporter_Revenue(t *testing.T) {
	day := func(value string) time.Time {
		parsed, err := time.Parse("2006-01-02", value)
		assert.NoError(t, err)

		return parsed
	}

	payments := []paymentModel.Payment{
		{ID: "p-1", Amount: 2000, PaymentMethod: paymentModel.MethodCash, PaymentDate: day("2024-01-05"), Status: paymentModel.StatusCompleted},
		{ID: "p-2", Amount: 4000, PaymentMethod: paymentModel.MethodUPI, PaymentDate: day("2024-01-10"), Status: paymentModel.StatusCompleted},
		{ID: "p-3", Amount: 1200, PaymentMethod: paymentModel.MethodCash, PaymentDate: day("2024-02-01"), Status: paymentModel.StatusCompleted},
		{ID: "p-4", Amount: 999, PaymentMethod: paymentModel.MethodCard, PaymentDate: day("2024-01-10"), Status: paymentModel.StatusFailed},
	}

	t.Run("bounded range with method breakdown", func(t *testing.T) {
		svc, m := newTestReporter(t)

		m.payments.EXPECT().GetAll(gomock.Any()).Return(payments, nil)

		res, err := svc.Revenue(context.Background(), "2024-01-01", "2024-01-31")

		assert.NoError(t, err)
		assert.Equal(t, int64(6000), res.TotalAmount)
		assert.Equal(t, 2, res.PaymentCount)
		assert.Equal(t, int64(2000), res.ByMethod[paymentModel.MethodCash])
		assert.Equal(t, int64(4000), res.ByMethod[paymentModel.MethodUPI])
	})

	t.Run("open range counts all completed payments", func(t *testing.T) {
		svc, m := newTestReporter(t)

		m.payments.EXPECT().GetAll(gomock.Any()).Return(payments, nil)

		res, err := svc.Revenue(context.Background(), "", "")

		assert.NoError(t, err)
		assert.Equal(t, int64(7200), res.TotalAmount)
		assert.Equal(t, 3, res.PaymentCount)
	})

	t.Run("malformed bound", func(t *testing.T) {
		svc, _ := newTestReporter(t)

		_, err := svc.Revenue(context.Background(), "yesterday", "")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestReporter_CustomerBookings(t *testing.T) {
	svc, m := newTestReporter(t)

	m.bookings.EXPECT().
		GetAll(gomock.Any()).
		Return([]bookingModel.Booking{
			{ID: "b-1", RoomID: "RM101", CustomerName: "Asha Rao", CheckInDate: "2024-01-10", CheckOutDate: "2024-01-12", Status: bookingModel.StatusActive, TotalAmount: 4000},
			{ID: "b-2", RoomID: "RM103", CustomerName: "Vikram Singh", CheckInDate: "2024-03-01", CheckOutDate: "2024-03-02", Status: bookingModel.StatusActive, TotalAmount: 1200},
		}, nil)
	m.rooms.EXPECT().
		GetAll(gomock.Any()).
		Return([]roomModel.Room{{ID: "RM101", RoomNumber: "101"}}, nil)

	res, err := svc.CustomerBookings(context.Background(), "2024-01-01", "2024-01-31")

	assert.NoError(t, err)
	assert.Len(t, res.Bookings, 1)
	assert.Equal(t, "b-1", res.Bookings[0].BookingID)
	assert.Equal(t, "101", res.Bookings[0].RoomNumber)
	assert.Equal(t, 2, res.Bookings[0].Nights)
}

func TestReporter_ExportBookings(t *testing.T) {
	svc, m := newTestReporter(t)

	m.bookings.EXPECT().
		GetAll(gomock.Any()).
		Return([]bookingModel.Booking{
			{ID: "b-1", RoomID: "RM101", CustomerID: "CUST001", CustomerName: "Asha Rao", CheckInDate: "2024-01-10", CheckOutDate: "2024-01-12", Status: bookingModel.StatusActive, TotalAmount: 4000},
		}, nil)
	m.rooms.EXPECT().
		GetAll(gomock.Any()).
		Return([]roomModel.Room{{ID: "RM101", RoomNumber: "101"}}, nil)

	data, filename, err := svc.ExportBookings(context.Background(), "2024-01-01", "2024-01-31")

	assert.NoError(t, err)
	assert.Equal(t, "bookings_2024-01-01_2024-01-31.xlsx", filename)

	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)

	defer workbook.Close()

	header, err := workbook.GetCellValue("Bookings", "A1")
	assert.NoError(t, err)
	assert.Equal(t, "BookingID", header)

	bookingID, err := workbook.GetCellValue("Bookings", "A2")
	assert.NoError(t, err)
	assert.Equal(t, "b-1", bookingID)

	amount, err := workbook.GetCellValue("Bookings", "J2")
	assert.NoError(t, err)
	assert.Equal(t, "4000", amount)
}
