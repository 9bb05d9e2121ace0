package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	bookingModel "frontdesk/internal/domains/booking/model"
	paymentMocks "frontdesk/internal/domains/payment/mocks"
	"frontdesk/internal/domains/payment/model"
	"frontdesk/internal/domains/payment/model/dto"
	"frontdesk/internal/domains/payment/service"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	eventMocks "frontdesk/internal/events/mocks"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
)

type ledgerMocks struct {
	repo      *paymentMocks.MockPayment
	bookings  *bookingMocks.MockBooking
	rooms     *roomMocks.MockRoom
	cache     *cacheMocks.MockRedisCache
	publisher *eventMocks.MockPublisher
}

func newTestLedger(t *testing.T) (service.Ledger, ledgerMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := ledgerMocks{
		repo:      paymentMocks.NewMockPayment(ctrl),
		bookings:  bookingMocks.NewMockBooking(ctrl),
		rooms:     roomMocks.NewMockRoom(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.bookings, m.rooms, cfg, m.cache, mocks.NewOtel(), m.publisher)

	return svc, m
}

func operatorContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyOperator, "reception-a")
}

func activeBooking() bookingModel.Booking {
	return bookingModel.Booking{
		ID:           "b-1",
		RoomID:       "RM101",
		CustomerID:   "CUST001",
		CustomerName: "Asha Rao",
		Status:       bookingModel.StatusActive,
		TotalAmount:  4000,
	}
}

func TestPaymentLedger_Record(t *testing.T) {
	t.Run("exact amount", func(t *testing.T) {
		svc, m := newTestLedger(t)

		m.bookings.EXPECT().Get(gomock.Any(), "b-1").Return(activeBooking(), nil)
		m.repo.EXPECT().GetAll(gomock.Any()).Return([]model.Payment{}, nil)
		m.rooms.EXPECT().
			Get(gomock.Any(), "RM101").
			Return(roomModel.Room{ID: "RM101", RoomNumber: "101"}, nil)
		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payment model.Payment) error {
				assert.Equal(t, model.StatusCompleted, payment.Status)
				assert.Equal(t, "Asha Rao", payment.CustomerName)
				assert.Equal(t, "101", payment.RoomNumber)
				assert.Equal(t, int64(4000), payment.Amount)
				assert.NotEmpty(t, payment.ID)

				return nil
			})
		m.publisher.EXPECT().Publish(gomock.Any(), "payment.recorded", gomock.Any(), gomock.Any())
		m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.Record(operatorContext(), dto.RecordPaymentRequest{
			BookingID:     "b-1",
			Amount:        4000,
			PaymentMethod: model.MethodUPI,
		})

		assert.NoError(t, err)
		assert.Equal(t, model.StatusCompleted, res.Status)
	})

	t.Run("partial amount is accepted", func(t *testing.T) {
		svc, m := newTestLedger(t)

		m.bookings.EXPECT().Get(gomock.Any(), "b-1").Return(activeBooking(), nil)
		m.repo.EXPECT().GetAll(gomock.Any()).Return([]model.Payment{}, nil)
		m.rooms.EXPECT().
			Get(gomock.Any(), "RM101").
			Return(roomModel.Room{ID: "RM101", RoomNumber: "101"}, nil)
		m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		m.publisher.EXPECT().Publish(gomock.Any(), "payment.recorded", gomock.Any(), gomock.Any())
		m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.Record(operatorContext(), dto.RecordPaymentRequest{
			BookingID:     "b-1",
			Amount:        1500,
			PaymentMethod: model.MethodCash,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1500), res.Amount)
	})

	t.Run("duplicate completed payment is accepted", func(t *testing.T) {
		svc, m := newTestLedger(t)

		m.bookings.EXPECT().Get(gomock.Any(), "b-1").Return(activeBooking(), nil)
		m.repo.EXPECT().
			GetAll(gomock.Any()).
			Return([]model.Payment{{ID: "p-1", BookingID: "b-1", Status: model.StatusCompleted}}, nil)
		m.rooms.EXPECT().
			Get(gomock.Any(), "RM101").
			Return(roomModel.Room{ID: "RM101", RoomNumber: "101"}, nil)
		m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		m.publisher.EXPECT().Publish(gomock.Any(), "payment.recorded", gomock.Any(), gomock.Any())
		m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		_, err := svc.Record(operatorContext(), dto.RecordPaymentRequest{
			BookingID:     "b-1",
			Amount:        4000,
			PaymentMethod: model.MethodCard,
		})

		assert.NoError(t, err)
	})

	t.Run("completed booking can still be paid", func(t *testing.T) {
		svc, m := newTestLedger(t)

		booking := activeBooking()
		booking.Status = bookingModel.StatusCompleted

		m.bookings.EXPECT().Get(gomock.Any(), "b-1").Return(booking, nil)
		m.repo.EXPECT().GetAll(gomock.Any()).Return([]model.Payment{}, nil)
		m.rooms.EXPECT().
			Get(gomock.Any(), "RM101").
			Return(roomModel.Room{ID: "RM101", RoomNumber: "101"}, nil)
		m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		m.publisher.EXPECT().Publish(gomock.Any(), "payment.recorded", gomock.Any(), gomock.Any())
		m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		_, err := svc.Record(operatorContext(), dto.RecordPaymentRequest{
			BookingID:     "b-1",
			Amount:        4000,
			PaymentMethod: model.MethodCash,
		})

		assert.NoError(t, err)
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc, m := newTestLedger(t)

		m.bookings.EXPECT().Get(gomock.Any(), "b-404").Return(bookingModel.Booking{}, nil)

		_, err := svc.Record(operatorContext(), dto.RecordPaymentRequest{
			BookingID:     "b-404",
			Amount:        4000,
			PaymentMethod: model.MethodCash,
		})

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestPaymentLedger_IsUnpaid(t *testing.T) {
	tests := []struct {
		name     string
		booking  bookingModel.Booking
		payments []model.Payment
		want     bool
	}{
		{
			name:     "active booking with no payments",
			booking:  activeBooking(),
			payments: []model.Payment{},
			want:     true,
		},
		{
			name:    "active booking with completed payment",
			booking: activeBooking(),
			payments: []model.Payment{
				{ID: "p-1", BookingID: "b-1", Status: model.StatusCompleted},
			},
			want: false,
		},
		{
			name:    "pending payment does not settle the booking",
			booking: activeBooking(),
			payments: []model.Payment{
				{ID: "p-1", BookingID: "b-1", Status: model.StatusPending},
			},
			want: true,
		},
		{
			name: "cancelled booking is never pending payment",
			booking: bookingModel.Booking{
				ID: "b-1", Status: bookingModel.StatusCancelled,
			},
			payments: []model.Payment{},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestLedger(t)

			m.bookings.EXPECT().Get(gomock.Any(), "b-1").Return(tt.booking, nil)

			if tt.booking.IsActive() {
				m.repo.EXPECT().GetAll(gomock.Any()).Return(tt.payments, nil)
			}

			got, err := svc.IsUnpaid(context.Background(), "b-1")

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaymentLedger_ListUnpaid(t *testing.T) {
	svc, m := newTestLedger(t)

	m.bookings.EXPECT().
		GetAll(gomock.Any()).
		Return([]bookingModel.Booking{
			{ID: "b-1", Status: bookingModel.StatusActive, TotalAmount: 4000},
			{ID: "b-2", Status: bookingModel.StatusActive, TotalAmount: 2400},
			{ID: "b-3", Status: bookingModel.StatusCompleted, TotalAmount: 1200},
		}, nil)
	m.repo.EXPECT().
		GetAll(gomock.Any()).
		Return([]model.Payment{
			{ID: "p-1", BookingID: "b-2", Status: model.StatusCompleted},
		}, nil)

	res, err := svc.ListUnpaid(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "b-1", res[0].BookingID)
	assert.Equal(t, int64(4000), res[0].TotalAmount)
}

func TestPaymentLedger_ListRecent(t *testing.T) {
	svc, m := newTestLedger(t)

	m.repo.EXPECT().
		GetAll(gomock.Any()).
		Return([]model.Payment{
			{ID: "p-1"},
			{ID: "p-2"},
			{ID: "p-3"},
		}, nil)

	res, err := svc.ListRecent(context.Background(), 2)

	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, "p-3", res[0].ID)
	assert.Equal(t, "p-2", res[1].ID)
}
