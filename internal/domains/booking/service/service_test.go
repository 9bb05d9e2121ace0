package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/service"
	customerMocks "frontdesk/internal/domains/customer/mocks"
	customerModel "frontdesk/internal/domains/customer/model"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	eventMocks "frontdesk/internal/events/mocks"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/store"
	storeMocks "frontdesk/shared/store/mocks"
)

type engineMocks struct {
	repo      *bookingMocks.MockBooking
	rooms     *roomMocks.MockRoom
	customers *customerMocks.MockCustomer
	store     *storeMocks.MockStore
	cache     *cacheMocks.MockRedisCache
	publisher *eventMocks.MockPublisher
}

func newTestEngine(t *testing.T) (service.Engine, engineMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := engineMocks{
		repo:      bookingMocks.NewMockBooking(ctrl),
		rooms:     roomMocks.NewMockRoom(ctrl),
		customers: customerMocks.NewMockCustomer(ctrl),
		store:     storeMocks.NewMockStore(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.rooms, m.customers, m.store, cfg, m.cache, mocks.NewOtel(), m.publisher)

	return svc, m
}

func operatorContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyOperator, "reception-a")
}

func allowInvalidation(m engineMocks) {
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func decodeSnapshots(t *testing.T, roomSnap, bookingSnap store.Snapshot) ([]roomModel.Room, []model.Booking) {
	t.Helper()

	var rooms []roomModel.Room
	assert.NoError(t, json.Unmarshal(roomSnap.Data, &rooms))

	var bookings []model.Booking
	assert.NoError(t, json.Unmarshal(bookingSnap.Data, &bookings))

	return rooms, bookings
}

func TestBookingEngine_Create(t *testing.T) {
	availableRoom := roomModel.Room{ID: "RM101", RoomNumber: "101", Price: 2000, Status: roomModel.StatusAvailable}
	customer := customerModel.Customer{ID: "CUST001", Name: "Asha Rao"}

	t.Run("two night stay freezes total and books the room", func(t *testing.T) {
		svc, m := newTestEngine(t)

		m.customers.EXPECT().Get(gomock.Any(), "CUST001").Return(customer, nil)
		m.rooms.EXPECT().GetAll(gomock.Any()).Return([]roomModel.Room{availableRoom}, nil)
		m.repo.EXPECT().GetAll(gomock.Any()).Return([]model.Booking{}, nil)
		m.rooms.EXPECT().
			Snapshot(gomock.Any()).
			DoAndReturn(func(rooms []roomModel.Room) (store.Snapshot, error) {
				data, err := json.Marshal(rooms)

				return store.Snapshot{Key: roomModel.CollectionKey, Data: data}, err
			})
		m.repo.EXPECT().
			Snapshot(gomock.Any()).
			DoAndReturn(func(bookings []model.Booking) (store.Snapshot, error) {
				data, err := json.Marshal(bookings)

				return store.Snapshot{Key: model.CollectionKey, Data: data}, err
			})
		m.store.EXPECT().
			SaveAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, snapshots ...store.Snapshot) error {
				assert.Len(t, snapshots, 2)
				rooms, bookings := decodeSnapshots(t, snapshots[0], snapshots[1])

				assert.Equal(t, roomModel.StatusBooked, rooms[0].Status)
				assert.Len(t, bookings, 1)
				assert.Equal(t, int64(4000), bookings[0].TotalAmount)
				assert.Equal(t, model.StatusActive, bookings[0].Status)
				assert.Equal(t, "Asha Rao", bookings[0].CustomerName)

				return nil
			})
		m.publisher.EXPECT().Publish(gomock.Any(), "booking.created", gomock.Any(), gomock.Any())
		allowInvalidation(m)

		res, err := svc.Create(operatorContext(), dto.CreateBookingRequest{
			RoomID:       "RM101",
			CustomerID:   "CUST001",
			CheckInDate:  "2024-01-10",
			CheckOutDate: "2024-01-12",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(4000), res.TotalAmount)
		assert.Equal(t, model.StatusActive, res.Status)
		assert.NotEmpty(t, res.ID)
	})

	t.Run("room already booked", func(t *testing.T) {
		svc, m := newTestEngine(t)

		bookedRoom := availableRoom
		bookedRoom.Status = roomModel.StatusBooked

		m.customers.EXPECT().Get(gomock.Any(), "CUST001").Return(customer, nil)
		m.rooms.EXPECT().GetAll(gomock.Any()).Return([]roomModel.Room{bookedRoom}, nil)

		_, err := svc.Create(operatorContext(), dto.CreateBookingRequest{
			RoomID:       "RM101",
			CustomerID:   "CUST001",
			CheckInDate:  "2024-01-10",
			CheckOutDate: "2024-01-12",
		})

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
		assert.Contains(t, err.Error(), "current status: booked")
	})

	t.Run("maintenance room is never booked", func(t *testing.T) {
		svc, m := newTestEngine(t)

		maintenanceRoom := availableRoom
		maintenanceRoom.Status = roomModel.StatusMaintenance

		m.customers.EXPECT().Get(gomock.Any(), "CUST001").Return(customer, nil)
		m.rooms.EXPECT().GetAll(gomock.Any()).Return([]roomModel.Room{maintenanceRoom}, nil)

		_, err := svc.Create(operatorContext(), dto.CreateBookingRequest{
			RoomID:       "RM101",
			CustomerID:   "CUST001",
			CheckInDate:  "2024-01-10",
			CheckOutDate: "2024-01-12",
		})

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
		assert.Contains(t, err.Error(), "maintenance")
	})

	t.Run("check-out must be strictly after check-in", func(t *testing.T) {
		svc, _ := newTestEngine(t)

		_, err := svc.Create(operatorContext(), dto.CreateBookingRequest{
			RoomID:       "RM101",
			CustomerID:   "CUST001",
			CheckInDate:  "2024-01-12",
			CheckOutDate: "2024-01-12",
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unknown customer", func(t *testing.T) {
		svc, m := newTestEngine(t)

		m.customers.EXPECT().Get(gomock.Any(), "CUST404").Return(customerModel.Customer{}, nil)

		_, err := svc.Create(operatorContext(), dto.CreateBookingRequest{
			RoomID:       "RM101",
			CustomerID:   "CUST404",
			CheckInDate:  "2024-01-10",
			CheckOutDate: "2024-01-12",
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unknown room", func(t *testing.T) {
		svc, m := newTestEngine(t)

		m.customers.EXPECT().Get(gomock.Any(), "CUST001").Return(customer, nil)
		m.rooms.EXPECT().GetAll(gomock.Any()).Return([]roomModel.Room{}, nil)

		_, err := svc.Create(operatorContext(), dto.CreateBookingRequest{
			RoomID:       "RM999",
			CustomerID:   "CUST001",
			CheckInDate:  "2024-01-10",
			CheckOutDate: "2024-01-12",
		})

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("atomic commit failure surfaces as write error", func(t *testing.T) {
		svc, m := newTestEngine(t)

		m.customers.EXPECT().Get(gomock.Any(), "CUST001").Return(customer, nil)
		m.rooms.EXPECT().GetAll(gomock.Any()).Return([]roomModel.Room{availableRoom}, nil)
		m.repo.EXPECT().GetAll(gomock.Any()).Return([]model.Booking{}, nil)
		m.rooms.EXPECT().Snapshot(gomock.Any()).Return(store.Snapshot{Key: roomModel.CollectionKey}, nil)
		m.repo.EXPECT().Snapshot(gomock.Any()).Return(store.Snapshot{Key: model.CollectionKey}, nil)
		m.store.EXPECT().
			SaveAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("disk full"))

		_, err := svc.Create(operatorContext(), dto.CreateBookingRequest{
			RoomID:       "RM101",
			CustomerID:   "CUST001",
			CheckInDate:  "2024-01-10",
			CheckOutDate: "2024-01-12",
		})

		assert.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
		assert.Contains(t, err.Error(), "storage write failed")
	})
}

func TestBookingEngine_Transitions(t *testing.T) {
	activeBooking := model.Booking{ID: "b-1", RoomID: "RM101", Status: model.StatusActive}

	tests := []struct {
		name       string
		run        func(svc service.Engine) (dto.BookingResponse, error)
		wantStatus string
		wantEvent  string
	}{
		{
			name: "cancel frees the room",
			run: func(svc service.Engine) (dto.BookingResponse, error) {
				return svc.Cancel(operatorContext(), "b-1")
			},
			wantStatus: model.StatusCancelled,
			wantEvent:  "booking.cancelled",
		},
		{
			name: "complete frees the room",
			run: func(svc service.Engine) (dto.BookingResponse, error) {
				return svc.Complete(operatorContext(), "b-1")
			},
			wantStatus: model.StatusCompleted,
			wantEvent:  "booking.completed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestEngine(t)

			m.repo.EXPECT().GetAll(gomock.Any()).Return([]model.Booking{activeBooking}, nil)
			m.rooms.EXPECT().
				GetAll(gomock.Any()).
				Return([]roomModel.Room{{ID: "RM101", Status: roomModel.StatusBooked}}, nil)
			m.rooms.EXPECT().
				Snapshot(gomock.Any()).
				DoAndReturn(func(rooms []roomModel.Room) (store.Snapshot, error) {
					assert.Equal(t, roomModel.StatusAvailable, rooms[0].Status)
					data, err := json.Marshal(rooms)

					return store.Snapshot{Key: roomModel.CollectionKey, Data: data}, err
				})
			m.repo.EXPECT().
				Snapshot(gomock.Any()).
				DoAndReturn(func(bookings []model.Booking) (store.Snapshot, error) {
					assert.Equal(t, tt.wantStatus, bookings[0].Status)
					data, err := json.Marshal(bookings)

					return store.Snapshot{Key: model.CollectionKey, Data: data}, err
				})
			m.store.EXPECT().SaveAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			m.publisher.EXPECT().Publish(gomock.Any(), tt.wantEvent, "b-1", gomock.Any())
			allowInvalidation(m)

			res, err := tt.run(svc)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
		})
	}
}

func TestBookingEngine_TransitionGuards(t *testing.T) {
	tests := []struct {
		name     string
		bookings []model.Booking
		wantCode int
	}{
		{
			name:     "booking not found",
			bookings: []model.Booking{},
			wantCode: 404,
		},
		{
			name:     "cancelled booking is terminal",
			bookings: []model.Booking{{ID: "b-1", RoomID: "RM101", Status: model.StatusCancelled}},
			wantCode: 409,
		},
		{
			name:     "completed booking is terminal",
			bookings: []model.Booking{{ID: "b-1", RoomID: "RM101", Status: model.StatusCompleted}},
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestEngine(t)

			m.repo.EXPECT().GetAll(gomock.Any()).Return(tt.bookings, nil)

			_, err := svc.Cancel(operatorContext(), "b-1")

			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestBookingEngine_TransitionFreesMaintenanceRoom(t *testing.T) {
	// Terminal transitions win over an interim maintenance flag.
	svc, m := newTestEngine(t)

	m.repo.EXPECT().
		GetAll(gomock.Any()).
		Return([]model.Booking{{ID: "b-1", RoomID: "RM101", Status: model.StatusActive}}, nil)
	m.rooms.EXPECT().
		GetAll(gomock.Any()).
		Return([]roomModel.Room{{ID: "RM101", Status: roomModel.StatusMaintenance}}, nil)
	m.rooms.EXPECT().
		Snapshot(gomock.Any()).
		DoAndReturn(func(rooms []roomModel.Room) (store.Snapshot, error) {
			assert.Equal(t, roomModel.StatusAvailable, rooms[0].Status)

			return store.Snapshot{Key: roomModel.CollectionKey}, nil
		})
	m.repo.EXPECT().Snapshot(gomock.Any()).Return(store.Snapshot{Key: model.CollectionKey}, nil)
	m.store.EXPECT().SaveAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.publisher.EXPECT().Publish(gomock.Any(), "booking.completed", "b-1", gomock.Any())
	allowInvalidation(m)

	_, err := svc.Complete(operatorContext(), "b-1")

	assert.NoError(t, err)
}

func TestBookingEngine_ListByCustomer(t *testing.T) {
	svc, m := newTestEngine(t)

	m.repo.EXPECT().
		GetAll(gomock.Any()).
		Return([]model.Booking{
			{ID: "b-1", CustomerID: "CUST001"},
			{ID: "b-2", CustomerID: "CUST002"},
			{ID: "b-3", CustomerID: "CUST001"},
		}, nil)

	res, err := svc.ListByCustomer(context.Background(), "CUST001")

	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, "b-1", res[0].ID)
	assert.Equal(t, "b-3", res[1].ID)
}

func TestBookingEngine_GetAllFiltersByStatus(t *testing.T) {
	svc, m := newTestEngine(t)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))
	m.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	m.repo.EXPECT().
		GetAll(gomock.Any()).
		Return([]model.Booking{
			{ID: "b-1", Status: model.StatusActive},
			{ID: "b-2", Status: model.StatusCancelled},
			{ID: "b-3", Status: model.StatusActive},
		}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, dto.BookingFilter{Status: model.StatusActive})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Len(t, res.Bookings, 2)
}
