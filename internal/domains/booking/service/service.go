package service

import (
	"context"
	"fmt"
	"sync"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepo "frontdesk/internal/domains/room/repository"
	"frontdesk/internal/events"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/store"
	"frontdesk/shared/timezone"

	customerRepo "frontdesk/internal/domains/customer/repository"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"

	cacheRoomPrefix   = "room"
	cacheReportPrefix = "report"
)

// Engine owns the booking lifecycle and the paired room status flips that go
// with it. Mutations are serialized by a process-wide mutex and committed as
// one atomic multi-collection write, so two concurrent callers can never both
// observe an available room and double-book it.
type Engine interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) (dto.BookingResponse, error)
	Complete(ctx context.Context, id string) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter dto.BookingFilter) (dto.GetBookingsResponse, error)
	ListByCustomer(ctx context.Context, customerID string) ([]dto.BookingResponse, error)
}

type serviceImpl struct {
	mu        sync.Mutex
	repo      repository.Booking
	rooms     roomRepo.Room
	customers customerRepo.Customer
	store     store.Store
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	publisher events.Publisher
}

func New(
	repo repository.Booking,
	rooms roomRepo.Room,
	customers customerRepo.Customer,
	st store.Store,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	publisher events.Publisher,
) Engine {
	return &serviceImpl{
		repo:      repo,
		rooms:     rooms,
		customers: customers,
		store:     st,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		publisher: publisher,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	nights, err := model.Nights(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking dates")

		return res, failure.BadRequestFromString("invalid booking dates") // nolint:wrapcheck
	}

	if nights <= 0 {
		return res, failure.BadRequestFromString("check-out date must be after check-in date") // nolint:wrapcheck
	}

	customer, err := s.customers.Get(ctx, req.CustomerID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == constant.Empty {
		return res, failure.BadRequestFromString("customer not found") // nolint:wrapcheck
	}

	rooms, err := s.rooms.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	roomIndex := -1

	for index := range rooms {
		if rooms[index].ID == req.RoomID {
			roomIndex = index

			break
		}
	}

	if roomIndex == -1 {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if rooms[roomIndex].Status != roomModel.StatusAvailable {
		log.Warn().
			Str("roomId", req.RoomID).
			Str("status", rooms[roomIndex].Status).
			Msg("booking attempt on unavailable room")

		return res, failure.RoomUnavailable(req.RoomID, rooms[roomIndex].Status) // nolint:wrapcheck
	}

	operator := shared.Operator(ctx)
	booking := req.ToModel(customer.Name, rooms[roomIndex].Price*int64(nights), operator)

	bookings, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	rooms[roomIndex].SetStatus(roomModel.StatusBooked, operator, timezone.Now())

	if err = s.commit(ctx, rooms, append(bookings, booking)); err != nil {
		return res, err
	}

	s.invalidate(ctx, booking.ID)

	res.FromModel(booking)
	s.publisher.Publish(ctx, events.TypeBookingCreated, booking.ID, res)

	log.Info().
		Str("bookingId", booking.ID).
		Str("roomId", booking.RoomID).
		Int64("totalAmount", booking.TotalAmount).
		Msg("booking created")

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (dto.BookingResponse, error) {
	return s.transition(ctx, id, model.StatusCancelled, events.TypeBookingCancelled)
}

func (s *serviceImpl) Complete(ctx context.Context, id string) (dto.BookingResponse, error) {
	return s.transition(ctx, id, model.StatusCompleted, events.TypeBookingCompleted)
}

// transition moves an active booking into a terminal state and frees its room
// unconditionally, even when the room was pulled into maintenance in the
// interim. Last writer wins; the desk can re-flag the room afterwards.
func (s *serviceImpl) transition(ctx context.Context, id, status, eventType string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	bookingIndex := -1

	for index := range bookings {
		if bookings[index].ID == id {
			bookingIndex = index

			break
		}
	}

	if bookingIndex == -1 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	operator := shared.Operator(ctx)

	if ok := bookings[bookingIndex].Transition(status, operator, timezone.Now()); !ok {
		log.Warn().
			Str("bookingId", id).
			Str("currentStatus", bookings[bookingIndex].Status).
			Str("targetStatus", status).
			Msg("transition attempted on terminal booking")

		return res, failure.InvalidTransition(fmt.Sprintf(
			"booking %s is %s; only active bookings can be %s", id, bookings[bookingIndex].Status, status,
		)) // nolint:wrapcheck
	}

	rooms, err := s.rooms.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	roomFound := false

	for index := range rooms {
		if rooms[index].ID == bookings[bookingIndex].RoomID {
			rooms[index].SetStatus(roomModel.StatusAvailable, operator, timezone.Now())
			roomFound = true

			break
		}
	}

	if !roomFound {
		// The booking side of the transition still commits. A dangling room
		// reference is logged, not fatal.
		log.Warn().
			Str("bookingId", id).
			Str("roomId", bookings[bookingIndex].RoomID).
			Msg("booking references a missing room")
	}

	if err = s.commit(ctx, rooms, bookings); err != nil {
		return res, err
	}

	s.invalidate(ctx, id)

	res.FromModel(bookings[bookingIndex])
	s.publisher.Publish(ctx, eventType, id, res)

	log.Info().
		Str("bookingId", id).
		Str("status", status).
		Msg("booking transitioned")

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter dto.BookingFilter) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	bookings, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	filtered := make([]model.Booking, 0, len(bookings))
	for _, booking := range bookings {
		if filter.Matches(booking) {
			filtered = append(filtered, booking)
		}
	}

	page := shared.Paginate(filtered, req.Page, req.Limit)
	res.FromModels(page, len(filtered), req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) ListByCustomer(ctx context.Context, customerID string) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res = make([]dto.BookingResponse, 0, len(bookings))

	for _, booking := range bookings {
		if booking.CustomerID != customerID {
			continue
		}

		var item dto.BookingResponse
		item.FromModel(booking)
		res = append(res, item)
	}

	return res, nil
}

// commit persists the room and booking snapshots in one atomic store write.
// Either both collections advance or neither does.
func (s *serviceImpl) commit(ctx context.Context, rooms []roomModel.Room, bookings []model.Booking) error {
	roomSnapshot, err := s.rooms.Snapshot(rooms)
	if err != nil {
		return err
	}

	bookingSnapshot, err := s.repo.Snapshot(bookings)
	if err != nil {
		return err
	}

	if err := s.store.SaveAll(ctx, roomSnapshot, bookingSnapshot); err != nil {
		log.Error().Err(err).Msg("failed to commit booking transition")

		return failure.WriteError(err) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheRoomPrefix)
		shared.InvalidateCaches(c, s.cache, cacheReportPrefix)
	}()
}
