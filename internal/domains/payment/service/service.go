package service

import (
	"context"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/otel"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	"frontdesk/internal/domains/payment/model"
	"frontdesk/internal/domains/payment/model/dto"
	"frontdesk/internal/domains/payment/repository"
	roomRepo "frontdesk/internal/domains/room/repository"
	"frontdesk/internal/events"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllPayment = "payment:gets"
	cacheReportPrefix  = "report"
)

// Ledger records payments and derives the pending payments view. Entries are
// append-only; there is no edit, void or refund operation.
type Ledger interface {
	Record(ctx context.Context, req dto.RecordPaymentRequest) (dto.PaymentResponse, error)
	IsUnpaid(ctx context.Context, bookingID string) (bool, error)
	ListUnpaid(ctx context.Context) ([]dto.UnpaidBookingResponse, error)
	ListRecent(ctx context.Context, limit int) ([]dto.PaymentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter dto.PaymentFilter) (dto.GetPaymentsResponse, error)
}

type serviceImpl struct {
	repo      repository.Payment
	bookings  bookingRepo.Booking
	rooms     roomRepo.Room
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	publisher events.Publisher
}

func New(
	repo repository.Payment,
	bookings bookingRepo.Booking,
	rooms roomRepo.Room,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	publisher events.Publisher,
) Ledger {
	return &serviceImpl{
		repo:      repo,
		bookings:  bookings,
		rooms:     rooms,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		publisher: publisher,
	}
}

// Record accepts the amount as given. Mismatches against the booking total and
// duplicate payments are allowed and logged, never rejected: the desk handles
// partial payments and adjustments on its own authority.
func (s *serviceImpl) Record(ctx context.Context, req dto.RecordPaymentRequest) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Record")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookings.Get(ctx, req.BookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if req.Amount != booking.TotalAmount {
		log.Warn().
			Str("bookingId", booking.ID).
			Int64("amount", req.Amount).
			Int64("totalAmount", booking.TotalAmount).
			Msg("payment amount differs from booking total")
	}

	payments, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	for _, payment := range payments {
		if payment.BookingID == booking.ID && payment.IsCompleted() {
			log.Warn().
				Str("bookingId", booking.ID).
				Str("paymentId", payment.ID).
				Msg("booking already has a completed payment")

			break
		}
	}

	roomNumber := constant.Empty

	room, err := s.rooms.Get(ctx, booking.RoomID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID != constant.Empty {
		roomNumber = room.RoomNumber
	}

	payment := req.ToModel(booking, roomNumber, shared.Operator(ctx))

	if err = s.repo.Insert(ctx, payment); err != nil {
		log.Error().Err(err).Msg("failed to insert payment")

		return res, err
	}

	s.invalidate(ctx)

	res.FromModel(payment)
	s.publisher.Publish(ctx, events.TypePaymentRecorded, payment.ID, res)

	log.Info().
		Str("paymentId", payment.ID).
		Str("bookingId", payment.BookingID).
		Int64("amount", payment.Amount).
		Msg("payment recorded")

	return res, nil
}

// IsUnpaid reports whether the booking is active with no completed payment.
// Derived read, recomputed from the full ledger each call.
func (s *serviceImpl) IsUnpaid(ctx context.Context, bookingID string) (res bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsUnpaid")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookings.Get(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return false, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return false, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if !booking.IsActive() {
		return false, nil
	}

	payments, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return false, fmt.Errorf("failed to get payments: %w", err)
	}

	return !hasCompletedPayment(payments, bookingID), nil
}

func (s *serviceImpl) ListUnpaid(ctx context.Context) (res []dto.UnpaidBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListUnpaid")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.bookings.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	payments, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res = make([]dto.UnpaidBookingResponse, 0, len(bookings))

	for _, booking := range bookings {
		if booking.Status != bookingModel.StatusActive {
			continue
		}

		if hasCompletedPayment(payments, booking.ID) {
			continue
		}

		var item dto.UnpaidBookingResponse
		item.FromModel(booking)
		res = append(res, item)
	}

	return res, nil
}

// ListRecent returns the newest entries first, reverse insertion order.
func (s *serviceImpl) ListRecent(ctx context.Context, limit int) (res []dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListRecent")
	defer scope.End()
	defer scope.TraceIfError(err)

	if limit <= 0 {
		limit = constant.DefaultValueLimit
	}

	payments, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res = make([]dto.PaymentResponse, 0, limit)

	for index := len(payments) - 1; index >= 0 && len(res) < limit; index-- {
		var item dto.PaymentResponse
		item.FromModel(payments[index])
		res = append(res, item)
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter dto.PaymentFilter) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPayment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payments")

		return res, nil
	}

	payments, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	filtered := make([]model.Payment, 0, len(payments))
	for _, payment := range payments {
		if filter.Matches(payment) {
			filtered = append(filtered, payment)
		}
	}

	page := shared.Paginate(filtered, req.Page, req.Limit)
	res.FromModels(page, len(filtered), req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPayment)
		shared.InvalidateCaches(c, s.cache, cacheReportPrefix)
	}()
}

func hasCompletedPayment(payments []model.Payment, bookingID string) bool {
	for _, payment := range payments {
		if payment.BookingID == bookingID && payment.IsCompleted() {
			return true
		}
	}

	return false
}
