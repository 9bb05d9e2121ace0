package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"frontdesk/config"
	"frontdesk/infras/otel"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	customerRepo "frontdesk/internal/domains/customer/repository"
	paymentRepo "frontdesk/internal/domains/payment/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepo "frontdesk/internal/domains/room/repository"
	"frontdesk/internal/domains/report/model/dto"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
)

const (
	cacheDashboard = "report:dashboard"

	exportSheet = "Bookings"
)

// Reporter aggregates the live collections into read-only views. It mutates
// nothing; the mutating services clear the report cache prefix on every write.
type Reporter interface {
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
	Revenue(ctx context.Context, from, to string) (dto.RevenueResponse, error)
	CustomerBookings(ctx context.Context, from, to string) (dto.CustomerBookingsResponse, error)
	ExportBookings(ctx context.Context, from, to string) ([]byte, string, error)
}

type serviceImpl struct {
	rooms     roomRepo.Room
	bookings  bookingRepo.Booking
	customers customerRepo.Customer
	payments  paymentRepo.Payment
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	rooms roomRepo.Room,
	bookings bookingRepo.Booking,
	customers customerRepo.Customer,
	payments paymentRepo.Payment,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reporter {
	return &serviceImpl{
		rooms:     rooms,
		bookings:  bookings,
		customers: customers,
		payments:  payments,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheDashboard, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheDashboard).Msg("cache hit for dashboard")

		return res, nil
	}

	rooms, err := s.rooms.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	bookings, err := s.bookings.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	payments, err := s.payments.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	customerCount, err := s.customers.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count customers")

		return res, fmt.Errorf("failed to count customers: %w", err)
	}

	res.TotalRooms = len(rooms)
	res.TotalCustomers = customerCount

	for _, room := range rooms {
		switch room.Status {
		case roomModel.StatusAvailable:
			res.AvailableRooms++
		case roomModel.StatusBooked:
			res.BookedRooms++
		case roomModel.StatusMaintenance:
			res.MaintenanceRooms++
		}

		if room.Type == roomModel.TypeAC {
			res.ACRooms++
		} else {
			res.NonACRooms++
		}
	}

	if res.TotalRooms > 0 {
		res.OccupancyRate = float64(res.BookedRooms) / float64(res.TotalRooms) * 100
	}

	for _, booking := range bookings {
		switch booking.Status {
		case bookingModel.StatusActive:
			res.ActiveBookings++
			res.BookingRevenue += booking.TotalAmount
		case bookingModel.StatusCompleted:
			res.CompletedBookings++
			res.BookingRevenue += booking.TotalAmount
		case bookingModel.StatusCancelled:
			res.CancelledBookings++
		}
	}

	for _, payment := range payments {
		if payment.IsCompleted() {
			res.CollectedRevenue += payment.Amount
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheDashboard, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Revenue(ctx context.Context, from, to string) (res dto.RevenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Revenue")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := parseRange(from, to)
	if err != nil {
		return res, err
	}

	payments, err := s.payments.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.From = from
	res.To = to
	res.ByMethod = map[string]int64{}

	for _, payment := range payments {
		if !payment.IsCompleted() {
			continue
		}

		if !inRange(payment.PaymentDate, start, end) {
			continue
		}

		res.TotalAmount += payment.Amount
		res.PaymentCount++
		res.ByMethod[payment.PaymentMethod] += payment.Amount
	}

	return res, nil
}

func (s *serviceImpl) CustomerBookings(ctx context.Context, from, to string) (res dto.CustomerBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CustomerBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	rows, err := s.bookingRows(ctx, from, to)
	if err != nil {
		return res, err
	}

	res.From = from
	res.To = to
	res.Bookings = rows

	return res, nil
}

// ExportBookings renders the customer bookings report as an XLSX workbook and
// returns its bytes together with a download filename.
func (s *serviceImpl) ExportBookings(ctx context.Context, from, to string) (data []byte, filename string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	rows, err := s.bookingRows(ctx, from, to)
	if err != nil {
		return nil, constant.Empty, err
	}

	file := excelize.NewFile()

	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close workbook")
		}
	}()

	index, err := file.NewSheet(exportSheet)
	if err != nil {
		return nil, constant.Empty, fmt.Errorf("failed to create sheet: %w", err)
	}

	file.SetActiveSheet(index)

	if err = file.DeleteSheet("Sheet1"); err != nil {
		return nil, constant.Empty, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headers := []string{
		"BookingID", "CustomerID", "CustomerName", "RoomID", "RoomNumber",
		"CheckInDate", "CheckOutDate", "Nights", "Status", "TotalAmount",
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err = file.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, constant.Empty, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, row := range rows {
		values := []any{
			row.BookingID, row.CustomerID, row.CustomerName, row.RoomID, row.RoomNumber,
			row.CheckInDate, row.CheckOutDate, row.Nights, row.Status, row.TotalAmount,
		}

		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err = file.SetCellValue(exportSheet, cell, value); err != nil {
				return nil, constant.Empty, fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, constant.Empty, fmt.Errorf("failed to render workbook: %w", err)
	}

	filename = fmt.Sprintf("bookings_%s_%s.xlsx", orAll(from), orAll(to))

	return buffer.Bytes(), filename, nil
}

func (s *serviceImpl) bookingRows(ctx context.Context, from, to string) ([]dto.CustomerBookingRow, error) {
	start, end, err := parseRange(from, to)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	rooms, err := s.rooms.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	roomNumbers := make(map[string]string, len(rooms))
	for _, room := range rooms {
		roomNumbers[room.ID] = room.RoomNumber
	}

	rows := make([]dto.CustomerBookingRow, 0, len(bookings))

	for _, booking := range bookings {
		checkIn, parseErr := time.Parse(constant.DateOnlyFormat, booking.CheckInDate)
		if parseErr != nil {
			log.Warn().
				Str("bookingId", booking.ID).
				Str("checkInDate", booking.CheckInDate).
				Msg("skipping booking with malformed check-in date")

			continue
		}

		if !inRange(checkIn, start, end) {
			continue
		}

		nights, _ := bookingModel.Nights(booking.CheckInDate, booking.CheckOutDate)

		rows = append(rows, dto.CustomerBookingRow{
			BookingID:    booking.ID,
			CustomerID:   booking.CustomerID,
			CustomerName: booking.CustomerName,
			RoomID:       booking.RoomID,
			RoomNumber:   roomNumbers[booking.RoomID],
			CheckInDate:  booking.CheckInDate,
			CheckOutDate: booking.CheckOutDate,
			Nights:       nights,
			Status:       booking.Status,
			TotalAmount:  booking.TotalAmount,
		})
	}

	return rows, nil
}

// parseRange turns optional date-only bounds into a concrete interval. Empty
// bounds are open.
func parseRange(from, to string) (start, end time.Time, err error) {
	if from != "" {
		start, err = time.Parse(constant.DateOnlyFormat, from)
		if err != nil {
			return start, end, failure.BadRequestFromString("invalid from date") // nolint:wrapcheck
		}
	}

	if to != "" {
		end, err = time.Parse(constant.DateOnlyFormat, to)
		if err != nil {
			return start, end, failure.BadRequestFromString("invalid to date") // nolint:wrapcheck
		}

		// Inclusive upper bound: the whole "to" day counts.
		end = end.Add(24 * time.Hour)
	}

	return start, end, nil
}

func inRange(t, start, end time.Time) bool {
	if !start.IsZero() && t.Before(start) {
		return false
	}

	if !end.IsZero() && !t.Before(end) {
		return false
	}

	return true
}

func orAll(bound string) string {
	if bound == "" {
		return "all"
	}

	return bound
}
