package payment

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/payment/model"
	"frontdesk/internal/domains/payment/model/dto"
	"frontdesk/internal/domains/payment/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"
)

type Handler struct {
	service service.Ledger
	otel    otel.Otel
}

func New(service service.Ledger, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.RecordPayment)
		routerGroup.Get("/", handler.GetPayments)
		routerGroup.Get("/recent", handler.GetRecentPayments)
		routerGroup.Get("/unpaid", handler.GetUnpaidBookings)
		routerGroup.Get("/unpaid/{id}", handler.GetBookingPaymentStatus)
	})
}

// RecordPayment appends a completed entry to the ledger.
// @Summary Record a payment
// @Description Record a payment against a booking. The amount is accepted as given, partial payments included.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} response.Data[dto.PaymentResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments [post]
func (handler *Handler) RecordPayment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordPayment")
	defer scope.End()

	var req dto.RecordPaymentRequest

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Record(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record payment")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetPayments lists ledger entries with optional filtering.
// @Summary Get all payments
// @Tags Payment
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param booking_id query string false "Filter by booking"
// @Param method query string false "Filter by method" Enums(cash, card, upi)
// @Param status query string false "Filter by status" Enums(completed, pending, failed)
// @Param search query string false "Substring match over customer name, booking and room"
// @Success 200 {object} response.Data[dto.GetPaymentsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/payments [get]
func (handler *Handler) GetPayments(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPayments")
	defer scope.End()

	var params gDto.QueryParams
	params.FromRequest(request, true)

	filter := dto.PaymentFilter{
		BookingID:     request.URL.Query().Get(model.FieldBookingID),
		PaymentMethod: request.URL.Query().Get(model.FieldMethod),
		Status:        request.URL.Query().Get(model.FieldStatus),
		Search:        request.URL.Query().Get(model.FieldSearch),
	}

	res, err := handler.service.GetAll(ctx, params, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payments")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetRecentPayments lists the newest ledger entries first.
// @Summary Get recent payments
// @Tags Payment
// @Produce json
// @Param limit query int false "Maximum entries to return"
// @Success 200 {object} response.Data[[]dto.PaymentResponse]
// @Failure 500 {object} response.Error
// @Router /v1/payments/recent [get]
func (handler *Handler) GetRecentPayments(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecentPayments")
	defer scope.End()

	limit := 0
	if limitStr := request.URL.Query().Get(constant.RequestParamLimit); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed
		}
	}

	res, err := handler.service.ListRecent(ctx, limit)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get recent payments")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetUnpaidBookings lists active bookings with no completed payment.
// @Summary Get pending payments
// @Tags Payment
// @Produce json
// @Success 200 {object} response.Data[[]dto.UnpaidBookingResponse]
// @Failure 500 {object} response.Error
// @Router /v1/payments/unpaid [get]
func (handler *Handler) GetUnpaidBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUnpaidBookings")
	defer scope.End()

	res, err := handler.service.ListUnpaid(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get unpaid bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBookingPaymentStatus reports whether one booking is still unpaid.
// @Summary Check booking payment status
// @Tags Payment
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[bool]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/unpaid/{id} [get]
func (handler *Handler) GetBookingPaymentStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingPaymentStatus")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.IsUnpaid(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check payment status")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
