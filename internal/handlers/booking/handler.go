package booking

import (
	"io"
	"net/http"

	"boatsandjoy/infras/otel"
	"boatsandjoy/internal/domains/booking/model/dto"
	"boatsandjoy/internal/domains/booking/service"
	"boatsandjoy/shared/constant"
	"boatsandjoy/shared/validator"
	"boatsandjoy/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Bookings
	otel    otel.Otel
}

func New(service service.Bookings, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/payment", handler.GetBookingPayment)
		routerGroup.Post("/events", handler.RegisterEvent)
		routerGroup.Get("/paid", handler.MarkAsPaid)
		routerGroup.Get("/error", handler.MarkAsError)
		routerGroup.Get("/by-session", handler.GetBookingBySession)
	})
}

// CreateBooking opens a checkout session and persists a pending booking.
// @Summary Create a new booking
// @Description Create a pending booking for the given slots and obtain a payment checkout session.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Created booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created with locator " + booking.Locator)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetBookingPayment returns a booking with a freshly generated checkout session.
// @Summary Get a booking for payment
// @Description Retrieve a booking by id, forcing a new checkout session so an abandoned payment can be resumed.
// @Tags Booking
// @Accept json
// @Produce json
// @Param booking_id query int true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking with new session id"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/bookings/payment [get]
func (handler *Handler) GetBookingPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingPayment")
	defer scope.End()

	req := dto.GetBookingRequest{}
	req.FromRequest(r)
	req.GenerateNewSessionID = true

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid booking payment request")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Get(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking for payment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// RegisterEvent ingests a payment provider webhook.
// @Summary Register a payment event
// @Description Verify and process an inbound payment provider webhook. Responds 200 on success and a bare 400 on any failure.
// @Tags Booking
// @Accept json
// @Produce json
// @Success 200 "Event processed"
// @Failure 400 "Event rejected"
// @Router /v1/bookings/events [post]
func (handler *Handler) RegisterEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterEvent")
	defer scope.End()

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read webhook payload")

		w.WriteHeader(http.StatusBadRequest)

		return
	}

	// Webhook failures answer a bare 400: verification details stay private.
	if err := handler.service.RegisterEvent(ctx, r.Header, payload); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to process payment event")

		w.WriteHeader(http.StatusBadRequest)

		return
	}

	w.WriteHeader(http.StatusOK)
}

// MarkAsPaid confirms the booking behind a settled checkout session.
// @Summary Mark a booking as paid
// @Description Transition the booking identified by the checkout session to confirmed and return it with its boat.
// @Tags Booking
// @Accept json
// @Produce json
// @Param session_id query string true "Checkout session ID"
// @Success 200 {object} response.Data[dto.BookingPaymentResponse] "Confirmed booking with boat"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/paid [get]
func (handler *Handler) MarkAsPaid(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkAsPaid")
	defer scope.End()

	sessionID := r.URL.Query().Get(constant.RequestParamSessionID)

	res, err := handler.service.MarkAsPaid(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark booking as paid")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking " + res.Booking.Locator + " marked as paid")

	response.WithJSON(w, http.StatusOK, res)
}

// MarkAsError flags the booking behind a failed checkout session.
// @Summary Mark a booking as errored
// @Description Transition the booking identified by the checkout session to error state.
// @Tags Booking
// @Accept json
// @Produce json
// @Param session_id query string true "Checkout session ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Errored booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/error [get]
func (handler *Handler) MarkAsError(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkAsError")
	defer scope.End()

	sessionID := r.URL.Query().Get(constant.RequestParamSessionID)

	res, err := handler.service.MarkAsError(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark booking as error")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetBookingBySession looks a booking up by its checkout session.
// @Summary Get a booking by checkout session
// @Description Retrieve the booking attached to a checkout session id.
// @Tags Booking
// @Accept json
// @Produce json
// @Param session_id query string true "Checkout session ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/by-session [get]
func (handler *Handler) GetBookingBySession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingBySession")
	defer scope.End()

	sessionID := r.URL.Query().Get(constant.RequestParamSessionID)

	res, err := handler.service.GetBySession(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by session")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
