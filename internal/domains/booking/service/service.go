package service

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"boatsandjoy/config"
	"boatsandjoy/infras/kafka"
	"boatsandjoy/infras/otel"
	boatModel "boatsandjoy/internal/domains/boat/model"
	boatRepository "boatsandjoy/internal/domains/boat/repository"
	"boatsandjoy/internal/domains/booking/gateway"
	"boatsandjoy/internal/domains/booking/model"
	"boatsandjoy/internal/domains/booking/model/dto"
	"boatsandjoy/internal/domains/booking/repository"
	"boatsandjoy/shared"
	"boatsandjoy/shared/constant"
	"boatsandjoy/shared/failure"
	"boatsandjoy/shared/mailer"

	"github.com/rs/zerolog/log"
)

const (
	eventBookingCreated   = "booking.created"
	eventBookingConfirmed = "booking.confirmed"
	eventBookingErrored   = "booking.errored"
)

// Bookings drives the booking lifecycle: checkout session creation, the
// pending->confirmed/error transitions and the notifications hanging off them.
type Bookings interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, req dto.GetBookingRequest) (dto.BookingResponse, error)
	MarkAsPaid(ctx context.Context, sessionID string) (dto.BookingPaymentResponse, error)
	MarkAsError(ctx context.Context, sessionID string) (dto.BookingResponse, error)
	RegisterEvent(ctx context.Context, headers http.Header, payload []byte) error
	GetBySession(ctx context.Context, sessionID string) (dto.BookingResponse, error)
	SendConfirmationEmail(ctx context.Context, booking model.Booking) error
}

type serviceImpl struct {
	repo      repository.Bookings
	boats     boatRepository.Boats
	gateway   gateway.PaymentGateway
	mailer    mailer.Mailer
	publisher kafka.Publisher
	cfg       *config.Config
	otel      otel.Otel
}

func New(
	repo repository.Bookings,
	boats boatRepository.Boats,
	paymentGateway gateway.PaymentGateway,
	mail mailer.Mailer,
	publisher kafka.Publisher,
	cfg *config.Config,
	otl otel.Otel,
) Bookings {
	return &serviceImpl{
		repo:      repo,
		boats:     boats,
		gateway:   paymentGateway,
		mailer:    mail,
		publisher: publisher,
		cfg:       cfg,
		otel:      otl,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !req.Price.IsPositive() {
		return res, failure.BadRequestFromString("price must be greater than zero") // nolint:wrapcheck
	}

	slotIDs, err := shared.ParseSlotIDs(req.SlotIDs)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	details, err := s.repo.GetPurchaseDetails(ctx, slotIDs, req.Price, 0)
	if err != nil {
		log.Error().Err(err).Msg("failed to get purchase details")

		return res, err
	}

	sessionID, err := s.gateway.GenerateCheckoutSessionID(ctx, details)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate checkout session")

		return res, err
	}

	booking := req.ToModel()
	booking.SessionID = sql.NullString{String: sessionID, Valid: true}

	created, err := s.repo.Create(ctx, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, err
	}

	s.publish(ctx, eventBookingCreated, created)

	res.FromModel(created)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, req dto.GetBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.GetByID(ctx, req.BookingID)
	if err != nil {
		log.Error().Err(err).Int64("bookingID", req.BookingID).Msg("failed to get booking")

		return res, err
	}

	if req.GenerateNewSessionID {
		booking, err = s.regenerateSession(ctx, booking)
		if err != nil {
			return res, err
		}
	}

	res.FromModel(booking)

	return res, nil
}

// regenerateSession opens a fresh checkout session for a booking whose
// previous session was abandoned, and persists the new id.
func (s *serviceImpl) regenerateSession(ctx context.Context, booking model.Booking) (model.Booking, error) {
	details, err := s.repo.GetPurchaseDetails(ctx, booking.SlotIDs, booking.Price, booking.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to recompute purchase details")

		return booking, err
	}

	sessionID, err := s.gateway.GenerateCheckoutSessionID(ctx, details)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate checkout session")

		return booking, err
	}

	updated, err := s.repo.UpdateSessionID(ctx, booking.ID, sessionID)
	if err != nil {
		log.Error().Err(err).Msg("failed to persist new session id")

		return booking, err
	}

	return updated, nil
}

func (s *serviceImpl) MarkAsPaid(ctx context.Context, sessionID string) (res dto.BookingPaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkAsPaid")
	defer scope.End()
	defer scope.TraceIfError(err)

	if sessionID == constant.Empty {
		return res, failure.BadRequestFromString("session_id is required") // nolint:wrapcheck
	}

	booking, err := s.confirm(ctx, sessionID)
	if err != nil {
		return res, err
	}

	boat, err := s.getBoat(ctx, booking.BoatID)
	if err != nil {
		return res, err
	}

	res.Booking.FromModel(booking)
	res.Boat.FromModel(boat)

	return res, nil
}

func (s *serviceImpl) MarkAsError(ctx context.Context, sessionID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkAsError")
	defer scope.End()
	defer scope.TraceIfError(err)

	if sessionID == constant.Empty {
		return res, failure.BadRequestFromString("session_id is required") // nolint:wrapcheck
	}

	booking, applied, err := s.repo.MarkAsError(ctx, sessionID)
	if err != nil {
		log.Error().Err(err).Msg("failed to mark booking as error")

		return res, err
	}

	if applied {
		s.publish(ctx, eventBookingErrored, booking)
		s.notifyInternal(ctx, booking, mailer.TemplatePaymentError, fmt.Sprintf("Booking %s payment error", booking.Locator))
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) RegisterEvent(ctx context.Context, headers http.Header, payload []byte) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RegisterEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	event, err := s.gateway.RegisterEvent(ctx, headers, payload)
	if err != nil {
		log.Error().Err(err).Msg("rejected payment event")

		return err
	}

	// Events that are not checkout outcomes are acknowledged and dropped.
	if event.SessionID == constant.Empty {
		return nil
	}

	booking, err := s.repo.GetBySessionID(ctx, event.SessionID)
	if err != nil {
		log.Error().Err(err).Str("sessionID", event.SessionID).Msg("payment event for unknown session")

		return err
	}

	if !event.Settled {
		_, err = s.MarkAsError(ctx, event.SessionID)

		return err
	}

	if event.CustomerEmail != constant.Empty && booking.CustomerEmail.String != event.CustomerEmail {
		if _, err = s.repo.UpdateCustomerEmail(ctx, booking.ID, event.CustomerEmail); err != nil {
			log.Error().Err(err).Msg("failed to store customer email")

			return err
		}
	}

	_, err = s.confirm(ctx, event.SessionID)

	return err
}

func (s *serviceImpl) GetBySession(ctx context.Context, sessionID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBySession")
	defer scope.End()
	defer scope.TraceIfError(err)

	if sessionID == constant.Empty {
		return res, failure.BadRequestFromString("session_id is required") // nolint:wrapcheck
	}

	booking, err := s.repo.GetBySessionID(ctx, sessionID)
	if err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("failed to get booking by session")

		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

// SendConfirmationEmail sends the customer facing confirmation. It is a no-op
// while the customer email is unknown (checkout abandoned before the provider
// reported one).
func (s *serviceImpl) SendConfirmationEmail(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendConfirmationEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !booking.CustomerEmail.Valid || booking.CustomerEmail.String == constant.Empty {
		log.Info().Str("locator", booking.Locator).Msg("no customer email yet, skipping confirmation")

		return nil
	}

	boat, err := s.getBoat(ctx, booking.BoatID)
	if err != nil {
		return err
	}

	err = s.mailer.Send(ctx, mailer.Message{
		To:       booking.CustomerEmail.String,
		Subject:  fmt.Sprintf("Your booking %s is confirmed", booking.Locator),
		Template: mailer.TemplateConfirmation,
		Data:     s.mailData(booking, boat),
	})
	if err != nil {
		log.Error().Err(err).Str("locator", booking.Locator).Msg("failed to send confirmation email")

		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	return nil
}

// confirm applies the pending->confirmed transition keyed by session id and
// fires the one-time notifications when the transition actually happened.
// Both the success redirect and the webhook land here, so a payment can race
// itself safely.
func (s *serviceImpl) confirm(ctx context.Context, sessionID string) (model.Booking, error) {
	booking, applied, err := s.repo.MarkAsPaid(ctx, sessionID)
	if err != nil {
		log.Error().Err(err).Msg("failed to mark booking as paid")

		return booking, err
	}

	if applied {
		s.publish(ctx, eventBookingConfirmed, booking)
		s.notifyInternal(ctx, booking, mailer.TemplateNewBooking, fmt.Sprintf("New booking %s", booking.Locator))

		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.SendConfirmationEmail(c, booking); err != nil {
				log.Error().Err(err).Str("locator", booking.Locator).Msg("confirmation email failed")
			}
		}()
	}

	return booking, nil
}

func (s *serviceImpl) getBoat(ctx context.Context, boatID int64) (boatModel.Boat, error) {
	boat, err := s.boats.Get(ctx, shared.FilterByID(boatID, boatModel.FieldID, boatModel.TableName))
	if err != nil {
		log.Error().Err(err).Int64("boatID", boatID).Msg("failed to get boat")

		return boat, fmt.Errorf("failed to get boat: %w", err)
	}

	if boat.ID == 0 {
		return boat, failure.NotFound(boatModel.EntityName) // nolint:wrapcheck
	}

	return boat, nil
}

// notifyInternal emails the configured sender address. Suppressed outside
// production so staging runs do not page the business inbox.
func (s *serviceImpl) notifyInternal(ctx context.Context, booking model.Booking, template, subject string) {
	if s.cfg.Server.Env != constant.ServerEnvProduction {
		log.Info().Str("template", template).Msg("non-production environment, skipping internal notification")

		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		boat, err := s.getBoat(c, booking.BoatID)
		if err != nil {
			return
		}

		err = s.mailer.Send(c, mailer.Message{
			To:       s.cfg.Mail.Sender,
			Subject:  subject,
			Template: template,
			Data:     s.mailData(booking, boat),
		})
		if err != nil {
			log.Error().Err(err).Str("template", template).Msg("internal notification failed")
		}
	}()
}

type mailData struct {
	Booking  dto.BookingResponse
	Boat     boatModel.Boat
	Currency string
}

func (s *serviceImpl) mailData(booking model.Booking, boat boatModel.Boat) mailData {
	var res dto.BookingResponse
	res.FromModel(booking)

	return mailData{
		Booking:  res,
		Boat:     boat,
		Currency: s.cfg.Booking.Currency,
	}
}

type bookingEvent struct {
	Event   string              `json:"event"`
	Booking dto.BookingResponse `json:"booking"`
}

func (s *serviceImpl) publish(ctx context.Context, event string, booking model.Booking) {
	var payload dto.BookingResponse
	payload.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		err := s.publisher.Publish(c, kafka.Message{
			Key:   booking.Locator,
			Value: bookingEvent{Event: event, Booking: payload},
		})
		if err != nil {
			log.Error().Err(err).Str("event", event).Msg("failed to publish booking event")
		}
	}()
}
