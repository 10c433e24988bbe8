package service_test

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"boatsandjoy/config"
	kafkaMocks "boatsandjoy/infras/kafka/mocks"
	"boatsandjoy/infras/otel/mocks"
	boatMocks "boatsandjoy/internal/domains/boat/mocks"
	boatModel "boatsandjoy/internal/domains/boat/model"
	bookingMocks "boatsandjoy/internal/domains/booking/mocks"
	"boatsandjoy/internal/domains/booking/model"
	"boatsandjoy/internal/domains/booking/model/dto"
	"boatsandjoy/internal/domains/booking/service"
	"boatsandjoy/shared/failure"
	"boatsandjoy/shared/mailer"
	mailerMocks "boatsandjoy/shared/mailer/mocks"
)

type serviceMocks struct {
	repo      *bookingMocks.MockBookings
	boats     *boatMocks.MockBoats
	gateway   *bookingMocks.MockPaymentGateway
	mailer    *mailerMocks.MockMailer
	publisher *kafkaMocks.MockPublisher
}

func newService(t *testing.T) (service.Bookings, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := serviceMocks{
		repo:      bookingMocks.NewMockBookings(ctrl),
		boats:     boatMocks.NewMockBoats(ctrl),
		gateway:   bookingMocks.NewMockPaymentGateway(ctrl),
		mailer:    mailerMocks.NewMockMailer(ctrl),
		publisher: kafkaMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}
	cfg.Booking.Currency = "eur"

	svc := service.New(m.repo, m.boats, m.gateway, m.mailer, m.publisher, cfg, mocks.NewOtel())

	return svc, m
}

func pendingBooking(sessionID string) model.Booking {
	return model.Booking{
		ID:                      1,
		Locator:                 "AB12CD34",
		Price:                   decimal.RequireFromString("50.00"),
		Status:                  model.StatusPending,
		SessionID:               sql.NullString{String: sessionID, Valid: sessionID != ""},
		CustomerName:            "Jane",
		CustomerTelephoneNumber: "+34600000000",
		BoatID:                  3,
		SlotIDs:                 []int64{42},
	}
}

func TestBookingService_Create(t *testing.T) {
	details := model.PurchaseDetails{
		Name:        "Lolita",
		Description: "2026-06-01 10:00-14:00",
		Amount:      decimal.RequireFromString("50.00"),
		Currency:    "eur",
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(m serviceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation returns pending booking with session id",
			req: dto.CreateBookingRequest{
				Price:                   decimal.RequireFromString("50.00"),
				SlotIDs:                 "42",
				CustomerName:            "Jane",
				CustomerTelephoneNumber: "+34600000000",
			},
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					GetPurchaseDetails(gomock.Any(), []int64{42}, gomock.Any(), int64(0)).
					Return(details, nil)
				m.gateway.EXPECT().
					GenerateCheckoutSessionID(gomock.Any(), details).
					Return("sess_1", nil)
				m.repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) (model.Booking, error) {
						booking.ID = 1

						return booking, nil
					})
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "non-positive price fails validation",
			req: dto.CreateBookingRequest{
				Price:                   decimal.Zero,
				SlotIDs:                 "42",
				CustomerName:            "Jane",
				CustomerTelephoneNumber: "+34600000000",
			},
			setupMock: func(serviceMocks) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "malformed slot ids fail validation",
			req: dto.CreateBookingRequest{
				Price:                   decimal.RequireFromString("50.00"),
				SlotIDs:                 "42,,43",
				CustomerName:            "Jane",
				CustomerTelephoneNumber: "+34600000000",
			},
			setupMock: func(serviceMocks) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "taken slot surfaces conflict",
			req: dto.CreateBookingRequest{
				Price:                   decimal.RequireFromString("50.00"),
				SlotIDs:                 "42",
				CustomerName:            "Jane",
				CustomerTelephoneNumber: "+34600000000",
			},
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					GetPurchaseDetails(gomock.Any(), []int64{42}, gomock.Any(), int64(0)).
					Return(model.PurchaseDetails{}, failure.Conflict("slot 42 is already booked"))
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "gateway failure is reported and nothing persisted",
			req: dto.CreateBookingRequest{
				Price:                   decimal.RequireFromString("50.00"),
				SlotIDs:                 "42",
				CustomerName:            "Jane",
				CustomerTelephoneNumber: "+34600000000",
			},
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					GetPurchaseDetails(gomock.Any(), []int64{42}, gomock.Any(), int64(0)).
					Return(details, nil)
				m.gateway.EXPECT().
					GenerateCheckoutSessionID(gomock.Any(), details).
					Return("", failure.BadGateway("failed to create checkout session"))
			},
			wantErr:  true,
			wantCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, failure.Is(err, tt.wantCode))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, string(model.StatusPending), res.Status)
			assert.Equal(t, "sess_1", res.SessionID)
			assert.NotEmpty(t, res.Locator)
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	t.Run("returns booking by id", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(pendingBooking("sess_1"), nil)

		res, err := svc.Get(context.Background(), dto.GetBookingRequest{BookingID: 1})
		require.NoError(t, err)

		assert.Equal(t, "sess_1", res.SessionID)
	})

	t.Run("generate new session id persists a different session", func(t *testing.T) {
		svc, m := newService(t)

		booking := pendingBooking("sess_old")
		updated := pendingBooking("sess_new")

		m.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(booking, nil)
		m.repo.EXPECT().
			GetPurchaseDetails(gomock.Any(), booking.SlotIDs, gomock.Any(), booking.ID).
			Return(model.PurchaseDetails{Amount: booking.Price, Currency: "eur"}, nil)
		m.gateway.EXPECT().GenerateCheckoutSessionID(gomock.Any(), gomock.Any()).Return("sess_new", nil)
		m.repo.EXPECT().UpdateSessionID(gomock.Any(), int64(1), "sess_new").Return(updated, nil)

		res, err := svc.Get(context.Background(), dto.GetBookingRequest{BookingID: 1, GenerateNewSessionID: true})
		require.NoError(t, err)

		assert.Equal(t, "sess_new", res.SessionID)
		assert.NotEqual(t, booking.SessionID.String, res.SessionID)
	})

	t.Run("missing booking surfaces not found", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(model.Booking{}, failure.NotFound("booking"))

		_, err := svc.Get(context.Background(), dto.GetBookingRequest{BookingID: 9})

		require.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusNotFound))
	})
}

func TestBookingService_MarkAsPaid(t *testing.T) {
	boat := boatModel.Boat{ID: 3, Name: "Lolita"}

	t.Run("pending booking transitions and returns booking with boat", func(t *testing.T) {
		svc, m := newService(t)

		confirmed := pendingBooking("sess_1")
		confirmed.Status = model.StatusConfirmed

		m.repo.EXPECT().MarkAsPaid(gomock.Any(), "sess_1").Return(confirmed, true, nil)
		m.boats.EXPECT().Get(gomock.Any(), gomock.Any()).Return(boat, nil).AnyTimes()
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.MarkAsPaid(context.Background(), "sess_1")
		require.NoError(t, err)

		assert.Equal(t, string(model.StatusConfirmed), res.Booking.Status)
		assert.Equal(t, "Lolita", res.Boat.Name)
	})

	t.Run("already confirmed booking is a no-op without notifications", func(t *testing.T) {
		svc, m := newService(t)

		confirmed := pendingBooking("sess_1")
		confirmed.Status = model.StatusConfirmed

		// applied=false: no publish, no mail. The mocks would fail the test on
		// any unexpected notification call.
		m.repo.EXPECT().MarkAsPaid(gomock.Any(), "sess_1").Return(confirmed, false, nil)
		m.boats.EXPECT().Get(gomock.Any(), gomock.Any()).Return(boat, nil)

		res, err := svc.MarkAsPaid(context.Background(), "sess_1")
		require.NoError(t, err)

		assert.Equal(t, string(model.StatusConfirmed), res.Booking.Status)
	})

	t.Run("unknown session id surfaces not found", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().MarkAsPaid(gomock.Any(), "sess_missing").Return(model.Booking{}, false, failure.NotFound("booking"))

		_, err := svc.MarkAsPaid(context.Background(), "sess_missing")

		require.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusNotFound))
	})

	t.Run("empty session id fails validation", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.MarkAsPaid(context.Background(), "")

		require.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusBadRequest))
	})
}

func TestBookingService_MarkAsError(t *testing.T) {
	t.Run("pending booking transitions to error", func(t *testing.T) {
		svc, m := newService(t)

		errored := pendingBooking("sess_1")
		errored.Status = model.StatusError

		m.repo.EXPECT().MarkAsError(gomock.Any(), "sess_1").Return(errored, true, nil)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.MarkAsError(context.Background(), "sess_1")
		require.NoError(t, err)

		assert.Equal(t, string(model.StatusError), res.Status)
	})

	t.Run("unknown session id surfaces not found", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().MarkAsError(gomock.Any(), "sess_missing").Return(model.Booking{}, false, failure.NotFound("booking"))

		_, err := svc.MarkAsError(context.Background(), "sess_missing")

		require.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusNotFound))
	})
}

func TestBookingService_RegisterEvent(t *testing.T) {
	headers := http.Header{}
	payload := []byte(`{}`)

	t.Run("unverifiable event mutates nothing", func(t *testing.T) {
		svc, m := newService(t)

		m.gateway.EXPECT().
			RegisterEvent(gomock.Any(), headers, payload).
			Return(model.PaymentEvent{}, failure.BadGateway("webhook verification failed"))

		err := svc.RegisterEvent(context.Background(), headers, payload)

		require.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusBadGateway))
	})

	t.Run("settled event stores email and confirms once", func(t *testing.T) {
		svc, m := newService(t)

		booking := pendingBooking("sess_1")
		withEmail := booking
		withEmail.CustomerEmail = sql.NullString{String: "a@b.com", Valid: true}
		confirmed := withEmail
		confirmed.Status = model.StatusConfirmed

		m.gateway.EXPECT().
			RegisterEvent(gomock.Any(), headers, payload).
			Return(model.PaymentEvent{Type: "checkout.session.completed", SessionID: "sess_1", CustomerEmail: "a@b.com", Settled: true}, nil)
		m.repo.EXPECT().GetBySessionID(gomock.Any(), "sess_1").Return(booking, nil)
		m.repo.EXPECT().UpdateCustomerEmail(gomock.Any(), booking.ID, "a@b.com").Return(withEmail, nil)
		m.repo.EXPECT().MarkAsPaid(gomock.Any(), "sess_1").Return(confirmed, true, nil)
		m.boats.EXPECT().Get(gomock.Any(), gomock.Any()).Return(boatModel.Boat{ID: 3, Name: "Lolita"}, nil).AnyTimes()
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		require.NoError(t, svc.RegisterEvent(context.Background(), headers, payload))
	})

	t.Run("non-settled terminal event runs the error path", func(t *testing.T) {
		svc, m := newService(t)

		booking := pendingBooking("sess_1")
		errored := booking
		errored.Status = model.StatusError

		m.gateway.EXPECT().
			RegisterEvent(gomock.Any(), headers, payload).
			Return(model.PaymentEvent{Type: "checkout.session.expired", SessionID: "sess_1"}, nil)
		m.repo.EXPECT().GetBySessionID(gomock.Any(), "sess_1").Return(booking, nil)
		m.repo.EXPECT().MarkAsError(gomock.Any(), "sess_1").Return(errored, true, nil)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		require.NoError(t, svc.RegisterEvent(context.Background(), headers, payload))
	})

	t.Run("event without checkout session is acknowledged and dropped", func(t *testing.T) {
		svc, m := newService(t)

		m.gateway.EXPECT().
			RegisterEvent(gomock.Any(), headers, payload).
			Return(model.PaymentEvent{Type: "payment_intent.created"}, nil)

		require.NoError(t, svc.RegisterEvent(context.Background(), headers, payload))
	})

	t.Run("event for unknown session is rejected", func(t *testing.T) {
		svc, m := newService(t)

		m.gateway.EXPECT().
			RegisterEvent(gomock.Any(), headers, payload).
			Return(model.PaymentEvent{Type: "checkout.session.completed", SessionID: "sess_missing", Settled: true}, nil)
		m.repo.EXPECT().GetBySessionID(gomock.Any(), "sess_missing").Return(model.Booking{}, failure.NotFound("booking"))

		err := svc.RegisterEvent(context.Background(), headers, payload)

		require.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusNotFound))
	})
}

func TestBookingService_GetBySession(t *testing.T) {
	t.Run("returns booking", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().GetBySessionID(gomock.Any(), "sess_1").Return(pendingBooking("sess_1"), nil)

		res, err := svc.GetBySession(context.Background(), "sess_1")
		require.NoError(t, err)

		assert.Equal(t, "sess_1", res.SessionID)
	})

	t.Run("empty session id fails validation", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.GetBySession(context.Background(), "")

		require.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusBadRequest))
	})

	t.Run("unknown session surfaces not found", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().GetBySessionID(gomock.Any(), "sess_missing").Return(model.Booking{}, failure.NotFound("booking"))

		_, err := svc.GetBySession(context.Background(), "sess_missing")

		require.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusNotFound))
	})
}

func TestBookingService_SendConfirmationEmail(t *testing.T) {
	t.Run("skips when customer email is unknown", func(t *testing.T) {
		svc, _ := newService(t)

		// No mailer/boat expectations: any call would fail the test.
		require.NoError(t, svc.SendConfirmationEmail(context.Background(), pendingBooking("sess_1")))
	})

	t.Run("sends the confirmation to the customer", func(t *testing.T) {
		svc, m := newService(t)

		booking := pendingBooking("sess_1")
		booking.CustomerEmail = sql.NullString{String: "a@b.com", Valid: true}

		m.boats.EXPECT().Get(gomock.Any(), gomock.Any()).Return(boatModel.Boat{ID: 3, Name: "Lolita"}, nil)
		m.mailer.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, message mailer.Message) error {
				assert.Equal(t, "a@b.com", message.To)
				assert.Equal(t, mailer.TemplateConfirmation, message.Template)

				return nil
			})

		require.NoError(t, svc.SendConfirmationEmail(context.Background(), booking))
	})

	t.Run("boat lookup failure is reported", func(t *testing.T) {
		svc, m := newService(t)

		booking := pendingBooking("sess_1")
		booking.CustomerEmail = sql.NullString{String: "a@b.com", Valid: true}

		m.boats.EXPECT().Get(gomock.Any(), gomock.Any()).Return(boatModel.Boat{}, nil)

		err := svc.SendConfirmationEmail(context.Background(), booking)

		require.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusNotFound))
	})
}
