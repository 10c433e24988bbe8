package dto

import (
	"net/http"
	"strconv"

	boatDto "boatsandjoy/internal/domains/boat/model/dto"
	"boatsandjoy/internal/domains/booking/model"
	"boatsandjoy/shared"
	"boatsandjoy/shared/constant"
	gDto "boatsandjoy/shared/dto"
	gModel "boatsandjoy/shared/model"
	"boatsandjoy/shared/timezone"

	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	Price                   decimal.Decimal `json:"price"                     validate:"required"`
	SlotIDs                 string          `json:"slot_ids"                  validate:"required,slotids"`
	CustomerName            string          `json:"customer_name"             validate:"required,max=100"`
	CustomerTelephoneNumber string          `json:"customer_telephone_number" validate:"required,max=30"`
	Extras                  string          `json:"extras"                    validate:"omitempty,max=500"`
}

// ToModel builds a fresh PENDING booking. The slot list has already passed
// the slotids validation, so parsing cannot fail here.
func (c *CreateBookingRequest) ToModel() model.Booking {
	slotIDs, _ := shared.ParseSlotIDs(c.SlotIDs)

	return model.Booking{
		Locator:                 shared.GenerateLocator(),
		Price:                   c.Price,
		Status:                  model.StatusPending,
		CustomerName:            c.CustomerName,
		CustomerTelephoneNumber: c.CustomerTelephoneNumber,
		Extras:                  c.Extras,
		SlotIDs:                 slotIDs,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type GetBookingRequest struct {
	BookingID            int64 `json:"booking_id" validate:"required,gt=0"`
	GenerateNewSessionID bool  `json:"generate_new_session_id"`
}

func (g *GetBookingRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	if id, err := strconv.ParseInt(query.Get(constant.RequestParamBookingID), 10, 64); err == nil {
		g.BookingID = id
	}

	generate, _ := strconv.ParseBool(query.Get("generate_new_session_id"))
	g.GenerateNewSessionID = generate
}

type SessionRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

func (s *SessionRequest) FromRequest(r *http.Request) {
	s.SessionID = r.URL.Query().Get(constant.RequestParamSessionID)
}

type BookingResponse struct {
	ID                      int64           `json:"id"`
	Locator                 string          `json:"locator"`
	Price                   decimal.Decimal `json:"price"`
	Status                  string          `json:"status"`
	SessionID               string          `json:"session_id"`
	CustomerName            string          `json:"customer_name"`
	CustomerTelephoneNumber string          `json:"customer_telephone_number"`
	CustomerEmail           string          `json:"customer_email"`
	Extras                  string          `json:"extras"`
	BoatID                  int64           `json:"boat_id"`
	SlotIDs                 []int64         `json:"slot_ids,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Locator = model.Locator
	r.Price = model.Price
	r.Status = string(model.Status)
	r.SessionID = model.SessionID.String
	r.CustomerName = model.CustomerName
	r.CustomerTelephoneNumber = model.CustomerTelephoneNumber
	r.CustomerEmail = model.CustomerEmail.String
	r.Extras = model.Extras
	r.BoatID = model.BoatID
	r.SlotIDs = model.SlotIDs
	r.Metadata.FromModel(model.Metadata)
}

// BookingPaymentResponse is returned once a payment settles; it carries the
// boat so the thank-you page can render it without a second round trip.
type BookingPaymentResponse struct {
	Booking BookingResponse      `json:"booking"`
	Boat    boatDto.BoatResponse `json:"boat"`
}
