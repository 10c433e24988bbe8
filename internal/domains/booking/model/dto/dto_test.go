package dto_test

import (
	"database/sql"
	"net/http/httptest"
	"testing"

	"boatsandjoy/internal/domains/booking/model"
	"boatsandjoy/internal/domains/booking/model/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingRequestToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		Price:                   decimal.RequireFromString("50.00"),
		SlotIDs:                 "42, 43",
		CustomerName:            "Jane",
		CustomerTelephoneNumber: "+34600000000",
		Extras:                  "champagne",
	}

	booking := req.ToModel()

	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Len(t, booking.Locator, 8)
	assert.Equal(t, []int64{42, 43}, booking.SlotIDs)
	assert.True(t, booking.Price.Equal(decimal.RequireFromString("50.00")))
	assert.False(t, booking.SessionID.Valid)
	assert.False(t, booking.CreatedAt.IsZero())
}

func TestGetBookingRequestFromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/bookings/payment?booking_id=7&generate_new_session_id=true", nil)

	var req dto.GetBookingRequest
	req.FromRequest(r)

	assert.Equal(t, int64(7), req.BookingID)
	assert.True(t, req.GenerateNewSessionID)
}

func TestGetBookingRequestFromRequestInvalidID(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/bookings/payment?booking_id=abc", nil)

	var req dto.GetBookingRequest
	req.FromRequest(r)

	assert.Zero(t, req.BookingID)
	assert.False(t, req.GenerateNewSessionID)
}

func TestBookingResponseFromModel(t *testing.T) {
	booking := model.Booking{
		ID:                      9,
		Locator:                 "AB12CD34",
		Price:                   decimal.RequireFromString("100.00"),
		Status:                  model.StatusConfirmed,
		SessionID:               sql.NullString{String: "sess_1", Valid: true},
		CustomerName:            "Jane",
		CustomerTelephoneNumber: "+34600000000",
		CustomerEmail:           sql.NullString{String: "a@b.com", Valid: true},
		BoatID:                  3,
		SlotIDs:                 []int64{42},
	}

	var res dto.BookingResponse
	res.FromModel(booking)

	require.Equal(t, int64(9), res.ID)
	assert.Equal(t, "confirmed", res.Status)
	assert.Equal(t, "sess_1", res.SessionID)
	assert.Equal(t, "a@b.com", res.CustomerEmail)
	assert.Equal(t, []int64{42}, res.SlotIDs)
}

func TestBookingResponseFromModelNullFields(t *testing.T) {
	booking := model.Booking{ID: 9, Status: model.StatusPending}

	var res dto.BookingResponse
	res.FromModel(booking)

	assert.Empty(t, res.SessionID)
	assert.Empty(t, res.CustomerEmail)
}
