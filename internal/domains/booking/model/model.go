package model

import (
	"database/sql"

	"boatsandjoy/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	SlotsTableName = "booking_slots"

	FieldID                      = "id"
	FieldLocator                 = "locator"
	FieldPrice                   = "price"
	FieldStatus                  = "status"
	FieldSessionID               = "session_id"
	FieldCustomerName            = "customer_name"
	FieldCustomerTelephoneNumber = "customer_telephone_number"
	FieldCustomerEmail           = "customer_email"
	FieldExtras                  = "extras"
	FieldBoatID                  = "boat_id"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusError     BookingStatus = "error"
)

// Terminal reports whether the status admits no further transition. Paid and
// errored bookings stay that way; repeated gateway callbacks are no-ops.
func (s BookingStatus) Terminal() bool {
	return s == StatusConfirmed || s == StatusError
}

type Booking struct {
	ID                      int64           `db:"id"`
	Locator                 string          `db:"locator"`
	Price                   decimal.Decimal `db:"price"`
	Status                  BookingStatus   `db:"status"`
	SessionID               sql.NullString  `db:"session_id"`
	CustomerName            string          `db:"customer_name"`
	CustomerTelephoneNumber string          `db:"customer_telephone_number"`
	CustomerEmail           sql.NullString  `db:"customer_email"`
	Extras                  string          `db:"extras"`
	BoatID                  int64           `db:"boat_id"`
	SlotIDs                 []int64         `db:"-"`
	model.Metadata
}

// PurchaseDetails describes the single line item sent to the payment
// provider when a checkout session is opened. It is computed from the booked
// slots and never persisted.
type PurchaseDetails struct {
	Name        string
	Description string
	Amount      decimal.Decimal
	Currency    string
}

// PaymentEvent is a gateway callback after signature verification. Settled
// means the provider confirmed the money; everything else that is terminal on
// the provider side maps to the error path.
type PaymentEvent struct {
	Type          string
	SessionID     string
	CustomerEmail string
	Settled       bool
}
