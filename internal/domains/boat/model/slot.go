package model

import (
	"time"

	"boatsandjoy/shared/model"

	"github.com/shopspring/decimal"
)

const (
	SlotTableName  = "slots"
	SlotEntityName = "slot"

	SlotFieldID       = "id"
	SlotFieldBoatID   = "boat_id"
	SlotFieldDay      = "day"
	SlotFieldFromHour = "from_hour"
	SlotFieldToHour   = "to_hour"
	SlotFieldPrice    = "price"
)

// Slot is a bookable time unit on a boat for a given day. Slots are owned by
// the availability side of the system; bookings only reference them.
type Slot struct {
	ID       int64           `db:"id"`
	BoatID   int64           `db:"boat_id"`
	Day      time.Time       `db:"day"`
	FromHour string          `db:"from_hour"`
	ToHour   string          `db:"to_hour"`
	Price    decimal.Decimal `db:"price"`
	model.Metadata
}
