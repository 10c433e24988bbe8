package dto

import (
	"boatsandjoy/internal/domains/boat/model"
	"boatsandjoy/shared"
	gDto "boatsandjoy/shared/dto"

	"github.com/shopspring/decimal"
)

type BoatResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
	Active      bool   `json:"active"`
	gDto.Metadata
}

func (r *BoatResponse) FromModel(model model.Boat) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Capacity = model.Capacity
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetBoatsResponse struct {
	Boats     []BoatResponse `json:"boats"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetBoatsResponse) FromModels(models []model.Boat, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Boats = make([]BoatResponse, len(models))
	for i, mod := range models {
		r.Boats[i].FromModel(mod)
	}
}

type SlotResponse struct {
	ID       int64           `json:"id"`
	BoatID   int64           `json:"boat_id"`
	Day      string          `json:"day"`
	FromHour string          `json:"from_hour"`
	ToHour   string          `json:"to_hour"`
	Price    decimal.Decimal `json:"price"`
}

func (r *SlotResponse) FromModel(model model.Slot) {
	r.ID = model.ID
	r.BoatID = model.BoatID
	r.Day = model.Day.Format("2006-01-02")
	r.FromHour = model.FromHour
	r.ToHour = model.ToHour
	r.Price = model.Price
}

type GetSlotsResponse struct {
	Slots []SlotResponse `json:"slots"`
}

func (r *GetSlotsResponse) FromModels(models []model.Slot) {
	r.Slots = make([]SlotResponse, len(models))
	for i, mod := range models {
		r.Slots[i].FromModel(mod)
	}
}
