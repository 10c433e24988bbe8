package repository

//go:generate go run go.uber.org/mock/mockgen -source=./slots.go -destination=../mocks/slots_mock.go -package=mocks

import (
	"context"

	"boatsandjoy/infras/otel"
	"boatsandjoy/infras/postgres"
	"boatsandjoy/internal/domains/boat/model"
	gDto "boatsandjoy/shared/dto"
	gRepo "boatsandjoy/shared/repository"
)

type Slots interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Slot, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type slotsImpl struct {
	gRepo.Repository[model.Slot]
	db   *postgres.Connection
	otel otel.Otel
}

func NewSlots(db *postgres.Connection, otel otel.Otel) Slots {
	return &slotsImpl{
		Repository: gRepo.NewRepository[model.Slot](model.SlotEntityName, model.SlotTableName, model.SlotFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
