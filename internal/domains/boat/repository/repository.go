package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"boatsandjoy/infras/otel"
	"boatsandjoy/infras/postgres"
	"boatsandjoy/internal/domains/boat/model"
	gDto "boatsandjoy/shared/dto"
	gRepo "boatsandjoy/shared/repository"
)

// Boats is a read-only lookup over the fleet. Boats are managed out of band
// (admin tooling); this service never mutates them.
type Boats interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Boat, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Boat, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type boatsImpl struct {
	gRepo.Repository[model.Boat]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Boats {
	return &boatsImpl{
		Repository: gRepo.NewRepository[model.Boat](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
