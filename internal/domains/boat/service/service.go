package service

import (
	"context"
	"fmt"
	"strconv"

	"boatsandjoy/config"
	"boatsandjoy/infras/otel"
	"boatsandjoy/internal/domains/boat/model"
	"boatsandjoy/internal/domains/boat/model/dto"
	"boatsandjoy/internal/domains/boat/repository"
	"boatsandjoy/shared"
	"boatsandjoy/shared/cache"
	"boatsandjoy/shared/constant"
	gDto "boatsandjoy/shared/dto"
	"boatsandjoy/shared/failure"
	"boatsandjoy/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBoat    = "boat:get"
	cacheGetAllBoat = "boat:gets"
	cacheCountBoat  = "boat:count"
	cacheGetSlots   = "boat:slots"
)

type Boat interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBoatsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.BoatResponse, error)
	GetSlots(ctx context.Context, boatID int64, day string) (dto.GetSlotsResponse, error)
}

type serviceImpl struct {
	repo  repository.Boats
	slots repository.Slots
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Boats, slots repository.Slots, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Boat {
	return &serviceImpl{
		repo:  repo,
		slots: slots,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBoatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBoat, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for boats")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count boats")

		return res, fmt.Errorf("failed to count boats: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get boats")

		return res, fmt.Errorf("failed to get boats: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save boats to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBoat, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for boat count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count boats")

		return res, fmt.Errorf("failed to count boats: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save boat count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BoatResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBoat, strconv.FormatInt(id, 10))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for boat")

		return res, nil
	}

	boat, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get boat")

		return res, fmt.Errorf("failed to get boat: %w", err)
	}

	if boat.ID == 0 {
		return res, failure.NotFound("boat") // nolint:wrapcheck
	}

	res.FromModel(boat)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save boat to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetSlots(ctx context.Context, boatID int64, day string) (res dto.GetSlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	parsedDay, err := timezone.Parse("2006-01-02", day)
	if err != nil {
		log.Error().Err(err).Str("day", day).Msg("invalid day")

		return res, failure.BadRequestFromString("day must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	exist, err := s.repo.Exist(ctx, shared.FilterByID(boatID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if boat exists")

		return res, fmt.Errorf("failed to check if boat exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("boat") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetSlots, strconv.FormatInt(boatID, 10), day)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for slots")

		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.SlotFieldBoatID,
				Value:    boatID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.SlotTableName,
			},
			gDto.Filter{
				Field:    model.SlotFieldDay,
				Value:    parsedDay.Format("2006-01-02"),
				Operator: gDto.FilterOperatorEq,
				Table:    model.SlotTableName,
			},
		},
	}

	params := gDto.QueryParams{SortBy: model.SlotFieldFromHour, SortDir: gDto.SortDirAsc}

	models, err := s.slots.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get slots")

		return res, fmt.Errorf("failed to get slots: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save slots to cache")
		}
	}()

	return res, nil
}
