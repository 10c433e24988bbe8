package boat

import (
	"net/http"
	"strconv"

	"boatsandjoy/infras/otel"
	"boatsandjoy/internal/domains/boat/model"
	"boatsandjoy/internal/domains/boat/service"
	"boatsandjoy/shared/constant"
	gDto "boatsandjoy/shared/dto"
	"boatsandjoy/shared/failure"
	"boatsandjoy/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Boat
	otel    otel.Otel
}

func New(service service.Boat, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/boats", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBoats)
		routerGroup.Get("/{id}", handler.GetBoatByID)
		routerGroup.Get("/{id}/slots", handler.GetBoatSlots)
	})
}

// GetBoats lists the fleet.
// @Summary Get all boats
// @Description Retrieve all active boats with pagination.
// @Tags Boat
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetBoatsResponse] "List of boats"
// @Failure 500 {object} response.Error
// @Router /v1/boats [get]
func (handler *Handler) GetBoats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBoats")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}

	boats, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get boats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, boats)
}

// GetBoatByID retrieves a single boat.
// @Summary Get a boat by ID
// @Description Retrieve a boat by its unique identifier.
// @Tags Boat
// @Accept json
// @Produce json
// @Param id path int true "Boat ID"
// @Success 200 {object} response.Data[dto.BoatResponse] "Boat details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/boats/{id} [get]
func (handler *Handler) GetBoatByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBoatByID")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil || id <= 0 {
		response.WithError(w, failure.BadRequestFromString("id must be a positive integer"))

		return
	}

	boat, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get boat")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, boat)
}

// GetBoatSlots lists the bookable slots of a boat for one day.
// @Summary Get boat slots
// @Description Retrieve the slots of a boat for a given day (YYYY-MM-DD).
// @Tags Boat
// @Accept json
// @Produce json
// @Param id path int true "Boat ID"
// @Param day query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetSlotsResponse] "Slots"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/boats/{id}/slots [get]
func (handler *Handler) GetBoatSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBoatSlots")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil || id <= 0 {
		response.WithError(w, failure.BadRequestFromString("id must be a positive integer"))

		return
	}

	day := r.URL.Query().Get(constant.RequestParamDay)

	slots, err := handler.service.GetSlots(ctx, id, day)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get boat slots")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, slots)
}
