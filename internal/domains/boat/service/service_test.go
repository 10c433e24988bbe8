package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"boatsandjoy/config"
	"boatsandjoy/infras/otel/mocks"
	boatMocks "boatsandjoy/internal/domains/boat/mocks"
	"boatsandjoy/internal/domains/boat/model"
	"boatsandjoy/internal/domains/boat/model/dto"
	"boatsandjoy/internal/domains/boat/service"
	cacheMocks "boatsandjoy/shared/cache/mocks"
	gDto "boatsandjoy/shared/dto"
	"boatsandjoy/shared/failure"
)

type serviceMocks struct {
	repo  *boatMocks.MockBoats
	slots *boatMocks.MockSlots
	cache *cacheMocks.MockRedisCache
}

func newService(t *testing.T) (service.Boat, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := serviceMocks{
		repo:  boatMocks.NewMockBoats(ctrl),
		slots: boatMocks.NewMockSlots(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	svc := service.New(m.repo, m.slots, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func lolita() model.Boat {
	return model.Boat{
		ID:       3,
		Name:     "Lolita",
		Capacity: 8,
		Active:   true,
	}
}

func TestBoatService_Get(t *testing.T) {
	t.Run("returns boat from repository on cache miss", func(t *testing.T) {
		svc, m := newService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(lolita(), nil)
		m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).Return(nil).AnyTimes()

		res, err := svc.Get(context.Background(), 3)
		require.NoError(t, err)

		assert.Equal(t, int64(3), res.ID)
		assert.Equal(t, "Lolita", res.Name)
	})

	t.Run("serves cached boat without hitting the repository", func(t *testing.T) {
		svc, m := newService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, ok := value.(*dto.BoatResponse)
				require.True(t, ok)

				res.ID = 3
				res.Name = "Lolita"

				return nil
			})

		res, err := svc.Get(context.Background(), 3)
		require.NoError(t, err)

		assert.Equal(t, "Lolita", res.Name)
	})

	t.Run("unknown boat is not found", func(t *testing.T) {
		svc, m := newService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Boat{}, nil)

		_, err := svc.Get(context.Background(), 99)
		require.Error(t, err)

		assert.True(t, failure.Is(err, http.StatusNotFound))
	})
}

func TestBoatService_GetAll(t *testing.T) {
	t.Run("returns boats with pagination metadata", func(t *testing.T) {
		svc, m := newService(t)

		params := gDto.QueryParams{Page: 1, Limit: 10}

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError).Times(2)
		m.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		m.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Boat{lolita()}, nil)
		m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).Return(nil).AnyTimes()

		res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})
		require.NoError(t, err)

		require.Len(t, res.Boats, 1)
		assert.Equal(t, "Lolita", res.Boats[0].Name)
		assert.Equal(t, 1, res.TotalData)
	})
}

func TestBoatService_GetSlots(t *testing.T) {
	slot := model.Slot{
		ID:       42,
		BoatID:   3,
		Day:      time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		FromHour: "10:00",
		ToHour:   "14:00",
		Price:    decimal.RequireFromString("50.00"),
	}

	tests := []struct {
		name      string
		boatID    int64
		day       string
		setupMock func(m serviceMocks)
		wantErr   bool
		wantCode  int
		wantSlots int
	}{
		{
			name:   "returns slots for the boat and day",
			boatID: 3,
			day:    "2026-06-01",
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
				m.slots.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Slot{slot}, nil)
				m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).Return(nil).AnyTimes()
			},
			wantSlots: 1,
		},
		{
			name:      "malformed day is rejected",
			boatID:    3,
			day:       "01/06/2026",
			setupMock: func(serviceMocks) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "unknown boat is not found",
			boatID: 99,
			day:    "2026-06-01",
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			res, err := svc.GetSlots(context.Background(), tt.boatID, tt.day)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, failure.Is(err, tt.wantCode))

				return
			}

			require.NoError(t, err)
			require.Len(t, res.Slots, tt.wantSlots)
			assert.Equal(t, "2026-06-01", res.Slots[0].Day)
			assert.Equal(t, "10:00", res.Slots[0].FromHour)
		})
	}
}
