package service

import (
	"context"
	"math"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"frontdesk/config"
	"frontdesk/infras/otel"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	"frontdesk/internal/domains/dashboard/model/dto"
	maintenanceModel "frontdesk/internal/domains/maintenance/model"
	maintenanceRepo "frontdesk/internal/domains/maintenance/repository"
	roomRepo "frontdesk/internal/domains/room/repository"
	staffModel "frontdesk/internal/domains/staff/model"
	staffRepo "frontdesk/internal/domains/staff/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
)

type Dashboard interface {
	GetMetrics(ctx context.Context) (dto.DashboardMetricsResponse, error)
}

type serviceImpl struct {
	roomRepo        roomRepo.Room
	bookingRepo     bookingRepo.Booking
	maintenanceRepo maintenanceRepo.Maintenance
	staffRepo       staffRepo.Staff
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(
	roomRepository roomRepo.Room,
	bookingRepository bookingRepo.Booking,
	maintenanceRepository maintenanceRepo.Maintenance,
	staffRepository staffRepo.Staff,
	cfg *config.Config,
	cache cache.RedisCache,
	otl otel.Otel,
) Dashboard {
	return &serviceImpl{
		roomRepo:        roomRepository,
		bookingRepo:     bookingRepository,
		maintenanceRepo: maintenanceRepository,
		staffRepo:       staffRepository,
		cfg:             cfg,
		cache:           cache,
		otel:            otl,
	}
}

// GetMetrics assembles the landing page snapshot from the room, booking,
// maintenance and staff stores. The computed snapshot is cached and every
// write service invalidates the dashboard prefix, so a hit here is never
// staler than the last mutation.
//
// nolint:wrapcheck
func (s *serviceImpl) GetMetrics(ctx context.Context) (res dto.DashboardMetricsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDashboardMetrics")
	defer scope.End()
	defer func() {
		scope.TraceIfError(err)
	}()

	cacheKey := shared.BuildCacheKey(constant.CacheKeyDashboard, "metrics")
	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		scope.AddEvent("dashboard metrics served from cache")
		return res, nil
	}

	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		return res, failure.InternalError(err)
	}

	res.TotalRooms = len(rooms)
	res.RoomCounts.FromModels(rooms)
	if res.TotalRooms > 0 {
		res.OccupancyRate = int(math.Round(100 * float64(res.RoomCounts.Occupied) / float64(res.TotalRooms)))
	}

	// Arrivals double as the revenue basis, both read today's check ins.
	arrivals, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, todayWindow(bookingModel.FieldCheckIn))
	if err != nil {
		return res, failure.InternalError(err)
	}

	res.ArrivalsToday = len(arrivals)
	res.TodayRevenue = decimal.Zero
	for _, arrival := range arrivals {
		res.TodayRevenue = res.TodayRevenue.Add(arrival.TotalAmount)
	}

	res.DeparturesToday, err = s.bookingRepo.Count(ctx, todayWindow(bookingModel.FieldCheckOut))
	if err != nil {
		return res, failure.InternalError(err)
	}

	res.PendingMaintenance, err = s.maintenanceRepo.Count(ctx, shared.FilterByID(maintenanceModel.StatusPending, maintenanceModel.FieldStatus))
	if err != nil {
		return res, failure.InternalError(err)
	}

	activeFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: staffModel.FieldIsActive, Operator: gDto.FilterOperatorEq, Value: true},
		},
	}

	res.ActiveStaff, err = s.staffRepo.Count(ctx, activeFilter)
	if err != nil {
		return res, failure.InternalError(err)
	}

	if cacheErr := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); cacheErr != nil {
		log.Warn().Err(cacheErr).Msg("[GetDashboardMetrics] Failed to cache dashboard metrics")
	}

	scope.AddEvent("dashboard metrics computed")

	return res, nil
}

// todayWindow filters a date field to the current day, start inclusive
// and next midnight exclusive.
func todayWindow(field string) gDto.FilterGroup {
	now := timezone.Now()
	start := timezone.StartOfDay(now)
	end := timezone.StartOfDay(now.AddDate(0, 0, 1))

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: field, Operator: gDto.FilterOperatorGreaterEq, Value: start},
			gDto.Filter{Field: field, Operator: gDto.FilterOperatorLess, Value: end},
		},
	}
}
