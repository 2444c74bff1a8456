package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepo "frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (dto.BookingResponse, error)
	GetArrivalsToday(ctx context.Context) (dto.GetBookingsResponse, error)
	GetDeparturesToday(ctx context.Context) (dto.GetBookingsResponse, error)
	CheckIn(ctx context.Context, id string) (dto.BookingResponse, error)
	CheckOut(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepo.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Booking, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// Create inserts a booking without checking that the referenced room or guest
// exists. References are the caller's responsibility and lookups on a dangling
// reference return empty results rather than failing.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking timestamps")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid timestamp format: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, constant.CacheKeyDashboard)
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

// Update applies a partial merge. The status field is intentionally accepted
// without transition sequencing so callers can keep issuing the original
// two-call booking/room updates; the check-in and check-out operations are the
// validated path.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := shared.TransformFields(req, user)
	if len(updatedFields) == 2 {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return res, fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, constant.CacheKeyDashboard)
	}()

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get updated booking")

		return res, fmt.Errorf("failed to get updated booking: %w", err)
	}

	res.FromModel(booking)

	return res, nil
}

// GetArrivalsToday lists bookings whose check-in falls inside the half-open
// window [today 00:00, tomorrow 00:00) in the application timezone.
func (s *serviceImpl) GetArrivalsToday(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetArrivalsToday")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.getTodayWindow(ctx, model.FieldCheckIn)
	if err != nil {
		log.Error().Err(err).Msg("failed to get today's arrivals")

		return res, fmt.Errorf("failed to get today's arrivals: %w", err)
	}

	return res, nil
}

// GetDeparturesToday lists bookings whose check-out falls inside the same
// half-open window as GetArrivalsToday.
func (s *serviceImpl) GetDeparturesToday(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDeparturesToday")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.getTodayWindow(ctx, model.FieldCheckOut)
	if err != nil {
		log.Error().Err(err).Msg("failed to get today's departures")

		return res, fmt.Errorf("failed to get today's departures: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) getTodayWindow(ctx context.Context, field string) (res dto.GetBookingsResponse, err error) {
	now := timezone.Now()
	start := timezone.StartOfDay(now)
	end := timezone.StartOfDay(now.AddDate(0, 0, 1))

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: field, Operator: gDto.FilterOperatorGreaterEq, Value: start},
			gDto.Filter{Field: field, Operator: gDto.FilterOperatorLess, Value: end},
		},
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		return res, fmt.Errorf("failed to scan bookings: %w", err)
	}

	res.FromModels(models, len(models), 0)

	return res, nil
}

// CheckIn moves a confirmed booking to checked_in and marks the referenced
// room occupied. The two writes are sequenced, not atomic: the booking write
// lands first and stays authoritative if the room write fails.
func (s *serviceImpl) CheckIn(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckInBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.transition(ctx, id, model.StatusCheckedIn, roomModel.StatusOccupied)
}

// CheckOut moves a checked_in booking to checked_out and releases the room.
func (s *serviceImpl) CheckOut(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOutBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.transition(ctx, id, model.StatusCheckedOut, roomModel.StatusAvailable)
}

// Cancel voids a confirmed or checked_in booking. The room is released only
// when the guest had already checked in; a cancelled reservation that never
// arrived leaves the room untouched.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.transition(ctx, id, model.StatusCancelled, roomModel.StatusAvailable)
}

func (s *serviceImpl) transition(ctx context.Context, id, bookingStatus, roomStatus string) (res dto.BookingResponse, err error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if !booking.CanTransitionTo(bookingStatus) {
		return res, failure.Conflict(fmt.Sprintf("booking cannot move from %s to %s", booking.Status, bookingStatus)) // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, statusPatch(model.FieldStatus, bookingStatus, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	touchRoom := bookingStatus != model.StatusCancelled || booking.Status == model.StatusCheckedIn
	if touchRoom {
		roomFilter := shared.FilterByID(booking.RoomID, roomModel.FieldID)

		if err = s.roomRepo.Update(ctx, statusPatch(roomModel.FieldStatus, roomStatus, user), roomFilter); err != nil {
			log.Error().Err(err).
				Str("booking_id", id).
				Str("room_id", booking.RoomID).
				Msg("booking status applied but room status update failed")

			return res, fmt.Errorf("booking is %s but room status update failed: %w", bookingStatus, err)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, constant.CacheKeyDashboard)
	}()

	booking, err = s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get updated booking")

		return res, fmt.Errorf("failed to get updated booking: %w", err)
	}

	res.FromModel(booking)

	return res, nil
}

func statusPatch(field, status, user string) map[string]any {
	return map[string]any{
		field:                    status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}
}
