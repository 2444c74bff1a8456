package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	bookingRepository "frontdesk/internal/domains/booking/repository"
	"frontdesk/internal/domains/booking/service"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepository "frontdesk/internal/domains/room/repository"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

func newBooking(id, status string) model.Booking {
	return model.Booking{
		ID:          id,
		RoomID:      "room-1",
		GuestID:     "guest-1",
		CheckIn:     timezone.Now(),
		CheckOut:    timezone.Now().AddDate(0, 0, 2),
		Adults:      2,
		TotalAmount: decimal.RequireFromString("220.00"),
		Status:      status,
		Channel:     "direct",
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name       string
		req        dto.CreateBookingRequest
		setupMock  func()
		wantErr    bool
		wantCode   int
		wantStatus string
	}{
		{
			name: "successful creation defaults to confirmed",
			req: dto.CreateBookingRequest{
				RoomID:      "room-1",
				GuestID:     "guest-1",
				CheckIn:     "2026-03-10T15:00:00Z",
				CheckOut:    "2026-03-12T11:00:00Z",
				Adults:      2,
				TotalAmount: decimal.RequireFromString("220.00"),
				Channel:     "direct",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, model.StatusConfirmed, booking.Status)
						assert.NotEmpty(t, booking.ID)
						assert.Equal(t, "test-user-id", booking.CreatedBy)
						return nil
					})
			},
			wantErr:    false,
			wantStatus: model.StatusConfirmed,
		},
		{
			name: "explicit status is kept",
			req: dto.CreateBookingRequest{
				RoomID:      "room-1",
				GuestID:     "guest-1",
				CheckIn:     "2026-03-10T15:00:00Z",
				CheckOut:    "2026-03-12T11:00:00Z",
				TotalAmount: decimal.RequireFromString("220.00"),
				Status:      model.StatusCheckedIn,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr:    false,
			wantStatus: model.StatusCheckedIn,
		},
		{
			name: "invalid timestamp",
			req: dto.CreateBookingRequest{
				RoomID:      "room-1",
				GuestID:     "guest-1",
				CheckIn:     "2026-03-10",
				CheckOut:    "2026-03-12T11:00:00Z",
				TotalAmount: decimal.RequireFromString("220.00"),
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "repository error",
			req: dto.CreateBookingRequest{
				RoomID:      "room-1",
				GuestID:     "guest-1",
				CheckIn:     "2026-03-10T15:00:00Z",
				CheckOut:    "2026-03-12T11:00:00Z",
				TotalAmount: decimal.RequireFromString("220.00"),
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("insert error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantStatus, res.Status)
				assert.NotEmpty(t, res.ID)
			}
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		params    gDto.QueryParams
		setupMock func()
		wantErr   bool
		wantTotal int
		wantPages int
	}{
		{
			name:   "successful get all",
			params: gDto.QueryParams{Page: 1, Limit: 10},
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(25, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{newBooking("bk-1", model.StatusConfirmed)}, nil)
			},
			wantErr:   false,
			wantTotal: 25,
			wantPages: 3,
		},
		{
			name:   "count error",
			params: gDto.QueryParams{Page: 1, Limit: 10},
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
		{
			name:   "get all error",
			params: gDto.QueryParams{Page: 1, Limit: 10},
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("get all error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAll(context.Background(), tt.params, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, res.TotalData)
				assert.Equal(t, tt.wantPages, res.TotalPage)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newBooking("bk-1", model.StatusConfirmed), nil)
			},
			wantErr: false,
		},
		{
			name: "not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("get error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), "bk-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "bk-1", res.ID)
			}
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel)

	adults := 3

	tests := []struct {
		name      string
		req       dto.UpdateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			req:  dto.UpdateBookingRequest{Adults: &adults},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, patch map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, 3, patch[model.FieldAdults])
						assert.Equal(t, "test-user-id", patch[constant.FieldModifiedBy])
						return nil
					})

				updated := newBooking("bk-1", model.StatusConfirmed)
				updated.Adults = 3

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(updated, nil)
			},
			wantErr: false,
		},
		{
			name:      "empty update is rejected",
			req:       dto.UpdateBookingRequest{},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown booking",
			req:  dto.UpdateBookingRequest{Adults: &adults},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "update error",
			req:  dto.UpdateBookingRequest{Adults: &adults},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Update(ctx, tt.req, "bk-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 3, res.Adults)
			}
		})
	}
}

func TestBookingService_GetArrivalsToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel)

	var captured gDto.FilterGroup

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) ([]model.Booking, error) {
			captured = filter
			return []model.Booking{
				newBooking("bk-1", model.StatusConfirmed),
				newBooking("bk-2", model.StatusCancelled),
			}, nil
		})

	res, err := svc.GetArrivalsToday(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Len(t, res.Bookings, 2)

	// The window is half-open on the check-in field: midnight today inclusive,
	// midnight tomorrow exclusive.
	assert.Equal(t, gDto.FilterGroupOperatorAnd, captured.Operator)
	assert.Len(t, captured.Filters, 2)

	lower, ok := captured.Filters[0].(gDto.Filter)
	assert.True(t, ok)
	assert.Equal(t, model.FieldCheckIn, lower.Field)
	assert.Equal(t, gDto.FilterOperatorGreaterEq, lower.Operator)

	upper, ok := captured.Filters[1].(gDto.Filter)
	assert.True(t, ok)
	assert.Equal(t, model.FieldCheckIn, upper.Field)
	assert.Equal(t, gDto.FilterOperatorLess, upper.Operator)

	start, ok := lower.Value.(time.Time)
	assert.True(t, ok)
	end, ok := upper.Value.(time.Time)
	assert.True(t, ok)

	assert.Equal(t, timezone.StartOfDay(start), start)
	assert.Equal(t, start.AddDate(0, 0, 1), end)
}

func TestBookingService_GetDeparturesToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel)

	var captured gDto.FilterGroup

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) ([]model.Booking, error) {
			captured = filter
			return []model.Booking{}, nil
		})

	res, err := svc.GetDeparturesToday(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, res.TotalData)

	lower, ok := captured.Filters[0].(gDto.Filter)
	assert.True(t, ok)
	assert.Equal(t, model.FieldCheckOut, lower.Field)
}

func TestBookingService_CheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "confirmed booking checks in and occupies the room",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newBooking("bk-1", model.StatusConfirmed), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, patch map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusCheckedIn, patch[model.FieldStatus])
						return nil
					})

				mockRoomRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, patch map[string]any, filter gDto.FilterGroup) error {
						assert.Equal(t, roomModel.StatusOccupied, patch[roomModel.FieldStatus])

						idFilter, ok := filter.Filters[0].(gDto.Filter)
						assert.True(t, ok)
						assert.Equal(t, "room-1", idFilter.Value)
						return nil
					})

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newBooking("bk-1", model.StatusCheckedIn), nil)
			},
			wantErr: false,
		},
		{
			name: "already checked in",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newBooking("bk-1", model.StatusCheckedIn), nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "cancelled booking cannot check in",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newBooking("bk-1", model.StatusCancelled), nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "unknown booking",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "room update failure surfaces after the booking write",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newBooking("bk-1", model.StatusConfirmed), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockRoomRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("room update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.CheckIn(ctx, "bk-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.StatusCheckedIn, res.Status)
			}
		})
	}
}

func TestBookingService_CheckOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "checked in booking checks out and releases the room",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newBooking("bk-1", model.StatusCheckedIn), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockRoomRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, patch map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, roomModel.StatusAvailable, patch[roomModel.FieldStatus])
						return nil
					})

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newBooking("bk-1", model.StatusCheckedOut), nil)
			},
			wantErr: false,
		},
		{
			name: "cannot check out before checking in",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newBooking("bk-1", model.StatusConfirmed), nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.CheckOut(ctx, "bk-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.StatusCheckedOut, res.Status)
			}
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			// The guest never arrived, so the room keeps whatever status it
			// had. No room repository expectation is set on purpose.
			name: "cancel before arrival leaves the room alone",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newBooking("bk-1", model.StatusConfirmed), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newBooking("bk-1", model.StatusCancelled), nil)
			},
			wantErr: false,
		},
		{
			name: "cancel after check in releases the room",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newBooking("bk-1", model.StatusCheckedIn), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockRoomRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, patch map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, roomModel.StatusAvailable, patch[roomModel.FieldStatus])
						return nil
					})

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newBooking("bk-1", model.StatusCancelled), nil)
			},
			wantErr: false,
		},
		{
			name: "checked out booking cannot be cancelled",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newBooking("bk-1", model.StatusCheckedOut), nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Cancel(ctx, "bk-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.StatusCancelled, res.Status)
			}
		})
	}
}

// The hotel day is the half-open window [today 00:00, tomorrow 00:00) in
// the application timezone. A check-in at midnight belongs to today; one
// second before midnight belongs to yesterday, and tomorrow's midnight to
// tomorrow.
func TestBookingService_ArrivalsTodayMidnightBoundaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	bookings := bookingRepository.New(mockOtel)
	rooms := roomRepository.New(mockOtel)

	svc := service.New(bookings, rooms, cfg, mockCache, mockOtel)

	ctx := context.Background()
	midnight := timezone.StartOfDay(timezone.Now())

	seed := []struct {
		id      string
		checkIn time.Time
	}{
		{"bk-midnight", midnight},
		{"bk-last-night", midnight.Add(-time.Second)},
		{"bk-tomorrow", midnight.AddDate(0, 0, 1)},
	}

	for _, s := range seed {
		booking := newBooking(s.id, model.StatusConfirmed)
		booking.CheckIn = s.checkIn
		booking.CheckOut = s.checkIn.AddDate(0, 0, 2)

		assert.NoError(t, bookings.Insert(ctx, booking))
	}

	arrivals, err := svc.GetArrivalsToday(ctx)

	assert.NoError(t, err)
	assert.Len(t, arrivals.Bookings, 1)
	assert.Equal(t, "bk-midnight", arrivals.Bookings[0].ID)

	// The same window drives departures off the check-out field.
	departures, err := svc.GetDeparturesToday(ctx)

	assert.NoError(t, err)
	assert.Empty(t, departures.Bookings)
}
