package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	maintenanceMocks "frontdesk/internal/domains/maintenance/mocks"
	"frontdesk/internal/domains/maintenance/model"
	"frontdesk/internal/domains/maintenance/model/dto"
	"frontdesk/internal/domains/maintenance/service"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

func newMaintenanceRequest(id, status string) model.MaintenanceRequest {
	return model.MaintenanceRequest{
		ID:          id,
		RoomID:      "room-1",
		Type:        model.TypeRepair,
		Priority:    model.PriorityHigh,
		Description: "Leaking shower head",
		Status:      status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func TestMaintenanceService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := maintenanceMocks.NewMockMaintenance(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name         string
		req          dto.CreateMaintenanceRequest
		setupMock    func()
		wantErr      bool
		wantPriority string
	}{
		{
			name: "opens pending with a medium priority by default",
			req: dto.CreateMaintenanceRequest{
				RoomID:      "room-1",
				Type:        model.TypeCleaning,
				Description: "Deep clean after checkout",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, request model.MaintenanceRequest) error {
						assert.Equal(t, model.StatusPending, request.Status)
						assert.Equal(t, model.PriorityMedium, request.Priority)
						assert.Nil(t, request.CompletedAt)
						return nil
					})
			},
			wantErr:      false,
			wantPriority: model.PriorityMedium,
		},
		{
			name: "urgent repair keeps its priority",
			req: dto.CreateMaintenanceRequest{
				RoomID:      "room-1",
				Type:        model.TypeRepair,
				Priority:    model.PriorityUrgent,
				Description: "Burst pipe",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr:      false,
			wantPriority: model.PriorityUrgent,
		},
		{
			name: "insert error",
			req: dto.CreateMaintenanceRequest{
				RoomID:      "room-1",
				Type:        model.TypeInspection,
				Description: "Annual safety inspection",
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
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantPriority, res.Priority)
			}
		})
	}
}

func TestMaintenanceService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := maintenanceMocks.NewMockMaintenance(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "success",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newMaintenanceRequest("maintenance-1", model.StatusPending), nil)
			},
			wantErr: false,
		},
		{
			name: "not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.MaintenanceRequest{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), "maintenance-1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "maintenance-1", res.ID)
			}
		})
	}
}

func TestMaintenanceService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := maintenanceMocks.NewMockMaintenance(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	staffID := "staff-1"

	tests := []struct {
		name      string
		req       dto.UpdateMaintenanceRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "assigning a technician moves the work along",
			req:  dto.UpdateMaintenanceRequest{StaffID: &staffID, Status: model.StatusInProgress},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, patch map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusInProgress, patch[model.FieldStatus])

						assigned, ok := patch[model.FieldStaffID].(*string)
						assert.True(t, ok)
						assert.Equal(t, "staff-1", *assigned)
						return nil
					})

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newMaintenanceRequest("maintenance-1", model.StatusInProgress), nil)
			},
			wantErr: false,
		},
		{
			name:      "empty update request",
			req:       dto.UpdateMaintenanceRequest{},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown request",
			req:  dto.UpdateMaintenanceRequest{Status: model.StatusInProgress},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Update(ctx, tt.req, "maintenance-1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.StatusInProgress, res.Status)
			}
		})
	}
}

func TestMaintenanceService_Complete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := maintenanceMocks.NewMockMaintenance(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "completing stamps the finish time",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newMaintenanceRequest("maintenance-1", model.StatusInProgress), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, patch map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusCompleted, patch[model.FieldStatus])

						completedAt, ok := patch[model.FieldCompletedAt].(*time.Time)
						assert.True(t, ok)
						assert.False(t, completedAt.IsZero())
						return nil
					})

				completed := newMaintenanceRequest("maintenance-1", model.StatusCompleted)
				completedAt := timezone.Now()
				completed.CompletedAt = &completedAt

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completed, nil)
			},
			wantErr: false,
		},
		{
			name: "already completed",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newMaintenanceRequest("maintenance-1", model.StatusCompleted), nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "unknown request",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.MaintenanceRequest{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Complete(context.Background(), "maintenance-1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.StatusCompleted, res.Status)
				assert.NotNil(t, res.CompletedAt)
			}
		})
	}
}

func TestMaintenanceService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := maintenanceMocks.NewMockMaintenance(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.MaintenanceRequest{
			newMaintenanceRequest("maintenance-1", model.StatusPending),
			newMaintenanceRequest("maintenance-2", model.StatusInProgress),
		}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Len(t, res.Requests, 2)
}
