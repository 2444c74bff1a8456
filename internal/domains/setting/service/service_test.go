package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	settingMocks "frontdesk/internal/domains/setting/mocks"
	"frontdesk/internal/domains/setting/model"
	"frontdesk/internal/domains/setting/model/dto"
	settingRepository "frontdesk/internal/domains/setting/repository"
	"frontdesk/internal/domains/setting/service"
	"frontdesk/shared/cache"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

func newSetting(id, key string, value json.RawMessage) model.Setting {
	return model.Setting{
		ID:    id,
		Key:   key,
		Value: value,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func TestSettingService_GetByKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := settingMocks.NewMockSetting(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
		wantKey   string
	}{
		{
			name: "cache hit skips the store",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss falls back and warms the cache",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (model.Setting, error) {
						keyFilter, ok := filter.Filters[0].(gDto.Filter)
						assert.True(t, ok)
						assert.Equal(t, model.FieldKey, keyFilter.Field)
						assert.Equal(t, "property.profile", keyFilter.Value)
						return newSetting("st-1", "property.profile", json.RawMessage(`{"name":"Frontdesk Inn"}`)), nil
					})

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
			wantKey: "property.profile",
		},
		{
			name: "unknown key",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Setting{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetByKey(context.Background(), "property.profile")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)

				if tt.wantKey != "" {
					assert.Equal(t, tt.wantKey, res.Key)
				}
			}
		})
	}
}

func TestSettingService_Upsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := settingMocks.NewMockSetting(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	value := json.RawMessage(`{"checkin_from":"15:00"}`)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "first write inserts",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Setting{}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, setting model.Setting) error {
						assert.Equal(t, "booking.policy", setting.Key)
						assert.NotEmpty(t, setting.ID)
						assert.JSONEq(t, string(value), string(setting.Value))
						return nil
					})

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newSetting("st-1", "booking.policy", value), nil)
			},
			wantErr: false,
		},
		{
			name: "second write replaces the value",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newSetting("st-1", "booking.policy", json.RawMessage(`{}`)), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, patch map[string]any, _ gDto.FilterGroup) error {
						raw, ok := patch[model.FieldValue].(json.RawMessage)
						assert.True(t, ok)
						assert.JSONEq(t, string(value), string(raw))
						assert.Equal(t, "test-user-id", patch[constant.FieldModifiedBy])
						return nil
					})

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newSetting("st-1", "booking.policy", value), nil)
			},
			wantErr: false,
		},
		{
			name: "insert error",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Setting{}, nil)

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
			res, err := svc.Upsert(ctx, dto.UpsertSettingRequest{Value: value}, "booking.policy")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "booking.policy", res.Key)
			}
		})
	}
}

func TestSettingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := settingMocks.NewMockSetting(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Setting{
			newSetting("st-1", "property.profile", json.RawMessage(`{}`)),
			newSetting("st-2", "booking.policy", json.RawMessage(`{}`)),
		}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Len(t, res.Settings, 2)
}

// staleCache keeps serving the last saved entry until it is deleted,
// the way the real redis cache does between invalidations.
type staleCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newStaleCache() *staleCache {
	return &staleCache{entries: make(map[string][]byte)}
}

func (c *staleCache) Save(_ context.Context, key string, value any, _ int) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = raw

	return nil
}

func (c *staleCache) Get(_ context.Context, key string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, ok := c.entries[key]
	if !ok {
		return cache.Nil
	}

	return json.Unmarshal(raw, value)
}

func (c *staleCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)

	return nil
}

func (c *staleCache) Clear(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]byte)

	return nil
}

// A GET issued immediately after a PUT must see the written value even
// when the previous value was already cached.
func TestSettingService_ReadAfterUpsertServesNewValue(t *testing.T) {
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	repo := settingRepository.New(mockOtel)
	svc := service.New(repo, cfg, newStaleCache(), mockOtel)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	_, err := svc.Upsert(ctx, dto.UpsertSettingRequest{Value: json.RawMessage(`{"checkin_from":"14:00"}`)}, "booking.policy")
	assert.NoError(t, err)

	// Prime the cache with the first value.
	res, err := svc.GetByKey(ctx, "booking.policy")
	assert.NoError(t, err)
	assert.JSONEq(t, `{"checkin_from":"14:00"}`, string(res.Value))

	_, err = svc.Upsert(ctx, dto.UpsertSettingRequest{Value: json.RawMessage(`{"checkin_from":"15:00"}`)}, "booking.policy")
	assert.NoError(t, err)

	res, err = svc.GetByKey(ctx, "booking.policy")
	assert.NoError(t, err)
	assert.JSONEq(t, `{"checkin_from":"15:00"}`, string(res.Value))
}
