package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/setting/model"
	"frontdesk/internal/domains/setting/model/dto"
	"frontdesk/internal/domains/setting/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
)

type Setting interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSettingsResponse, error)
	GetByKey(ctx context.Context, key string) (dto.SettingResponse, error)
	Upsert(ctx context.Context, req dto.UpsertSettingRequest, key string) (dto.SettingResponse, error)
}

type serviceImpl struct {
	repo  repository.Setting
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Setting, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Setting {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSettings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count settings")

		return res, fmt.Errorf("failed to count settings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get settings")

		return res, fmt.Errorf("failed to get settings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

// GetByKey reads a setting through the cache. Misses fall back to the store
// and warm the cache for the TTL window.
func (s *serviceImpl) GetByKey(ctx context.Context, key string) (res dto.SettingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSettingByKey")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(constant.CacheKeySetting, key)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		return res, nil
	}

	setting, err := s.repo.Get(ctx, shared.FilterByID(key, model.FieldKey))
	if err != nil {
		log.Error().Err(err).Msg("failed to get setting")

		return res, fmt.Errorf("failed to get setting: %w", err)
	}

	if setting.ID == constant.Empty {
		return res, failure.NotFound("setting not found") // nolint:wrapcheck
	}

	res.FromModel(setting)

	if cacheErr := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); cacheErr != nil {
		log.Error().Err(cacheErr).Str("key", key).Msg("failed to cache setting")
	}

	return res, nil
}

// Upsert writes a setting by its business key, creating the record on first
// write and replacing the value wholesale afterwards. The read and the
// insert are separate operations on the collection, so two concurrent first
// writes to the same key can both take the insert path.
func (s *serviceImpl) Upsert(ctx context.Context, req dto.UpsertSettingRequest, key string) (res dto.SettingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpsertSetting")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(key, model.FieldKey)

	existing, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get setting")

		return res, fmt.Errorf("failed to get setting: %w", err)
	}

	if existing.ID == constant.Empty {
		setting := req.ToModel(key, user)

		if err = s.repo.Insert(ctx, setting); err != nil {
			log.Error().Err(err).Msg("failed to create setting")

			return res, fmt.Errorf("failed to create setting: %w", err)
		}
	} else {
		updatedFields := map[string]any{
			model.FieldValue:         req.Value,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
			log.Error().Err(err).Msg("failed to update setting")

			return res, fmt.Errorf("failed to update setting: %w", err)
		}
	}

	// Dropped before returning so a read issued right after the write
	// never sees the previous value out of the cache.
	if cacheErr := s.cache.Delete(ctx, shared.BuildCacheKey(constant.CacheKeySetting, key)); cacheErr != nil {
		log.Error().Err(cacheErr).Str("key", key).Msg("failed to invalidate setting cache")
	}

	setting, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get upserted setting")

		return res, fmt.Errorf("failed to get upserted setting: %w", err)
	}

	res.FromModel(setting)

	return res, nil
}
