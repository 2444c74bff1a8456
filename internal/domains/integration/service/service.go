package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	"frontdesk/internal/domains/integration/model/dto"
	settingModel "frontdesk/internal/domains/setting/model"
	settingDto "frontdesk/internal/domains/setting/model/dto"
	settingRepo "frontdesk/internal/domains/setting/repository"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
)

const (
	// provider labels the simulated channel manager in responses.
	provider = "channel-manager"

	// lastSyncKey is the settings key a sync run records itself under.
	lastSyncKey = "integration.last_sync"

	// syncIDPrefix marks externally assigned booking references.
	syncIDPrefix = "chm_"
)

// syncRecord is the payload persisted under lastSyncKey.
type syncRecord struct {
	SyncedAt string `json:"synced_at"`
	Count    int    `json:"count"`
}

type Integration interface {
	GetSyncStatus(ctx context.Context) (dto.SyncStatusResponse, error)
	Sync(ctx context.Context) (dto.SyncResponse, error)
}

// serviceImpl simulates a channel manager integration. There is no real
// upstream; a sync run stamps every unsynced booking with a generated
// external reference so the rest of the system can treat them as pushed.
type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	settingRepo settingRepo.Setting
	otel        otel.Otel
}

func New(bookingRepository bookingRepo.Booking, settingRepository settingRepo.Setting, otl otel.Otel) Integration {
	return &serviceImpl{
		bookingRepo: bookingRepository,
		settingRepo: settingRepository,
		otel:        otl,
	}
}

// nolint:wrapcheck
func (s *serviceImpl) GetSyncStatus(ctx context.Context) (res dto.SyncStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSyncStatus")
	defer scope.End()
	defer func() {
		scope.TraceIfError(err)
	}()

	res.Provider = provider

	res.TotalBookings, err = s.bookingRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		return res, failure.InternalError(err)
	}

	res.PendingBookings, err = s.bookingRepo.Count(ctx, unsyncedFilter())
	if err != nil {
		return res, failure.InternalError(err)
	}

	res.SyncedBookings = res.TotalBookings - res.PendingBookings

	record, found, err := s.lastSync(ctx)
	if err != nil {
		return res, failure.InternalError(err)
	}

	if found {
		res.LastSyncAt = &record.SyncedAt
	}

	scope.AddEvent("sync status assembled")

	return res, nil
}

// Sync stamps every booking without an external reference and records the
// run under the integration settings key. Bookings are authoritative; if
// recording the run fails the stamps stay and only the status endpoint's
// last sync timestamp goes missing.
//
// nolint:wrapcheck
func (s *serviceImpl) Sync(ctx context.Context) (res dto.SyncResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SyncBookings")
	defer scope.End()
	defer func() {
		scope.TraceIfError(err)
	}()

	unsynced, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, unsyncedFilter())
	if err != nil {
		return res, failure.InternalError(err)
	}

	now := timezone.Now()
	for _, booking := range unsynced {
		patch := map[string]any{
			bookingModel.FieldExternalSyncID: syncIDPrefix + uuid.NewString(),
			constant.FieldModifiedAt:         now,
			constant.FieldModifiedBy:         constant.SystemUser,
		}

		if err = s.bookingRepo.Update(ctx, patch, shared.FilterByID(booking.ID, bookingModel.FieldID)); err != nil {
			return res, failure.InternalError(err)
		}
	}

	res.Provider = provider
	res.Synced = len(unsynced)
	res.SyncedAt = timezone.Format(now, constant.DateFormat)

	if recordErr := s.recordSync(ctx, res.SyncedAt, res.Synced); recordErr != nil {
		log.Warn().Err(recordErr).Msg("[SyncBookings] Failed to record sync run")
	}

	scope.AddEvent("bookings synced")

	return res, nil
}

func (s *serviceImpl) lastSync(ctx context.Context) (record syncRecord, found bool, err error) {
	setting, err := s.settingRepo.Get(ctx, shared.FilterByID(lastSyncKey, settingModel.FieldKey))
	if err != nil {
		return record, false, fmt.Errorf("failed to read last sync record: %w", err)
	}

	if setting.ID == constant.Empty {
		return record, false, nil
	}

	if err = json.Unmarshal(setting.Value, &record); err != nil {
		return record, false, fmt.Errorf("failed to decode last sync record: %w", err)
	}

	return record, true, nil
}

func (s *serviceImpl) recordSync(ctx context.Context, syncedAt string, count int) error {
	value, err := json.Marshal(syncRecord{SyncedAt: syncedAt, Count: count})
	if err != nil {
		return fmt.Errorf("failed to encode sync record: %w", err)
	}

	filter := shared.FilterByID(lastSyncKey, settingModel.FieldKey)

	existing, err := s.settingRepo.Get(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to read last sync record: %w", err)
	}

	if existing.ID == constant.Empty {
		req := settingDto.UpsertSettingRequest{Value: value}

		if err = s.settingRepo.Insert(ctx, req.ToModel(lastSyncKey, constant.SystemUser)); err != nil {
			return fmt.Errorf("failed to insert sync record: %w", err)
		}

		return nil
	}

	patch := map[string]any{
		settingModel.FieldValue:  json.RawMessage(value),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: constant.SystemUser,
	}

	if err = s.settingRepo.Update(ctx, patch, filter); err != nil {
		return fmt.Errorf("failed to update sync record: %w", err)
	}

	return nil
}

// unsyncedFilter matches bookings that never received an external reference.
func unsyncedFilter() gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: bookingModel.FieldExternalSyncID, Operator: gDto.FilterOperatorEq, Value: constant.Empty},
		},
	}
}
