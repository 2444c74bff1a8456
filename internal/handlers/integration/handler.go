package integration

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/integration/service"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/response"
)

type Handler struct {
	service service.Integration
	otel    otel.Otel
}

func New(service service.Integration, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/integration", func(routerGroup chi.Router) {
		routerGroup.Get("/sync-status", handler.GetSyncStatus)
		routerGroup.Post("/sync", handler.SyncBookings)
	})
}

// GetSyncStatus reports the channel manager sync state.
// @Summary Get integration sync status
// @Description Report how many bookings carry an external channel manager reference and when the last sync ran.
// @Tags Integration
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.SyncStatusResponse] "Sync status"
// @Failure 500 {object} response.Error
// @Router /v1/integration/sync-status [get]
func (handler *Handler) GetSyncStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSyncStatus")
	defer scope.End()

	res, err := handler.service.GetSyncStatus(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get sync status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Sync status retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// SyncBookings pushes unsynced bookings to the channel manager.
// @Summary Sync bookings with the channel manager
// @Description Assign an external reference to every booking that does not have one yet and record the run.
// @Tags Integration
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.SyncResponse] "Sync outcome"
// @Failure 500 {object} response.Error
// @Router /v1/integration/sync [post]
func (handler *Handler) SyncBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SyncBookings")
	defer scope.End()

	res, err := handler.service.Sync(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sync bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings synced successfully")

	response.WithJSON(w, http.StatusOK, res)
}
