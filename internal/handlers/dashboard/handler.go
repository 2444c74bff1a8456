package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/dashboard/service"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/response"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dashboard", func(routerGroup chi.Router) {
		routerGroup.Get("/metrics", handler.GetDashboardMetrics)
	})
}

// GetDashboardMetrics serves the operational snapshot for the landing page.
// @Summary Get dashboard metrics
// @Description Retrieve the current operational snapshot: occupancy, per-status room counts, today's arrivals, departures and revenue, pending maintenance and active staff.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.DashboardMetricsResponse] "Dashboard metrics"
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/metrics [get]
func (handler *Handler) GetDashboardMetrics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboardMetrics")
	defer scope.End()

	res, err := handler.service.GetMetrics(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard metrics")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dashboard metrics retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}
