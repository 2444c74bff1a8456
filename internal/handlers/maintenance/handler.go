package maintenance

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/maintenance/model"
	"frontdesk/internal/domains/maintenance/model/dto"
	"frontdesk/internal/domains/maintenance/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"
)

type Handler struct {
	service service.Maintenance
	otel    otel.Otel
}

func New(service service.Maintenance, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/maintenance-requests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateMaintenanceRequest)
		routerGroup.Get("/", handler.GetMaintenanceRequests)
		routerGroup.Get("/{id}", handler.GetMaintenanceRequestByID)
		routerGroup.Patch("/{id}", handler.UpdateMaintenanceRequest)
		routerGroup.Post("/{id}/complete", handler.CompleteMaintenanceRequest)
	})
}

// CreateMaintenanceRequest handles the creation of a new maintenance request.
// @Summary Create a new maintenance request
// @Description Open a maintenance request against a room, optionally assigned to a staff member.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param request body dto.CreateMaintenanceRequest true "Maintenance request details"
// @Success 201 {object} response.Data[dto.MaintenanceResponse] "Maintenance request created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance-requests [post]
// @Security BearerAuth
func (handler *Handler) CreateMaintenanceRequest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMaintenanceRequest")
	defer scope.End()

	var req dto.CreateMaintenanceRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create maintenance request")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Maintenance request created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetMaintenanceRequests retrieves all maintenance requests based on query parameters.
// @Summary Get all maintenance requests
// @Description Retrieve all maintenance requests with optional filtering and pagination. Use status=pending for the open work queue.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (pending, in_progress, completed)"
// @Param room_id query string false "Filter by room ID"
// @Param staff_id query string false "Filter by assigned staff ID"
// @Param type query string false "Filter by type (cleaning, repair, inspection)"
// @Param priority query string false "Filter by priority (low, medium, high, urgent)"
// @Success 200 {object} response.Data[dto.GetMaintenanceResponse] "List of maintenance requests"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance-requests [get]
func (handler *Handler) GetMaintenanceRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMaintenanceRequests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldStatus, model.FieldRoomID, model.FieldStaffID, model.FieldType, model.FieldPriority} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
			})
		}
	}

	requests, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get maintenance requests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Maintenance requests retrieved successfully")

	response.WithJSON(w, http.StatusOK, requests)
}

// GetMaintenanceRequestByID retrieves a maintenance request by its ID.
// @Summary Get a maintenance request by ID
// @Description Retrieve a maintenance request by its unique identifier.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path string true "Maintenance request ID"
// @Success 200 {object} response.Data[dto.MaintenanceResponse] "Maintenance request details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance-requests/{id} [get]
func (handler *Handler) GetMaintenanceRequestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMaintenanceRequestByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	request, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get maintenance request by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Maintenance request retrieved successfully")

	response.WithJSON(w, http.StatusOK, request)
}

// UpdateMaintenanceRequest updates an existing maintenance request by its ID.
// @Summary Update a maintenance request by ID
// @Description Partially update a maintenance request, including assignment and status.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path string true "Maintenance request ID"
// @Param request body dto.UpdateMaintenanceRequest true "Fields to update"
// @Success 200 {object} response.Data[dto.MaintenanceResponse] "Updated maintenance request"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance-requests/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateMaintenanceRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMaintenanceRequest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateMaintenanceRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update maintenance request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Maintenance request updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// CompleteMaintenanceRequest marks a maintenance request completed.
// @Summary Complete a maintenance request
// @Description Close a maintenance request, setting status to completed and stamping the completion time.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path string true "Maintenance request ID"
// @Success 200 {object} response.Data[dto.MaintenanceResponse] "Completed maintenance request"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance-requests/{id}/complete [post]
// @Security BearerAuth
func (handler *Handler) CompleteMaintenanceRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteMaintenanceRequest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Complete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete maintenance request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Maintenance request completed successfully")

	response.WithJSON(w, http.StatusOK, res)
}
