package communication

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/communication/model"
	"frontdesk/internal/domains/communication/model/dto"
	"frontdesk/internal/domains/communication/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"
)

type Handler struct {
	service service.Communication
	otel    otel.Otel
}

func New(service service.Communication, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/communications", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCommunication)
		routerGroup.Get("/", handler.GetCommunications)
		routerGroup.Get("/{id}", handler.GetCommunicationByID)
		routerGroup.Patch("/{id}", handler.UpdateCommunication)
	})
}

// CreateCommunication handles the creation of a new communication log entry.
// @Summary Log a guest communication
// @Description Record a message exchanged with a guest. Outbound messages are queued for delivery confirmation.
// @Tags Communications
// @Accept json
// @Produce json
// @Param request body dto.CreateCommunicationRequest true "Communication details"
// @Success 201 {object} response.Data[dto.CommunicationResponse] "Communication logged successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/communications [post]
// @Security BearerAuth
func (handler *Handler) CreateCommunication(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCommunication")
	defer scope.End()

	var req dto.CreateCommunicationRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create communication")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Communication created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetCommunications retrieves all communications based on query parameters.
// @Summary Get all communications
// @Description Retrieve the communication log with optional filtering and pagination.
// @Tags Communications
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param guest_id query string false "Filter by guest ID"
// @Param booking_id query string false "Filter by booking ID"
// @Param type query string false "Filter by type (email, sms, in_person, phone)"
// @Param direction query string false "Filter by direction (inbound, outbound)"
// @Param status query string false "Filter by status (sent, delivered, read, failed)"
// @Success 200 {object} response.Data[dto.GetCommunicationsResponse] "List of communications"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/communications [get]
func (handler *Handler) GetCommunications(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCommunications")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldGuestID, model.FieldBookingID, model.FieldType, model.FieldDirection, model.FieldStatus} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
			})
		}
	}

	communications, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get communications")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Communications retrieved successfully")

	response.WithJSON(w, http.StatusOK, communications)
}

// GetCommunicationByID retrieves a communication by its ID.
// @Summary Get a communication by ID
// @Description Retrieve a communication log entry by its unique identifier.
// @Tags Communications
// @Accept json
// @Produce json
// @Param id path string true "Communication ID"
// @Success 200 {object} response.Data[dto.CommunicationResponse] "Communication details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/communications/{id} [get]
func (handler *Handler) GetCommunicationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCommunicationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	communication, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get communication by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Communication retrieved successfully")

	response.WithJSON(w, http.StatusOK, communication)
}

// UpdateCommunication updates an existing communication by its ID.
// @Summary Update a communication by ID
// @Description Partially update a communication log entry, including delivery status.
// @Tags Communications
// @Accept json
// @Produce json
// @Param id path string true "Communication ID"
// @Param request body dto.UpdateCommunicationRequest true "Fields to update"
// @Success 200 {object} response.Data[dto.CommunicationResponse] "Updated communication"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/communications/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCommunication(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCommunication")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateCommunicationRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update communication")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Communication updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}
