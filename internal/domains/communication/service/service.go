package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/communication/model"
	"frontdesk/internal/domains/communication/model/dto"
	"frontdesk/internal/domains/communication/repository"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
)

type Communication interface {
	Create(ctx context.Context, req dto.CreateCommunicationRequest) (dto.CommunicationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCommunicationsResponse, error)
	Get(ctx context.Context, id string) (dto.CommunicationResponse, error)
	Update(ctx context.Context, req dto.UpdateCommunicationRequest, id string) (dto.CommunicationResponse, error)
	MarkDelivered(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Communication
	kafka kafka.Client
	cfg   *config.Config
	otel  otel.Otel
}

func New(repo repository.Communication, kafka kafka.Client, cfg *config.Config, otel otel.Otel) Communication {
	return &serviceImpl{
		repo:  repo,
		kafka: kafka,
		cfg:   cfg,
		otel:  otel,
	}
}

// Create logs a guest communication. Outbound messages are additionally
// published to the guest messages topic so delivery confirmation can happen
// out of band; publishing is fire and forget and never fails the request.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCommunicationRequest) (res dto.CommunicationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateCommunication")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	communication := req.ToModel(user)

	if err = s.repo.Insert(ctx, communication); err != nil {
		log.Error().Err(err).Msg("failed to create communication")

		return res, fmt.Errorf("failed to create communication: %w", err)
	}

	if communication.Direction == model.DirectionOutbound && s.cfg.Kafka.Enable {
		go func() {
			c := context.WithoutCancel(ctx)
			s.publishGuestMessage(c, communication)
		}()
	}

	res.FromModel(communication)

	return res, nil
}

func (s *serviceImpl) publishGuestMessage(ctx context.Context, communication model.Communication) {
	var event dto.GuestMessageEvent

	event.FromModel(communication)

	message := kafka.Message{
		Key:   communication.ID,
		Value: event,
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.GuestMessages, message); err != nil {
		log.Error().Err(err).Str("communication_id", communication.ID).Msg("failed to publish guest message")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCommunicationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCommunications")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count communications")

		return res, fmt.Errorf("failed to count communications: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get communications")

		return res, fmt.Errorf("failed to get communications: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CommunicationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCommunication")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	communication, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get communication")

		return res, fmt.Errorf("failed to get communication: %w", err)
	}

	if communication.ID == constant.Empty {
		return res, failure.NotFound("communication not found") // nolint:wrapcheck
	}

	res.FromModel(communication)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCommunicationRequest, id string) (res dto.CommunicationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateCommunication")
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
		log.Error().Err(err).Msg("failed to check if communication exists")

		return res, fmt.Errorf("failed to check if communication exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("communication not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update communication")

		return res, fmt.Errorf("failed to update communication: %w", err)
	}

	communication, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get updated communication")

		return res, fmt.Errorf("failed to get updated communication: %w", err)
	}

	res.FromModel(communication)

	return res, nil
}

// MarkDelivered confirms an outbound message left the building. Messages that
// already progressed past sent are left alone so a replayed confirmation never
// regresses a read message.
func (s *serviceImpl) MarkDelivered(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkCommunicationDelivered")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID)

	communication, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get communication")

		return fmt.Errorf("failed to get communication: %w", err)
	}

	if communication.ID == constant.Empty {
		return failure.NotFound("communication not found") // nolint:wrapcheck
	}

	if communication.Status != model.StatusSent {
		return nil
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusDelivered,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: constant.SystemUser,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to mark communication delivered")

		return fmt.Errorf("failed to mark communication delivered: %w", err)
	}

	return nil
}
