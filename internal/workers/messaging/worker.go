package messaging

import (
	"context"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/internal/domains/communication/model/dto"
	"frontdesk/internal/domains/communication/service"
)

// DeliveryWorker consumes the guest messages topic and marks each published
// communication as delivered. It stands in for the delivery callback a real
// messaging provider would make.
type DeliveryWorker struct {
	kafka   kafka.Client
	service service.Communication
	cfg     *config.Config
}

func New(kafkaClient kafka.Client, communicationService service.Communication, cfg *config.Config) *DeliveryWorker {
	return &DeliveryWorker{
		kafka:   kafkaClient,
		service: communicationService,
		cfg:     cfg,
	}
}

// Run consumes the guest messages topic until the context is cancelled.
// When Kafka is disabled it returns immediately and outbound messages simply
// stay in the sent state.
func (w *DeliveryWorker) Run(ctx context.Context) {
	if !w.cfg.Kafka.Enable {
		log.Info().Msg("Kafka disabled, delivery worker not started")

		return
	}

	log.Info().Str("topic", w.cfg.Kafka.Topics.GuestMessages).Msg("Delivery worker started")

	w.kafka.Consume(ctx, w.cfg.Kafka.ConsumerGroup, w.cfg.Kafka.Topics.GuestMessages, w.handle)
}

func (w *DeliveryWorker) handle(msg kafkaGo.Message) {
	decoded, err := kafka.DecodeKafkaMessage[dto.GuestMessageEvent](msg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to decode guest message event")

		return
	}

	event, ok := decoded.Value.(dto.GuestMessageEvent)
	if !ok {
		log.Error().Str("key", decoded.Key).Msg("Unexpected guest message payload type")

		return
	}

	// The consume loop hands messages off outside any request, so there is
	// no parent context to inherit.
	if err := w.service.MarkDelivered(context.Background(), event.ID); err != nil {
		log.Error().Err(err).Str("communication_id", event.ID).Msg("Failed to mark communication delivered")
	}
}
