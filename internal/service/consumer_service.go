package service

import (
	"context"
	"encoding/json"

	"company-pulse-be/internal/dto"
	"company-pulse-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains new-canonical candidates off the in-process bus and
// mints them, decoupling pulse generation latency from vocabulary writes.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	conceptService IConceptService
	logger         logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	conceptService IConceptService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		conceptService: conceptService,
		logger:         log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishNewCanonicalMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer_service", "Failed to unmarshal candidate message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if err := cs.conceptService.MintCanonical(ctx, payload.Kind, payload.Label, payload.Embedding); err != nil {
		cs.logger.Error("consumer_service", "Failed to mint canonical concept", map[string]interface{}{
			"kind":  payload.Kind,
			"label": payload.Label,
			"error": err.Error(),
		})
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
