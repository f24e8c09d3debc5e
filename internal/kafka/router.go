package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/ThreeDotsLabs/watermill-kafka/v3/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/garsue/watermillzap"

	appuser "userapi/internal/app/user"
	"userapi/internal/config"
	"userapi/internal/logging"
)

// Router consumes the users topic and writes an audit log line per event.
type Router struct {
	router *message.Router
}

func NewRouter(
	ctx context.Context,
	cfg config.KafkaConfig,
	baseLogger logging.Logger,
) (*Router, error) {
	if !cfg.Enabled || !cfg.ConsumerEnabled {
		return &Router{router: nil}, nil
	}

	wmlogger := watermillzap.NewLogger(logging.AsZap(baseLogger))

	subCfg := kafka.SubscriberConfig{
		Brokers:       cfg.Brokers,
		Unmarshaler:   kafka.DefaultMarshaler{},
		ConsumerGroup: cfg.GroupID,
		InitializeTopicDetails: &sarama.TopicDetail{
			NumPartitions:     3,
			ReplicationFactor: 1,
		},
		NackResendSleep:     5 * time.Second,
		ReconnectRetrySleep: 10 * time.Second,
	}

	subscriber, err := kafka.NewSubscriber(subCfg, wmlogger)
	if err != nil {
		return nil, fmt.Errorf("create kafka subscriber: %w", err)
	}

	return newRouter(subscriber, UsersTopic(cfg), baseLogger)
}

func newRouter(subscriber message.Subscriber, topic string, baseLogger logging.Logger) (*Router, error) {
	wmlogger := watermillzap.NewLogger(logging.AsZap(baseLogger))

	router, err := message.NewRouter(message.RouterConfig{}, wmlogger)
	if err != nil {
		return nil, fmt.Errorf("create watermill router: %w", err)
	}

	router.AddNoPublisherHandler(
		"user-events-audit",
		topic,
		subscriber,
		userEventHandler(baseLogger.With("component", "user_events_consumer", "topic", topic)),
	)

	return &Router{router: router}, nil
}

// userEventHandler acks malformed messages after logging them; redelivery
// would not make them decodable.
func userEventHandler(logger logging.Logger) message.NoPublishHandlerFunc {
	return func(msg *message.Message) error {
		env, err := DecodeEnvelope(msg.Payload)
		if err != nil {
			logger.Error("dropping undecodable message", "uuid", msg.UUID, "error", err)
			return nil
		}

		switch env.Type {
		case UserCreatedType:
			var u appuser.UserDto
			if err := json.Unmarshal(env.Payload, &u); err != nil {
				logger.Error("dropping malformed UserCreated payload", "uuid", msg.UUID, "error", err)
				return nil
			}
			logger.Info("user created",
				"message_id", env.MessageID,
				"correlation_id", env.CorrelationID,
				"occurred_at", env.OccurredAt,
				"id", u.Id,
				"email", u.Email,
			)
		default:
			logger.Debug("ignoring event", "type", env.Type, "message_id", env.MessageID)
		}
		return nil
	}
}

func (r *Router) Run(ctx context.Context) error {
	if r.router == nil {
		return nil // consumer disabled
	}
	return r.router.Run(ctx)
}

// Running is closed once the router has started its handlers.
func (r *Router) Running() chan struct{} {
	if r.router == nil {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return r.router.Running()
}

func (r *Router) Close(ctx context.Context) error {
	if r.router == nil {
		return nil
	}
	return r.router.Close()
}
