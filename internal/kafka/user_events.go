package kafka

import (
	"context"
	"fmt"

	appuser "userapi/internal/app/user"
	"userapi/internal/config"
	"userapi/internal/logging"
)

const UserCreatedType = "UserCreated"

// UsersTopic is the topic user events are published to and consumed from.
func UsersTopic(cfg config.KafkaConfig) string {
	return cfg.TopicPrefix + "users"
}

type userEvents struct {
	bus    Bus
	topic  string
	logger logging.Logger
}

func NewUserEvents(bus Bus, cfg config.KafkaConfig, logger logging.Logger) appuser.Events {
	return &userEvents{
		bus:    bus,
		topic:  UsersTopic(cfg),
		logger: logger.With("component", "user_events"),
	}
}

func (e *userEvents) UserCreated(ctx context.Context, u *appuser.UserDto) error {
	if err := e.bus.Publish(ctx, e.topic, UserCreatedType, u); err != nil {
		return fmt.Errorf("publish UserCreated: %w", err)
	}
	e.logger.Debug("published UserCreated", "topic", e.topic, "id", u.Id)
	return nil
}
