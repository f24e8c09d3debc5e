package user

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	dom "userapi/internal/domain/user"
	"userapi/internal/logging"
)

type Service interface {
	Create(ctx context.Context, input CreateUserInput) (*UserDto, error)
}

type service struct {
	repo    dom.Repository
	events  Events
	logger  logging.Logger
	creates metric.Int64Counter
}

func (s *service) Create(ctx context.Context, input CreateUserInput) (*UserDto, error) {
	u, err := s.repo.Create(ctx, dom.NewUser{
		Name:  input.Name,
		Email: input.Email,
	})
	if err != nil {
		// The HTTP layer logs the failure with the request id.
		s.count(ctx, outcome(err))
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.count(ctx, "ok")

	dto := toDTO(u)

	// Best-effort: the row is already committed.
	if err := s.events.UserCreated(ctx, dto); err != nil {
		s.logger.Error("failed to publish UserCreated event", "error", err, "id", dto.Id)
	}

	return dto, nil
}

func (s *service) count(ctx context.Context, result string) {
	if s.creates == nil {
		return
	}
	s.creates.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

func outcome(err error) string {
	switch {
	case IsConnectionError(err):
		return "lease_error"
	case IsQueryError(err):
		return "insert_error"
	default:
		return "error"
	}
}

func NewService(
	repo dom.Repository,
	events Events,
	logger logging.Logger,
) Service {
	if events == nil {
		events = NoopEvents{}
	}
	logger = logger.With("component", "user_service")

	creates, err := otel.Meter("userapi/internal/app/user").Int64Counter(
		"users.create",
		metric.WithDescription("User create attempts by result."),
	)
	if err != nil {
		logger.Error("failed to create users.create counter", "error", err)
	}

	return &service{
		repo:    repo,
		events:  events,
		logger:  logger,
		creates: creates,
	}
}
