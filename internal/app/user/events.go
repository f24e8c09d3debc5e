package user

import "context"

type Events interface {
	UserCreated(ctx context.Context, u *UserDto) error
}

// NoopEvents No-op implementation, useful for tests or if you don’t need events yet.
type NoopEvents struct{}

func (NoopEvents) UserCreated(ctx context.Context, u *UserDto) error { return nil }
