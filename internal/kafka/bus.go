package kafka

import "context"

// Bus publishes domain events. payload is JSON-encoded into an Envelope
// whose Type is msgType.
type Bus interface {
	Publish(ctx context.Context, topic string, msgType string, payload any) error
}
