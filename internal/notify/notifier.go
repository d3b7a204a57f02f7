package notify

import (
	"context"
	"time"

	"quiz-service/infra/messaging"

	"go.uber.org/zap"
)

type RoomPublisher interface {
	PublishMessage(ctx context.Context, roomCode string, msgType string, content any) error
}

type EventPublisher interface {
	PublishMessage(ctx context.Context, msg *messaging.Message) error
}

// Notifier publishes room state changes to the room channel and the event stream.
// Either publisher may be nil. Failures are logged and never reach the caller.
type Notifier struct {
	rooms   RoomPublisher
	events  EventPublisher
	timeout time.Duration
}

func New(rooms RoomPublisher, events EventPublisher, timeout time.Duration) *Notifier {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Notifier{
		rooms:   rooms,
		events:  events,
		timeout: timeout,
	}
}

func (n *Notifier) Notify(ctx context.Context, roomCode, eventType string, data map[string]any) {
	// publishing outlives cancellation of the request context
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
	defer cancel()

	if n.rooms != nil {
		if err := n.rooms.PublishMessage(ctx, roomCode, eventType, data); err != nil {
			zap.L().Warn("Failed to publish room notification",
				zap.String("room_code", roomCode), zap.String("type", eventType), zap.Error(err))
		}
	}

	if n.events != nil {
		payload := map[string]any{"room_code": roomCode}
		for k, v := range data {
			payload[k] = v
		}
		if err := n.events.PublishMessage(ctx, messaging.NewMessage(eventType, roomCode, payload)); err != nil {
			zap.L().Warn("Failed to publish room event",
				zap.String("room_code", roomCode), zap.String("type", eventType), zap.Error(err))
		}
	}
}
