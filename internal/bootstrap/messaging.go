package bootstrap

import (
	"context"

	"quiz-service/config"
	"quiz-service/infra/messaging"
	"quiz-service/internal/initializer"

	"go.uber.org/zap"
)

type Messaging interface {
	Close() error
	PublishMessage(ctx context.Context, msg *messaging.Message) error
}

type MessageHandler interface {
	Handle(ctx context.Context, msg *messaging.Message) error
}

func SetupMessaging(ctx context.Context, handlers map[string]MessageHandler, config config.Config) Messaging {
	messageRouter := func(ctx context.Context, msg *messaging.Message) error {
		handler, ok := handlers[msg.Type]
		if !ok {
			zap.L().Debug("Ignoring message", zap.String("type", msg.Type), zap.String("id", msg.ID))
			return nil
		}
		return handler.Handle(ctx, msg)
	}

	client := initializer.InitMessaging(ctx, config, messageRouter)
	if client == nil {
		return nil
	}
	return client
}
