package bootstrap

import (
	"context"

	"quiz-service/config"
	"quiz-service/internal/initializer"
)

type RoomRedisManager interface {
	PublishMessage(ctx context.Context, roomCode string, msgType string, content any) error
	Close() error
}

func InitRoomRedis(config config.Config) RoomRedisManager {
	manager := initializer.InitRoomRedis(config)
	if manager == nil {
		return nil
	}
	return manager
}
