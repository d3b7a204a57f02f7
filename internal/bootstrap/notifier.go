package bootstrap

import (
	"time"

	httpUsecase "quiz-service/internal/api/http/usecase"
	"quiz-service/internal/notify"
)

func SetupNotifier(roomRedis RoomRedisManager, kafka Messaging) httpUsecase.RoomNotifier {
	var (
		rooms  notify.RoomPublisher
		events notify.EventPublisher
	)
	if roomRedis != nil {
		rooms = roomRedis
	}
	if kafka != nil {
		events = kafka
	}
	return notify.New(rooms, events, 2*time.Second)
}
