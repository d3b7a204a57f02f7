package bootstrap

import (
	"quiz-service/config"
	httpUsecase "quiz-service/internal/api/http/usecase"
	"quiz-service/internal/initializer"
)

type TrackSource = httpUsecase.TrackSource

func InitTrackSource(config config.Config) TrackSource {
	return initializer.InitTrackSource(config)
}
