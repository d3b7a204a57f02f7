package initializer

import (
	"quiz-service/config"
	"quiz-service/infra/deezer"
)

func InitTrackSource(appConfig config.Config) *deezer.Client {
	return deezer.NewClient(deezer.Config{
		BaseURL:           appConfig.Deezer.BaseURL,
		Timeout:           appConfig.Deezer.Timeout,
		RequestsPerSecond: appConfig.Deezer.RequestsPerSecond,
		Burst:             appConfig.Deezer.Burst,
		Attempts:          appConfig.Game.TrackAttempts,
		Topics:            appConfig.Game.Topics,
	})
}
