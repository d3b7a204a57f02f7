package main

import (
	"quiz-service/config"
	"quiz-service/internal/bootstrap"
	_ "quiz-service/log"

	"go.uber.org/zap"
)

func main() {
	appConfig := config.Read()
	defer zap.L().Sync()
	zap.L().Info("app starting...",
		zap.String("app name", appConfig.App.Name),
		zap.String("version", appConfig.App.Version),
		zap.String("env", appConfig.App.Env))

	app := bootstrap.NewApp(appConfig)

	app.Start()
}
