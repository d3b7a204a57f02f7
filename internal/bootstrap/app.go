package bootstrap

import (
	"context"
	"time"

	"quiz-service/config"
	"quiz-service/pkg/graceful"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type App struct {
	config          config.Config
	postgresRepo    PostgresRepository
	roomRedis       RoomRedisManager
	kafka           Messaging
	trackSource     TrackSource
	fiberApp        *fiber.App
	httpHandlers    map[string]interface{}
	messageHandlers map[string]MessageHandler
	ctx             context.Context
	cancel          context.CancelFunc
}

func NewApp(config config.Config) *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		config: config,
		ctx:    ctx,
		cancel: cancel,
	}
	app.initDependencies()
	return app
}

func (a *App) initDependencies() {
	a.postgresRepo = InitDatabase(a.config)
	a.roomRedis = InitRoomRedis(a.config)
	a.trackSource = InitTrackSource(a.config)
	a.messageHandlers = SetupMessageHandlers(a.postgresRepo)
	a.kafka = SetupMessaging(a.ctx, a.messageHandlers, a.config)
	notifier := SetupNotifier(a.roomRedis, a.kafka)
	a.httpHandlers = SetupHTTPHandlers(a.config, a.postgresRepo, a.trackSource, notifier)
	a.fiberApp = SetupServer(a.config, a.httpHandlers)
}

func (a *App) Start() {
	go func() {
		port := a.config.Server.Port
		if err := a.fiberApp.Listen(":" + port); err != nil {
			zap.L().Error("Failed to start server", zap.Error(err))
			a.cancel()
		}
	}()

	zap.L().Info("Server started on port", zap.String("port", a.config.Server.Port))

	defer a.close()

	graceful.WaitForShutdown(a.fiberApp, 5*time.Second, a.ctx)
}

func (a *App) close() {
	a.cancel()

	if a.kafka != nil {
		if err := a.kafka.Close(); err != nil {
			zap.L().Error("Failed to close kafka client", zap.Error(err))
		}
	}
	if a.roomRedis != nil {
		if err := a.roomRedis.Close(); err != nil {
			zap.L().Error("Failed to close redis", zap.Error(err))
		}
	}
	if err := a.postgresRepo.Close(); err != nil {
		zap.L().Error("Failed to close database", zap.Error(err))
	}
}
