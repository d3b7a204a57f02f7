package initializer

import (
	"quiz-service/config"
	"quiz-service/infra/postgres"

	"go.uber.org/zap"
)

func InitDatabase(appConfig config.Config) *postgres.Repository {
	repository, err := postgres.NewRepository(appConfig.Postgres.DSN())
	if err != nil {
		zap.L().Fatal("Failed to initialize database", zap.Error(err))
	}
	zap.L().Info("Database connected",
		zap.String("host", appConfig.Postgres.Host), zap.String("db", appConfig.Postgres.DB))
	return repository
}
