package bootstrap

import (
	"quiz-service/config"
	httpUsecase "quiz-service/internal/api/http/usecase"
	"quiz-service/internal/initializer"
)

type PostgresRepository interface {
	httpUsecase.PostgresRepository
	Close() error
}

func InitDatabase(config config.Config) PostgresRepository {
	return initializer.InitDatabase(config)
}
