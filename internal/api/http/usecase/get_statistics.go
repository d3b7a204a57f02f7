package httpUsecase

import (
	"context"
	"net/http"

	"quiz-service/domain"

	"github.com/google/uuid"
)

type GetStatisticsUseCase interface {
	Execute(ctx context.Context, userID uuid.UUID) (*domain.Statistics, int, error)
}

type getStatisticsUseCase struct {
	repository PostgresRepository
}

func NewGetStatisticsUseCase(repository PostgresRepository) GetStatisticsUseCase {
	return &getStatisticsUseCase{repository: repository}
}

// Execute recomputes the figures from the current pool on every call.
func (u *getStatisticsUseCase) Execute(ctx context.Context, userID uuid.UUID) (*domain.Statistics, int, error) {
	completed, err := u.repository.CompletedQuestions(ctx)
	if err != nil {
		return nil, errorStatus(err), err
	}
	stats := domain.ComputeStatistics(userID, completed)
	return &stats, http.StatusOK, nil
}
