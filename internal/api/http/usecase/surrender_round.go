package httpUsecase

import (
	"context"
	"net/http"

	"quiz-service/domain"

	"github.com/google/uuid"
)

type SurrenderResult struct {
	RoundID            uuid.UUID          `json:"round_id"`
	RoundStatus        domain.RoundStatus `json:"round_status"`
	SurrenderedBySeat1 bool               `json:"surrendered_by_seat1"`
	SurrenderedBySeat2 bool               `json:"surrendered_by_seat2"`
}

type SurrenderRoundUseCase interface {
	Execute(ctx context.Context, roundID, userID uuid.UUID) (*SurrenderResult, int, error)
}

type surrenderRoundUseCase struct {
	repository PostgresRepository
	notifier   RoomNotifier
}

func NewSurrenderRoundUseCase(repository PostgresRepository, notifier RoomNotifier) SurrenderRoundUseCase {
	return &surrenderRoundUseCase{
		repository: repository,
		notifier:   notifier,
	}
}

func (u *surrenderRoundUseCase) Execute(ctx context.Context, roundID, userID uuid.UUID) (*SurrenderResult, int, error) {
	round, roomCode, err := u.repository.SurrenderRound(ctx, roundID, userID)
	if err != nil {
		return nil, errorStatus(err), err
	}

	u.notifier.Notify(ctx, roomCode, domain.EventRoundSurrendered, map[string]any{
		"round_id": roundID.String(),
		"user_id":  userID.String(),
	})
	if round.Status == domain.RoundCompleted {
		u.notifier.Notify(ctx, roomCode, domain.EventRoundCompleted, map[string]any{"round_id": roundID.String()})
	}
	return &SurrenderResult{
		RoundID:            roundID,
		RoundStatus:        round.Status,
		SurrenderedBySeat1: round.SurrenderedBySeat1,
		SurrenderedBySeat2: round.SurrenderedBySeat2,
	}, http.StatusOK, nil
}
