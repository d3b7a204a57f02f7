package httpUsecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"quiz-service/domain"

	"github.com/google/uuid"
)

type GuessResult struct {
	Guess       *domain.Guess      `json:"guess"`
	IsCorrect   bool               `json:"is_correct"`
	RoundStatus domain.RoundStatus `json:"round_status"`
}

type SubmitGuessUseCase interface {
	Execute(ctx context.Context, roundID, userID uuid.UUID, text string) (*GuessResult, int, error)
}

type submitGuessUseCase struct {
	repository PostgresRepository
	notifier   RoomNotifier
	cooldown   time.Duration
}

func NewSubmitGuessUseCase(repository PostgresRepository, notifier RoomNotifier, cooldown time.Duration) SubmitGuessUseCase {
	return &submitGuessUseCase{
		repository: repository,
		notifier:   notifier,
		cooldown:   cooldown,
	}
}

func (u *submitGuessUseCase) Execute(ctx context.Context, roundID, userID uuid.UUID, text string) (*GuessResult, int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, http.StatusBadRequest, fmt.Errorf("%w: guess is required", domain.ErrInvalidInput)
	}

	guess, round, roomCode, err := u.repository.SubmitGuess(ctx, roundID, userID, text, u.cooldown)
	if err != nil {
		return nil, errorStatus(err), err
	}

	u.notifier.Notify(ctx, roomCode, domain.EventGuessSubmitted, map[string]any{
		"round_id":   roundID.String(),
		"user_id":    userID.String(),
		"is_correct": guess.IsCorrect,
	})
	if round.Status == domain.RoundCompleted {
		u.notifier.Notify(ctx, roomCode, domain.EventRoundCompleted, map[string]any{
			"round_id":  roundID.String(),
			"winner_id": userID.String(),
		})
	}

	return &GuessResult{Guess: guess, IsCorrect: guess.IsCorrect, RoundStatus: round.Status}, http.StatusCreated, nil
}
