package httpUsecase

import (
	"context"
	"time"

	"quiz-service/domain"

	"github.com/google/uuid"
)

type PostgresRepository interface {
	UpsertUser(ctx context.Context, user domain.User) error

	RoomCodeExists(ctx context.Context, code string) (bool, error)
	CreateRoom(ctx context.Context, code string, creatorID uuid.UUID) (*domain.Room, error)
	GetRoomByCode(ctx context.Context, code string) (*domain.Room, error)
	JoinRoom(ctx context.Context, code string, userID uuid.UUID) (*domain.Room, error)
	LeaveRoom(ctx context.Context, code string, userID uuid.UUID) (*domain.Room, error)

	CreateQuestion(ctx context.Context, creatorID uuid.UUID, text, answer string) (*domain.Question, error)
	SubmitAnswer(ctx context.Context, questionID, userID uuid.UUID, text string) (*domain.Answer, bool, error)
	GetQuestion(ctx context.Context, questionID uuid.UUID) (*domain.Question, error)
	ListQuestions(ctx context.Context) ([]domain.Question, error)
	CompletedQuestions(ctx context.Context) ([]domain.Question, error)
	DeleteQuestion(ctx context.Context, questionID, userID uuid.UUID) error

	CreateChoiceQuestion(ctx context.Context, roomCode string, userID uuid.UUID, text string) (*domain.ChoiceQuestion, error)
	SubmitOptions(ctx context.Context, questionID, userID uuid.UUID, inputs []domain.OptionInput) ([]domain.Option, string, error)
	SubmitSelection(ctx context.Context, questionID, userID, optionID uuid.UUID) (*domain.Selection, bool, string, error)
	CurrentChoiceQuestion(ctx context.Context, roomCode string) (*domain.ChoiceQuestion, error)
	ChoiceHistory(ctx context.Context, roomCode string) ([]domain.ChoiceQuestion, error)
	ClearCurrentQuestion(ctx context.Context, roomCode string) error

	HasActiveSongRound(ctx context.Context, roomID uuid.UUID) (bool, error)
	CreateSongRound(ctx context.Context, roomID, userID uuid.UUID, track domain.Track) (*domain.SongRound, error)
	SubmitGuess(ctx context.Context, roundID, userID uuid.UUID, guess string, cooldown time.Duration) (*domain.Guess, *domain.SongRound, string, error)
	SurrenderRound(ctx context.Context, roundID, userID uuid.UUID) (*domain.SongRound, string, error)
	CurrentSongRound(ctx context.Context, roomID uuid.UUID) (*domain.SongRound, error)
	SongHistory(ctx context.Context, roomID uuid.UUID) ([]domain.SongRound, error)
}

type TrackSource interface {
	RandomTrack(ctx context.Context) (*domain.Track, error)
}

// RoomNotifier fans state-change hints out to listeners. Delivery is best effort.
type RoomNotifier interface {
	Notify(ctx context.Context, roomCode, eventType string, data map[string]any)
}
