package httpUsecase

import (
	"context"
	"net/http"
	"testing"

	"quiz-service/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pairedRoom struct {
	code        string
	host, guest uuid.UUID
}

func newPairedRoom(t *testing.T, repo *memoryRepository) pairedRoom {
	t.Helper()
	ctx := context.Background()
	p := pairedRoom{code: "PAIR0001", host: uuid.New(), guest: uuid.New()}
	_, err := repo.CreateRoom(ctx, p.code, p.host)
	require.NoError(t, err)
	_, err = repo.JoinRoom(ctx, p.code, p.guest)
	require.NoError(t, err)
	return p
}

func optionSet(correct string, others ...string) []domain.OptionInput {
	in := []domain.OptionInput{{Text: correct, IsCorrect: true}}
	for _, o := range others {
		in = append(in, domain.OptionInput{Text: o})
	}
	return in
}

func TestMultipleChoiceRound(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepository()
	notifier := newRecordingNotifier()
	room := newPairedRoom(t, repo)

	question, status, err := NewCreateChoiceQuestionUseCase(repo, notifier).Execute(ctx, room.code, room.host, "Best season?")
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, domain.ChoiceActive, question.Status)

	current, _, err := NewGetCurrentQuestionUseCase(repo).Execute(ctx, room.code)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, question.ID, current.ID)

	submitOptions := NewSubmitOptionsUseCase(repo, notifier)
	hostOptions, _, err := submitOptions.Execute(ctx, question.ID, room.host, optionSet("Summer", "Winter", " "))
	require.NoError(t, err)
	require.Len(t, hostOptions, 2)

	_, status, err = submitOptions.Execute(ctx, question.ID, room.host, optionSet("Spring", "Autumn"))
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, http.StatusConflict, status)

	guestOptions, _, err := submitOptions.Execute(ctx, question.ID, room.guest, optionSet("Autumn", "Spring"))
	require.NoError(t, err)

	current, _, err = NewGetCurrentQuestionUseCase(repo).Execute(ctx, room.code)
	require.NoError(t, err)
	assert.Equal(t, domain.ChoiceActive, current.Status)
	assert.Len(t, current.Options, 4)

	selectOption := NewSubmitSelectionUseCase(repo, notifier)

	_, status, err = selectOption.Execute(ctx, question.ID, room.host, hostOptions[0].ID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, http.StatusBadRequest, status)

	result, _, err := selectOption.Execute(ctx, question.ID, room.host, guestOptions[0].ID)
	require.NoError(t, err)
	assert.True(t, result.IsCorrect)
	assert.False(t, result.Completed)

	result, _, err = selectOption.Execute(ctx, question.ID, room.guest, hostOptions[1].ID)
	require.NoError(t, err)
	assert.False(t, result.IsCorrect)
	assert.True(t, result.Completed)

	history, _, err := NewGetQuestionHistoryUseCase(repo).Execute(ctx, room.code)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, domain.ChoiceCompleted, history[0].Status)
	assert.Len(t, history[0].Selections, 2)

	status, err = NewNextQuestionUseCase(repo, notifier).Execute(ctx, room.code)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)

	current, _, err = NewGetCurrentQuestionUseCase(repo).Execute(ctx, room.code)
	require.NoError(t, err)
	assert.Nil(t, current)

	assert.Equal(t, []string{
		domain.EventQuestionCreated,
		domain.EventOptionsSubmitted,
		domain.EventOptionsSubmitted,
		domain.EventSelectionSubmitted,
		domain.EventSelectionSubmitted,
		domain.EventQuestionCompleted,
		domain.EventNextQuestion,
	}, notifier.events())
}

func TestCreateChoiceQuestionRejectsOutsider(t *testing.T) {
	repo := newMemoryRepository()
	room := newPairedRoom(t, repo)

	_, status, err := NewCreateChoiceQuestionUseCase(repo, newRecordingNotifier()).Execute(context.Background(), room.code, uuid.New(), "Hi?")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, http.StatusForbidden, status)

	_, status, err = NewCreateChoiceQuestionUseCase(repo, newRecordingNotifier()).Execute(context.Background(), room.code, room.host, "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestSubmitOptionsValidation(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepository()
	room := newPairedRoom(t, repo)
	question, _, err := NewCreateChoiceQuestionUseCase(repo, newRecordingNotifier()).Execute(ctx, room.code, room.host, "Q?")
	require.NoError(t, err)

	submit := NewSubmitOptionsUseCase(repo, newRecordingNotifier())

	_, status, err := submit.Execute(ctx, question.ID, room.host, []domain.OptionInput{{Text: "A", IsCorrect: true}, {Text: "B", IsCorrect: true}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, http.StatusBadRequest, status)

	_, status, err = submit.Execute(ctx, uuid.New(), room.host, optionSet("A", "B"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, status)

	_, status, err = submit.Execute(ctx, question.ID, uuid.New(), optionSet("A", "B"))
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestSubmitSelectionRequiresOption(t *testing.T) {
	_, status, err := NewSubmitSelectionUseCase(newMemoryRepository(), newRecordingNotifier()).
		Execute(context.Background(), uuid.New(), uuid.New(), uuid.Nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, http.StatusBadRequest, status)
}
