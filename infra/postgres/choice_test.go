package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"quiz-service/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lockedChoiceColumns = []string{"status", "id", "code", "seat1_user_id", "seat2_user_id"}

func TestSubmitOptions(t *testing.T) {
	ctx := context.Background()
	questionID, roomID, host, guest := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	inputs := []domain.OptionInput{{Text: "Paris", IsCorrect: true}, {Text: " Rome "}}

	expectLock := func(mock sqlmock.Sqlmock) {
		mock.ExpectBegin()
		mock.ExpectQuery(`FROM choice_questions q JOIN rooms r ON r.id = q.room_id WHERE q.id = \$1 FOR UPDATE OF q`).
			WithArgs(questionID.String()).
			WillReturnRows(sqlmock.NewRows(lockedChoiceColumns).
				AddRow("active", roomID.String(), "ROOM0001", host.String(), guest.String()))
	}

	t.Run("stores the whole set", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		expectLock(mock)
		mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM choice_options`).
			WithArgs(questionID.String(), guest.String()).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery(`INSERT INTO choice_options`).
			WithArgs(questionID.String(), guest.String(), "Paris", true, 0).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
		mock.ExpectQuery(`INSERT INTO choice_options`).
			WithArgs(questionID.String(), guest.String(), "Rome", false, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
		mock.ExpectCommit()

		options, code, err := repo.SubmitOptions(ctx, questionID, guest, inputs)
		require.NoError(t, err)
		assert.Equal(t, "ROOM0001", code)
		assert.Len(t, options, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed insert rolls back the batch", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		expectLock(mock)
		mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM choice_options`).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery(`INSERT INTO choice_options`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
		mock.ExpectQuery(`INSERT INTO choice_options`).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		_, _, err := repo.SubmitOptions(ctx, questionID, guest, inputs)
		require.Error(t, err)
		assert.Equal(t, domain.KindInternal, domain.KindOf(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second set from the same user", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		expectLock(mock)
		mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM choice_options`).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		_, _, err := repo.SubmitOptions(ctx, questionID, guest, inputs)
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid set", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		expectLock(mock)
		mock.ExpectRollback()

		_, _, err := repo.SubmitOptions(ctx, questionID, guest, []domain.OptionInput{{Text: "Paris"}, {Text: "Rome"}})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stranger", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		expectLock(mock)
		mock.ExpectRollback()

		_, _, err := repo.SubmitOptions(ctx, questionID, uuid.New(), inputs)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSubmitSelection(t *testing.T) {
	ctx := context.Background()
	questionID, roomID, host, guest, optionID := uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()

	expectLockAndOption := func(mock sqlmock.Sqlmock, author uuid.UUID) {
		mock.ExpectBegin()
		mock.ExpectQuery(`FOR UPDATE OF q`).
			WithArgs(questionID.String()).
			WillReturnRows(sqlmock.NewRows(lockedChoiceColumns).
				AddRow("active", roomID.String(), "ROOM0001", host.String(), guest.String()))
		mock.ExpectQuery(`SELECT user_id, option_text, is_correct FROM choice_options WHERE id = \$1 AND question_id = \$2`).
			WithArgs(optionID.String(), questionID.String()).
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "option_text", "is_correct"}).AddRow(author.String(), "Paris", true))
	}

	t.Run("second pick completes the question", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		expectLockAndOption(mock, guest)
		mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM choice_selections`).
			WithArgs(questionID.String(), host.String()).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery(`INSERT INTO choice_selections`).
			WithArgs(questionID.String(), host.String(), optionID.String(), true).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(uuid.NewString(), time.Now()))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM choice_selections`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectExec(`UPDATE choice_questions SET status = \$1`).
			WithArgs("completed", questionID.String()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		selection, completed, code, err := repo.SubmitSelection(ctx, questionID, host, optionID)
		require.NoError(t, err)
		assert.True(t, selection.IsCorrect)
		assert.True(t, completed)
		assert.Equal(t, "ROOM0001", code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("own option", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		expectLockAndOption(mock, host)
		mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM choice_selections`).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectRollback()

		_, _, _, err := repo.SubmitSelection(ctx, questionID, host, optionID)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("option from another question", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`FOR UPDATE OF q`).
			WillReturnRows(sqlmock.NewRows(lockedChoiceColumns).
				AddRow("active", roomID.String(), "ROOM0001", host.String(), guest.String()))
		mock.ExpectQuery(`FROM choice_options WHERE id = \$1 AND question_id = \$2`).
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "option_text", "is_correct"}))
		mock.ExpectRollback()

		_, _, _, err := repo.SubmitSelection(ctx, questionID, host, optionID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestClearCurrentQuestionUnknownRoom(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec(`UPDATE rooms SET current_question_id = NULL`).
		WithArgs("NOPE0000").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ClearCurrentQuestion(context.Background(), "NOPE0000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
