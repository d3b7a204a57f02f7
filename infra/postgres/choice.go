package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quiz-service/domain"

	"github.com/google/uuid"
)

const selectChoiceQuestion = `
	SELECT q.id, q.room_id, q.asked_by_user_id, q.question_text, q.status, q.created_at, q.updated_at,
	       u.username, u.display_name
	FROM choice_questions q
	LEFT JOIN users u ON u.id = q.asked_by_user_id`

// lockedChoice is a question row locked together with the seats of its room.
type lockedChoice struct {
	status domain.ChoiceStatus
	room   domain.Room
}

func lockChoiceQuestion(ctx context.Context, tx *sql.Tx, questionID uuid.UUID) (*lockedChoice, error) {
	var (
		locked lockedChoice
		status string
		seat2  uuid.NullUUID
	)
	err := tx.QueryRowContext(ctx,
		`SELECT q.status, r.id, r.code, r.seat1_user_id, r.seat2_user_id
		 FROM choice_questions q
		 JOIN rooms r ON r.id = q.room_id
		 WHERE q.id = $1
		 FOR UPDATE OF q`,
		questionID,
	).Scan(&status, &locked.room.ID, &locked.room.Code, &locked.room.Seat1UserID, &seat2)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: question not found", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query question: %w", err)
	}
	locked.status = domain.ChoiceStatus(status)
	locked.room.Seat2UserID = uuidPtr(seat2)
	return &locked, nil
}

// CreateChoiceQuestion adds a question to the room and makes it the current one.
func (r *Repository) CreateChoiceQuestion(ctx context.Context, roomCode string, userID uuid.UUID, text string) (*domain.ChoiceQuestion, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	room, err := lockRoomByCode(ctx, tx, roomCode)
	if err != nil {
		return nil, err
	}
	if _, err := room.RequireSeat(userID); err != nil {
		return nil, err
	}

	var questionID uuid.UUID
	err = tx.QueryRowContext(ctx,
		`INSERT INTO choice_questions (room_id, asked_by_user_id, question_text, status)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		room.ID, userID, text, domain.ChoiceActive,
	).Scan(&questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE rooms SET current_question_id = $1, updated_at = now() WHERE id = $2`,
		questionID, room.ID,
	); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return r.GetChoiceQuestion(ctx, questionID)
}

// SubmitOptions stores userID's whole option set in one transaction. It returns the
// stored options and the code of the question's room.
func (r *Repository) SubmitOptions(ctx context.Context, questionID, userID uuid.UUID, inputs []domain.OptionInput) ([]domain.Option, string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	locked, err := lockChoiceQuestion(ctx, tx, questionID)
	if err != nil {
		return nil, "", err
	}

	normalized, err := domain.NormalizeOptions(inputs)
	if err != nil {
		return nil, "", err
	}

	if _, err := locked.room.RequireSeat(userID); err != nil {
		return nil, "", err
	}

	var submitted bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM choice_options WHERE question_id = $1 AND user_id = $2)`,
		questionID, userID,
	).Scan(&submitted); err != nil {
		return nil, "", fmt.Errorf("failed to check options: %w", err)
	}
	if submitted {
		return nil, "", fmt.Errorf("%w: you already submitted options for this question", domain.ErrConflict)
	}

	options := make([]domain.Option, 0, len(normalized))
	for i, in := range normalized {
		option := domain.Option{
			QuestionID: questionID,
			UserID:     userID,
			Text:       in.Text,
			IsCorrect:  in.IsCorrect,
		}
		if err := tx.QueryRowContext(ctx,
			`INSERT INTO choice_options (question_id, user_id, option_text, is_correct, position)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			questionID, userID, option.Text, option.IsCorrect, i,
		).Scan(&option.ID); err != nil {
			return nil, "", fmt.Errorf("failed to insert option: %w", err)
		}
		options = append(options, option)
	}

	if err := tx.Commit(); err != nil {
		return nil, "", fmt.Errorf("failed to commit transaction: %w", err)
	}
	return options, locked.room.Code, nil
}

// SubmitSelection records userID's pick and completes the question once both picks are in.
// It returns the selection, whether it completed the question and the room code.
func (r *Repository) SubmitSelection(ctx context.Context, questionID, userID, optionID uuid.UUID) (*domain.Selection, bool, string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	locked, err := lockChoiceQuestion(ctx, tx, questionID)
	if err != nil {
		return nil, false, "", err
	}

	option := domain.Option{ID: optionID, QuestionID: questionID}
	err = tx.QueryRowContext(ctx,
		`SELECT user_id, option_text, is_correct FROM choice_options WHERE id = $1 AND question_id = $2`,
		optionID, questionID,
	).Scan(&option.UserID, &option.Text, &option.IsCorrect)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, "", fmt.Errorf("%w: option not found for this question", domain.ErrNotFound)
		}
		return nil, false, "", fmt.Errorf("failed to query option: %w", err)
	}

	if _, err := locked.room.RequireSeat(userID); err != nil {
		return nil, false, "", err
	}

	var selected bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM choice_selections WHERE question_id = $1 AND user_id = $2)`,
		questionID, userID,
	).Scan(&selected); err != nil {
		return nil, false, "", fmt.Errorf("failed to check selections: %w", err)
	}
	if selected {
		return nil, false, "", fmt.Errorf("%w: you already made a selection for this question", domain.ErrConflict)
	}

	if err := domain.CheckSelection(option, userID); err != nil {
		return nil, false, "", err
	}

	selection := domain.Selection{
		QuestionID:       questionID,
		UserID:           userID,
		SelectedOptionID: optionID,
		IsCorrect:        option.IsCorrect,
	}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO choice_selections (question_id, user_id, selected_option_id, is_correct)
		 VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		questionID, userID, optionID, selection.IsCorrect,
	).Scan(&selection.ID, &selection.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, false, "", fmt.Errorf("%w: you already made a selection for this question", domain.ErrConflict)
		}
		return nil, false, "", fmt.Errorf("failed to insert selection: %w", err)
	}

	var count int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM choice_selections WHERE question_id = $1`, questionID,
	).Scan(&count); err != nil {
		return nil, false, "", fmt.Errorf("failed to count selections: %w", err)
	}

	completed := false
	if count >= domain.SelectionsToComplete && locked.status != domain.ChoiceCompleted {
		if _, err := tx.ExecContext(ctx,
			`UPDATE choice_questions SET status = $1, updated_at = now() WHERE id = $2`,
			domain.ChoiceCompleted, questionID,
		); err != nil {
			return nil, false, "", fmt.Errorf("failed to complete question: %w", err)
		}
		completed = true
	}

	if err := tx.Commit(); err != nil {
		return nil, false, "", fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &selection, completed, locked.room.Code, nil
}

func (r *Repository) GetChoiceQuestion(ctx context.Context, questionID uuid.UUID) (*domain.ChoiceQuestion, error) {
	questions, err := r.queryChoiceQuestions(ctx, selectChoiceQuestion+` WHERE q.id = $1`, questionID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: question not found", domain.ErrNotFound)
	}
	return &questions[0], nil
}

// CurrentChoiceQuestion returns the room's current question, or nil when none is set.
func (r *Repository) CurrentChoiceQuestion(ctx context.Context, roomCode string) (*domain.ChoiceQuestion, error) {
	room, err := r.GetRoomByCode(ctx, roomCode)
	if err != nil {
		return nil, err
	}
	if room.CurrentQuestionID == nil {
		return nil, nil
	}
	question, err := r.GetChoiceQuestion(ctx, *room.CurrentQuestionID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return question, err
}

// ChoiceHistory returns every question asked in the room, newest first.
func (r *Repository) ChoiceHistory(ctx context.Context, roomCode string) ([]domain.ChoiceQuestion, error) {
	room, err := r.GetRoomByCode(ctx, roomCode)
	if err != nil {
		return nil, err
	}
	return r.queryChoiceQuestions(ctx, selectChoiceQuestion+` WHERE q.room_id = $1 ORDER BY q.created_at DESC`, room.ID)
}

// ClearCurrentQuestion drops the room's current-question pointer whatever its state.
func (r *Repository) ClearCurrentQuestion(ctx context.Context, roomCode string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE rooms SET current_question_id = NULL, updated_at = now() WHERE code = $1`, roomCode)
	if err != nil {
		return fmt.Errorf("failed to clear current question: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to clear current question: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: room not found", domain.ErrNotFound)
	}
	return nil
}

func (r *Repository) queryChoiceQuestions(ctx context.Context, query string, args ...any) ([]domain.ChoiceQuestion, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := []domain.ChoiceQuestion{}
	index := map[uuid.UUID]int{}
	for rows.Next() {
		var (
			q                     domain.ChoiceQuestion
			status                string
			username, displayName sql.NullString
		)
		if err := rows.Scan(&q.ID, &q.RoomID, &q.AskedByUserID, &q.Text, &status, &q.CreatedAt, &q.UpdatedAt,
			&username, &displayName); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		q.Status = domain.ChoiceStatus(status)
		q.AskedBy = userSummary(q.AskedByUserID, username, displayName)
		q.Options = []domain.Option{}
		q.Selections = []domain.Selection{}
		index[q.ID] = len(questions)
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate questions: %w", err)
	}
	if len(questions) == 0 {
		return questions, nil
	}

	ids := make([]uuid.UUID, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}

	if err := r.attachOptions(ctx, questions, index, ids); err != nil {
		return nil, err
	}
	if err := r.attachSelections(ctx, questions, index, ids); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *Repository) attachOptions(ctx context.Context, questions []domain.ChoiceQuestion, index map[uuid.UUID]int, ids []uuid.UUID) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT o.id, o.question_id, o.user_id, o.option_text, o.is_correct, u.username, u.display_name
		 FROM choice_options o
		 LEFT JOIN users u ON u.id = o.user_id
		 WHERE o.question_id = ANY($1::uuid[])
		 ORDER BY o.created_at ASC, o.position ASC`,
		uuidArray(ids),
	)
	if err != nil {
		return fmt.Errorf("failed to query options: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			o                     domain.Option
			username, displayName sql.NullString
		)
		if err := rows.Scan(&o.ID, &o.QuestionID, &o.UserID, &o.Text, &o.IsCorrect, &username, &displayName); err != nil {
			return fmt.Errorf("failed to scan option: %w", err)
		}
		o.User = userSummary(o.UserID, username, displayName)
		if i, ok := index[o.QuestionID]; ok {
			questions[i].Options = append(questions[i].Options, o)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate options: %w", err)
	}
	return nil
}

func (r *Repository) attachSelections(ctx context.Context, questions []domain.ChoiceQuestion, index map[uuid.UUID]int, ids []uuid.UUID) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT s.id, s.question_id, s.user_id, s.selected_option_id, s.is_correct, s.created_at,
		        u.username, u.display_name
		 FROM choice_selections s
		 LEFT JOIN users u ON u.id = s.user_id
		 WHERE s.question_id = ANY($1::uuid[])
		 ORDER BY s.created_at ASC`,
		uuidArray(ids),
	)
	if err != nil {
		return fmt.Errorf("failed to query selections: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			s                     domain.Selection
			username, displayName sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.QuestionID, &s.UserID, &s.SelectedOptionID, &s.IsCorrect, &s.CreatedAt,
			&username, &displayName); err != nil {
			return fmt.Errorf("failed to scan selection: %w", err)
		}
		s.User = userSummary(s.UserID, username, displayName)
		if i, ok := index[s.QuestionID]; ok {
			questions[i].Selections = append(questions[i].Selections, s)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate selections: %w", err)
	}
	return nil
}
