package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quiz-service/domain"

	"github.com/google/uuid"
)

const selectQuestion = `
	SELECT q.id, q.creator_id, q.question_text, q.creator_answer, q.status, q.created_at, q.updated_at,
	       u.username, u.display_name
	FROM free_text_questions q
	LEFT JOIN users u ON u.id = q.creator_id`

func (r *Repository) CreateQuestion(ctx context.Context, creatorID uuid.UUID, text, answer string) (*domain.Question, error) {
	var id uuid.UUID
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO free_text_questions (creator_id, question_text, creator_answer, status)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		creatorID, text, answer, domain.QuestionWaiting,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	return r.GetQuestion(ctx, id)
}

// SubmitAnswer stores userID's answer and completes the question once the answer
// count reaches the threshold. It reports whether this answer completed it.
func (r *Repository) SubmitAnswer(ctx context.Context, questionID, userID uuid.UUID, text string) (*domain.Answer, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var expected, status string
	err = tx.QueryRowContext(ctx,
		`SELECT creator_answer, status FROM free_text_questions WHERE id = $1 FOR UPDATE`,
		questionID,
	).Scan(&expected, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, fmt.Errorf("%w: question not found", domain.ErrNotFound)
		}
		return nil, false, fmt.Errorf("failed to query question: %w", err)
	}

	var answered bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM free_text_answers WHERE question_id = $1 AND user_id = $2)`,
		questionID, userID,
	).Scan(&answered)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check answers: %w", err)
	}
	if answered {
		return nil, false, fmt.Errorf("%w: you already answered this question", domain.ErrConflict)
	}

	answer := domain.Answer{
		QuestionID: questionID,
		UserID:     userID,
		Text:       text,
		IsCorrect:  domain.AnswerMatches(expected, text),
	}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO free_text_answers (question_id, user_id, answer_text, is_correct)
		 VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		questionID, userID, answer.Text, answer.IsCorrect,
	).Scan(&answer.ID, &answer.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, false, fmt.Errorf("%w: you already answered this question", domain.ErrConflict)
		}
		return nil, false, fmt.Errorf("failed to insert answer: %w", err)
	}

	var count int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM free_text_answers WHERE question_id = $1`, questionID,
	).Scan(&count); err != nil {
		return nil, false, fmt.Errorf("failed to count answers: %w", err)
	}

	completed := false
	if domain.CompletesAt(count) && status != string(domain.QuestionCompleted) {
		if _, err := tx.ExecContext(ctx,
			`UPDATE free_text_questions SET status = $1, updated_at = now() WHERE id = $2`,
			domain.QuestionCompleted, questionID,
		); err != nil {
			return nil, false, fmt.Errorf("failed to complete question: %w", err)
		}
		completed = true
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &answer, completed, nil
}

func (r *Repository) GetQuestion(ctx context.Context, questionID uuid.UUID) (*domain.Question, error) {
	questions, err := r.queryQuestions(ctx, selectQuestion+` WHERE q.id = $1`, questionID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: question not found", domain.ErrNotFound)
	}
	return &questions[0], nil
}

// ListQuestions returns the whole pool, newest first, with answers attached.
func (r *Repository) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	return r.queryQuestions(ctx, selectQuestion+` ORDER BY q.created_at DESC`)
}

// CompletedQuestions returns every completed question with its answers.
func (r *Repository) CompletedQuestions(ctx context.Context) ([]domain.Question, error) {
	return r.queryQuestions(ctx, selectQuestion+` WHERE q.status = $1 ORDER BY q.created_at DESC`, domain.QuestionCompleted)
}

// DeleteQuestion removes a question owned by userID together with its answers.
func (r *Repository) DeleteQuestion(ctx context.Context, questionID, userID uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var creatorID uuid.UUID
	err = tx.QueryRowContext(ctx,
		`SELECT creator_id FROM free_text_questions WHERE id = $1 FOR UPDATE`, questionID,
	).Scan(&creatorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: question not found", domain.ErrNotFound)
		}
		return fmt.Errorf("failed to query question: %w", err)
	}
	if creatorID != userID {
		return fmt.Errorf("%w: only the creator can delete this question", domain.ErrForbidden)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM free_text_questions WHERE id = $1`, questionID); err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *Repository) queryQuestions(ctx context.Context, query string, args ...any) ([]domain.Question, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := []domain.Question{}
	index := map[uuid.UUID]int{}
	for rows.Next() {
		var (
			q                     domain.Question
			status                string
			username, displayName sql.NullString
		)
		if err := rows.Scan(&q.ID, &q.CreatorID, &q.Text, &q.CreatorAnswer, &status, &q.CreatedAt, &q.UpdatedAt,
			&username, &displayName); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		q.Status = domain.QuestionStatus(status)
		q.Creator = userSummary(q.CreatorID, username, displayName)
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

	answerRows, err := r.db.QueryContext(ctx,
		`SELECT a.id, a.question_id, a.user_id, a.answer_text, a.is_correct, a.created_at,
		        u.username, u.display_name
		 FROM free_text_answers a
		 LEFT JOIN users u ON u.id = a.user_id
		 WHERE a.question_id = ANY($1::uuid[])
		 ORDER BY a.created_at ASC`,
		uuidArray(ids),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query answers: %w", err)
	}
	defer answerRows.Close()

	for answerRows.Next() {
		var (
			a                     domain.Answer
			username, displayName sql.NullString
		)
		if err := answerRows.Scan(&a.ID, &a.QuestionID, &a.UserID, &a.Text, &a.IsCorrect, &a.CreatedAt,
			&username, &displayName); err != nil {
			return nil, fmt.Errorf("failed to scan answer: %w", err)
		}
		a.User = userSummary(a.UserID, username, displayName)
		if i, ok := index[a.QuestionID]; ok {
			questions[i].Answers = append(questions[i].Answers, a)
		}
	}
	if err := answerRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate answers: %w", err)
	}
	return questions, nil
}
