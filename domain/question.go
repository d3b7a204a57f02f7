package domain

import (
	"time"

	"github.com/google/uuid"
)

type QuestionStatus string

const (
	QuestionWaiting   QuestionStatus = "waiting"
	QuestionCompleted QuestionStatus = "completed"
)

// AnswersToComplete is the answer count at which a free-text question completes.
const AnswersToComplete = 2

// Question is a free-text question from the global pool. CreatorAnswer is the secret
// correct answer and is only rendered back to the creator.
type Question struct {
	ID            uuid.UUID      `json:"id"`
	CreatorID     uuid.UUID      `json:"creator_id"`
	Text          string         `json:"question_text"`
	CreatorAnswer string         `json:"creator_answer,omitempty"`
	Status        QuestionStatus `json:"status"`
	Creator       *UserSummary   `json:"creator,omitempty"`
	Answers       []Answer       `json:"answers,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type Answer struct {
	ID         uuid.UUID    `json:"id"`
	QuestionID uuid.UUID    `json:"question_id"`
	UserID     uuid.UUID    `json:"user_id"`
	Text       string       `json:"answer_text"`
	IsCorrect  bool         `json:"is_correct"`
	User       *UserSummary `json:"user,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}

// QuestionView is a question as seen by one caller.
type QuestionView struct {
	Question
	UserHasAnswered bool    `json:"user_has_answered"`
	AllAnswered     bool    `json:"all_answered"`
	UserAnswer      *Answer `json:"user_answer"`
	OtherAnswer     *Answer `json:"other_answer"`
}

// ViewFor projects q for viewerID. The other player's answer is only revealed once the
// question is completed.
func (q Question) ViewFor(viewerID uuid.UUID) QuestionView {
	view := QuestionView{
		Question:    q,
		AllAnswered: q.Status == QuestionCompleted,
	}
	if q.CreatorID != viewerID {
		view.CreatorAnswer = ""
	}
	for i := range q.Answers {
		answer := q.Answers[i]
		if answer.UserID == viewerID {
			view.UserHasAnswered = true
			view.UserAnswer = &answer
			continue
		}
		if view.AllAnswered && view.OtherAnswer == nil {
			view.OtherAnswer = &answer
		}
	}
	view.Answers = nil
	return view
}

// CompletesAt reports whether count answers completes a question.
func CompletesAt(count int) bool {
	return count >= AnswersToComplete
}
