package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ChoiceStatus string

const (
	ChoiceActive    ChoiceStatus = "active"
	ChoiceCompleted ChoiceStatus = "completed"
)

const (
	MinOptions           = 2
	SelectionsToComplete = 2
)

// ChoiceQuestion is a room-scoped multiple-choice question. Each seated player
// contributes an option set and picks from the other player's set.
type ChoiceQuestion struct {
	ID            uuid.UUID    `json:"id"`
	RoomID        uuid.UUID    `json:"room_id"`
	AskedByUserID uuid.UUID    `json:"asked_by_user_id"`
	Text          string       `json:"question_text"`
	Status        ChoiceStatus `json:"status"`
	AskedBy       *UserSummary `json:"asked_by,omitempty"`
	Options       []Option     `json:"options"`
	Selections    []Selection  `json:"selections"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

type Option struct {
	ID         uuid.UUID    `json:"id"`
	QuestionID uuid.UUID    `json:"question_id"`
	UserID     uuid.UUID    `json:"user_id"`
	Text       string       `json:"option_text"`
	IsCorrect  bool         `json:"is_correct"`
	User       *UserSummary `json:"user,omitempty"`
}

type OptionInput struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

type Selection struct {
	ID               uuid.UUID    `json:"id"`
	QuestionID       uuid.UUID    `json:"question_id"`
	UserID           uuid.UUID    `json:"user_id"`
	SelectedOptionID uuid.UUID    `json:"selected_option_id"`
	IsCorrect        bool         `json:"is_correct"`
	User             *UserSummary `json:"user,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
}

// NormalizeOptions trims option texts, drops the empty ones and checks what remains
// holds at least MinOptions entries with exactly one marked correct.
func NormalizeOptions(in []OptionInput) ([]OptionInput, error) {
	out := make([]OptionInput, 0, len(in))
	for _, o := range in {
		text := strings.TrimSpace(o.Text)
		if text == "" {
			continue
		}
		out = append(out, OptionInput{Text: text, IsCorrect: o.IsCorrect})
	}

	if len(out) < MinOptions {
		return nil, fmt.Errorf("%w: at least %d non-empty options are required", ErrInvalidInput, MinOptions)
	}

	correct := 0
	for _, o := range out {
		if o.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		return nil, fmt.Errorf("%w: exactly one option must be marked correct", ErrInvalidInput)
	}
	return out, nil
}

// CheckSelection rejects a pick of the caller's own option.
func CheckSelection(option Option, userID uuid.UUID) error {
	if option.UserID == userID {
		return fmt.Errorf("%w: you cannot select your own option", ErrInvalidInput)
	}
	return nil
}
