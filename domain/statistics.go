package domain

import (
	"math"

	"github.com/google/uuid"
)

type Statistics struct {
	TotalQuestions     int `json:"total_questions"`
	CorrectAnswers     int `json:"correct_answers"`
	QuestionsAsked     int `json:"questions_asked"`
	QuestionsAnswered  int `json:"questions_answered"`
	CompatibilityScore int `json:"compatibility_score"`
}

// ComputeStatistics tallies userID's figures over every completed question in the pool.
// The score denominator is the whole completed pool, not only questions userID took part in.
func ComputeStatistics(userID uuid.UUID, completed []Question) Statistics {
	stats := Statistics{TotalQuestions: len(completed)}

	for _, q := range completed {
		if q.CreatorID == userID {
			stats.QuestionsAsked++
		}
		for _, a := range q.Answers {
			if a.UserID != userID {
				continue
			}
			stats.QuestionsAnswered++
			if a.IsCorrect {
				stats.CorrectAnswers++
			}
			break
		}
	}

	if stats.TotalQuestions > 0 {
		stats.CompatibilityScore = int(math.Round(float64(stats.CorrectAnswers) / float64(stats.TotalQuestions) * 100))
	}
	return stats
}
