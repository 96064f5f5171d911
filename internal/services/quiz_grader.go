package services

import (
	"math"

	"github.com/learnhub/backend/internal/models"
)

// GradeQuiz scores the selected answers against the quiz answer key.
//
// "selected" maps a 0-based question index to the chosen option index.
// A missing entry counts as a wrong answer and entries for indexes outside the quiz are ignored,
// so the result can also serve as a preview score for a partially answered quiz.
// A quiz without questions scores 0.
func GradeQuiz(quiz models.Quiz, selected map[int]int) models.QuizResult {
	total := len(quiz.Questions)
	correct := 0
	for i, question := range quiz.Questions {
		if answer, ok := selected[i]; ok && answer == question.CorrectAnswer {
			correct++
		}
	}

	score := 0
	if total > 0 {
		score = int(math.Floor(float64(correct)/float64(total)*100 + 0.5))
	}

	return models.QuizResult{
		Score:          score,
		Passed:         score >= quiz.PassingScore,
		CorrectCount:   correct,
		TotalQuestions: total,
	}
}

// IsAnswerSetComplete reports whether every question of the quiz has a selected answer
func IsAnswerSetComplete(quiz models.Quiz, selected map[int]int) bool {
	for i := range quiz.Questions {
		if _, ok := selected[i]; !ok {
			return false
		}
	}
	return true
}
