package models

import "slices"

// DefaultPassingScore is applied to quizzes created without a passing score
const DefaultPassingScore = 70

// Quiz represents a quiz attached to at most one lesson
type Quiz struct {
	ID           string     `json:"id"`
	LessonID     string     `json:"lessonId"`
	PassingScore int        `json:"passingScore"`
	Questions    []Question `json:"questions"`
}

// Question represents a multiple-choice question; CorrectAnswer indexes Options
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// Clone returns a deep copy of the quiz
func (q Quiz) Clone() Quiz {
	out := q
	if q.Questions != nil {
		out.Questions = make([]Question, len(q.Questions))
		for i, question := range q.Questions {
			out.Questions[i] = question
			out.Questions[i].Options = slices.Clone(question.Options)
		}
	}
	return out
}

// QuizResult is the outcome of grading an answer set
type QuizResult struct {
	Score          int  `json:"score"`
	Passed         bool `json:"passed"`
	CorrectCount   int  `json:"correctCount"`
	TotalQuestions int  `json:"totalQuestions"`
}

// CreateQuizRequest represents a request to create a quiz
type CreateQuizRequest struct {
	LessonID     string     `json:"lessonId"`
	PassingScore int        `json:"passingScore"`
	Questions    []Question `json:"questions,omitempty"`
}

// UpdateQuizRequest represents a request to update a quiz (partial update)
type UpdateQuizRequest struct {
	LessonID     *string    `json:"lessonId,omitempty"`
	PassingScore *int       `json:"passingScore,omitempty"`
	Questions    []Question `json:"questions,omitempty"`
}

// QuizAnswersRequest carries the selected option index per question index
type QuizAnswersRequest struct {
	Answers map[int]int `json:"answers"`
}

// QuizSubmissionResponse represents the stored result of a quiz submission
type QuizSubmissionResponse struct {
	QuizResult
	PassingScore int           `json:"passingScore"`
	Progress     *UserProgress `json:"progress"`
}
