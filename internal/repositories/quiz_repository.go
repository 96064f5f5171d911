package repositories

import (
	"context"
	"fmt"

	"github.com/learnhub/backend/internal/models"
)

type quizRepository struct {
	store *memoryStore[models.Quiz]
	opts  options
}

// NewQuizRepository creates a new quiz repository seeded with the given quizzes
func NewQuizRepository(seed []models.Quiz, opts ...Option) *quizRepository {
	o := applyOptions(opts)
	return &quizRepository{
		store: newMemoryStore("quiz", seed,
			func(q models.Quiz) string { return q.ID },
			models.Quiz.Clone,
			o.latency,
		),
		opts: o,
	}
}

// GetAll retrieves every quiz
func (r *quizRepository) GetAll(ctx context.Context) ([]models.Quiz, error) {
	quizzes, err := r.store.all(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get quizzes: %w", err)
	}
	return quizzes, nil
}

// GetByID retrieves a quiz by its ID
func (r *quizRepository) GetByID(ctx context.Context, id string) (*models.Quiz, error) {
	return r.store.get(ctx, id)
}

// GetByLessonID retrieves the quiz attached to a lesson.
// A lesson without a quiz yields nil and no error.
func (r *quizRepository) GetByLessonID(ctx context.Context, lessonID string) (*models.Quiz, error) {
	quiz, err := r.store.find(ctx, func(q models.Quiz) bool { return q.LessonID == lessonID })
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz by lesson: %w", err)
	}
	return quiz, nil
}

// Create stores a new quiz with a fresh ID
func (r *quizRepository) Create(ctx context.Context, req *models.CreateQuizRequest) (*models.Quiz, error) {
	quiz := models.Quiz{
		ID:           r.opts.newID(),
		LessonID:     req.LessonID,
		PassingScore: req.PassingScore,
		Questions:    req.Questions,
	}.Clone()
	if quiz.PassingScore == 0 {
		quiz.PassingScore = models.DefaultPassingScore
	}
	normalizeQuiz(&quiz)

	created, err := r.store.insert(ctx, quiz, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}
	return created, nil
}

// Update merges the non-nil fields of req onto the stored quiz
func (r *quizRepository) Update(ctx context.Context, id string, req *models.UpdateQuizRequest) (*models.Quiz, error) {
	return r.store.modify(ctx, id, func(q *models.Quiz) {
		if req.LessonID != nil {
			q.LessonID = *req.LessonID
		}
		if req.PassingScore != nil {
			q.PassingScore = *req.PassingScore
		}
		if req.Questions != nil {
			q.Questions = models.Quiz{Questions: req.Questions}.Clone().Questions
			normalizeQuiz(q)
		}
	})
}

// Delete removes a quiz
func (r *quizRepository) Delete(ctx context.Context, id string) error {
	return r.store.remove(ctx, id)
}

func normalizeQuiz(q *models.Quiz) {
	if q.Questions == nil {
		q.Questions = []models.Question{}
	}
	for i := range q.Questions {
		if q.Questions[i].Options == nil {
			q.Questions[i].Options = []string{}
		}
	}
}
