package services

import (
	"context"
	"fmt"
	"time"

	"github.com/learnhub/backend/internal/models"
	"go.uber.org/zap"
)

// QuizRepository is the interface that wraps methods for quiz data access
type QuizRepository interface {
	// GetAll retrieves every quiz
	GetAll(ctx context.Context) ([]models.Quiz, error)
	// GetByID retrieves a quiz by its ID
	//
	// Returns a models.NotFoundError if it does not exist.
	GetByID(ctx context.Context, id string) (*models.Quiz, error)
	// GetByLessonID retrieves the quiz attached to a lesson
	//
	// Returns nil and no error if the lesson has no quiz.
	GetByLessonID(ctx context.Context, lessonID string) (*models.Quiz, error)
	// Create stores a new quiz; a zero passing score defaults to models.DefaultPassingScore
	Create(ctx context.Context, req *models.CreateQuizRequest) (*models.Quiz, error)
	// Update merges the non-nil fields of "req" onto the stored quiz
	Update(ctx context.Context, id string, req *models.UpdateQuizRequest) (*models.Quiz, error)
	// Delete removes a quiz
	Delete(ctx context.Context, id string) error
}

type quizService struct {
	quizRepo     QuizRepository
	courseRepo   CourseRepository
	progressRepo UserProgressRepository
	logger       *zap.Logger
	now          func() time.Time
}

// NewQuizService creates a new quiz service
func NewQuizService(
	quizRepo QuizRepository,
	courseRepo CourseRepository,
	progressRepo UserProgressRepository,
	logger *zap.Logger,
) *quizService {
	return &quizService{
		quizRepo:     quizRepo,
		courseRepo:   courseRepo,
		progressRepo: progressRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// GetQuiz retrieves a quiz by its ID
func (s *quizService) GetQuiz(ctx context.Context, id string) (*models.Quiz, error) {
	quiz, err := s.quizRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}
	return quiz, nil
}

// GetQuizForLesson retrieves the quiz attached to a lesson, or a NotFoundError if there is none
func (s *quizService) GetQuizForLesson(ctx context.Context, lessonID string) (*models.Quiz, error) {
	quiz, err := s.quizRepo.GetByLessonID(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}
	if quiz == nil {
		return nil, models.NewNotFoundError("quiz for lesson", lessonID)
	}
	return quiz, nil
}

// CreateQuiz validates and stores a new quiz; a lesson can carry at most one quiz
func (s *quizService) CreateQuiz(ctx context.Context, req *models.CreateQuizRequest) (*models.Quiz, error) {
	if req.LessonID == "" {
		return nil, fmt.Errorf("%w: lessonId is required", models.ErrInvalidInput)
	}
	if err := validatePassingScore(req.PassingScore); err != nil {
		return nil, err
	}
	if err := validateQuestions(req.Questions); err != nil {
		return nil, err
	}
	if err := s.ensureLessonFree(ctx, req.LessonID, ""); err != nil {
		return nil, err
	}

	quiz, err := s.quizRepo.Create(ctx, req)
	if err != nil {
		s.logger.Error("failed to create quiz", zap.Error(err))
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}
	return quiz, nil
}

// UpdateQuiz validates and applies a partial quiz update
func (s *quizService) UpdateQuiz(ctx context.Context, id string, req *models.UpdateQuizRequest) (*models.Quiz, error) {
	if req.LessonID != nil {
		if *req.LessonID == "" {
			return nil, fmt.Errorf("%w: lessonId must not be empty", models.ErrInvalidInput)
		}
		if err := s.ensureLessonFree(ctx, *req.LessonID, id); err != nil {
			return nil, err
		}
	}
	if req.PassingScore != nil {
		if err := validatePassingScore(*req.PassingScore); err != nil {
			return nil, err
		}
	}
	if err := validateQuestions(req.Questions); err != nil {
		return nil, err
	}

	quiz, err := s.quizRepo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update quiz: %w", err)
	}
	return quiz, nil
}

// DeleteQuiz removes a quiz
func (s *quizService) DeleteQuiz(ctx context.Context, id string) error {
	if err := s.quizRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete quiz: %w", err)
	}
	return nil
}

// PreviewQuiz grades an answer set without storing the result; unanswered questions count as wrong
func (s *quizService) PreviewQuiz(ctx context.Context, quizID string, answers map[int]int) (*models.QuizResult, error) {
	quiz, err := s.quizRepo.GetByID(ctx, quizID)
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}

	result := GradeQuiz(*quiz, answers)
	return &result, nil
}

// SubmitQuiz grades a fully answered quiz attempt and stores the score in the course progress.
//
// The quiz's lesson must belong to the course and the user must be enrolled in it.
// Every question must have an answer, otherwise models.ErrIncompleteSubmission is returned.
// A new attempt overwrites the stored score of the previous one.
func (s *quizService) SubmitQuiz(ctx context.Context, courseID, quizID string, answers map[int]int) (*models.QuizSubmissionResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	quiz, err := s.quizRepo.GetByID(ctx, quizID)
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}

	if !NewLessonSequence(*course).Contains(quiz.LessonID) {
		return nil, fmt.Errorf("failed to get lesson: %w", models.NewNotFoundError("lesson", quiz.LessonID))
	}

	progress, err := requireEnrollment(ctx, s.progressRepo, courseID)
	if err != nil {
		return nil, err
	}

	if !IsAnswerSetComplete(*quiz, answers) {
		return nil, models.ErrIncompleteSubmission
	}

	result := GradeQuiz(*quiz, answers)

	scores := progress.QuizScores
	if scores == nil {
		scores = make(map[string]models.QuizScore)
	}
	scores[quiz.ID] = models.QuizScore{Score: result.Score, Passed: result.Passed}

	now := s.now()
	updated, err := s.progressRepo.Update(ctx, progress.ID, &models.UpdateUserProgressRequest{
		QuizScores:   scores,
		LastAccessed: &now,
	})
	if err != nil {
		s.logger.Error("failed to store quiz score", zap.Error(err), zap.String("quiz_id", quizID))
		return nil, fmt.Errorf("failed to store quiz score: %w", err)
	}

	s.logger.Info("quiz submitted",
		zap.String("quiz_id", quiz.ID),
		zap.Int("score", result.Score),
		zap.Bool("passed", result.Passed),
	)

	return &models.QuizSubmissionResponse{
		QuizResult:   result,
		PassingScore: quiz.PassingScore,
		Progress:     updated,
	}, nil
}

// ensureLessonFree fails with models.ErrAlreadyExists if another quiz is attached to the lesson
func (s *quizService) ensureLessonFree(ctx context.Context, lessonID, quizID string) error {
	existing, err := s.quizRepo.GetByLessonID(ctx, lessonID)
	if err != nil {
		return fmt.Errorf("failed to get quiz: %w", err)
	}
	if existing != nil && existing.ID != quizID {
		return fmt.Errorf("%w: lesson %s already has quiz %s", models.ErrAlreadyExists, lessonID, existing.ID)
	}
	return nil
}

func validatePassingScore(score int) error {
	if score < 0 || score > 100 {
		return fmt.Errorf("%w: passingScore must be between 0 and 100", models.ErrInvalidInput)
	}
	return nil
}

func validateQuestions(questions []models.Question) error {
	for i, q := range questions {
		if len(q.Options) == 0 {
			return fmt.Errorf("%w: question %d has no options", models.ErrInvalidInput, i)
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return fmt.Errorf("%w: question %d correctAnswer out of range", models.ErrInvalidInput, i)
		}
	}
	return nil
}
