package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/learnhub/backend/internal/models"
	"go.uber.org/zap"
)

// UserProgressRepository is the interface that wraps methods for user progress data access
type UserProgressRepository interface {
	// GetAll retrieves every progress record
	GetAll(ctx context.Context) ([]models.UserProgress, error)
	// GetByID retrieves a progress record by its ID
	//
	// Returns a models.NotFoundError if it does not exist.
	GetByID(ctx context.Context, id string) (*models.UserProgress, error)
	// GetByCourseID retrieves the progress record of a course
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	//
	// Returns nil and no error if the user is not enrolled in the course.
	GetByCourseID(ctx context.Context, courseID string) (*models.UserProgress, error)
	// Create stores a new progress record (enrollment)
	//
	// Returns models.ErrAlreadyExists if the course already has a progress record.
	Create(ctx context.Context, req *models.CreateUserProgressRequest) (*models.UserProgress, error)
	// Update merges the non-nil fields of "req" onto the stored record
	//
	// Returns the updated record, or a models.NotFoundError if it does not exist.
	Update(ctx context.Context, id string, req *models.UpdateUserProgressRequest) (*models.UserProgress, error)
	// Delete removes a progress record
	Delete(ctx context.Context, id string) error
}

type learningService struct {
	courseRepo   CourseRepository
	quizRepo     QuizRepository
	progressRepo UserProgressRepository
	logger       *zap.Logger
	now          func() time.Time
}

// NewLearningService creates a new learning service
func NewLearningService(
	courseRepo CourseRepository,
	quizRepo QuizRepository,
	progressRepo UserProgressRepository,
	logger *zap.Logger,
) *learningService {
	return &learningService{
		courseRepo:   courseRepo,
		quizRepo:     quizRepo,
		progressRepo: progressRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// Enroll creates the progress record for a course.
//
// Enrolling twice is not an error: the existing record is returned and "created" is false.
func (s *learningService) Enroll(ctx context.Context, courseID string) (*models.UserProgress, bool, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, false, fmt.Errorf("failed to get course: %w", err)
	}

	existing, err := s.progressRepo.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get progress: %w", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	progress, err := s.progressRepo.Create(ctx, &models.CreateUserProgressRequest{
		CourseID:     courseID,
		LastAccessed: s.now(),
	})
	if errors.Is(err, models.ErrAlreadyExists) {
		// enrolled concurrently between the lookup and the create
		existing, err = s.progressRepo.GetByCourseID(ctx, courseID)
		if err != nil {
			return nil, false, fmt.Errorf("failed to get progress: %w", err)
		}
		if existing == nil {
			return nil, false, fmt.Errorf("failed to enroll: %w", models.ErrAlreadyExists)
		}
		return existing, false, nil
	}
	if err != nil {
		s.logger.Error("failed to enroll", zap.Error(err), zap.String("course_id", courseID))
		return nil, false, fmt.Errorf("failed to enroll: %w", err)
	}

	s.logger.Info("enrolled in course", zap.String("course_id", courseID), zap.String("progress_id", progress.ID))
	return progress, true, nil
}

// GetLessonView retrieves a lesson with its navigation, completion state, note and quiz
func (s *learningService) GetLessonView(ctx context.Context, courseID, lessonID string) (*models.LessonViewResponse, error) {
	course, pos, err := s.locate(ctx, courseID, lessonID)
	if err != nil {
		return nil, err
	}

	progress, err := requireEnrollment(ctx, s.progressRepo, courseID)
	if err != nil {
		return nil, err
	}

	quiz, err := s.quizRepo.GetByLessonID(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}

	view := &models.LessonViewResponse{
		CourseID:    course.ID,
		CourseTitle: course.Title,
		Position:    *pos,
		Completed:   progress.HasCompleted(lessonID),
		Note:        progress.Notes[lessonID],
		Quiz:        quiz,
	}
	if quiz != nil {
		if score, ok := progress.QuizScores[quiz.ID]; ok {
			view.QuizScore = &score
		}
	}

	return view, nil
}

// CompleteLesson marks a lesson as completed and returns the lesson that follows it.
// Completing an already completed lesson only refreshes the last access time.
func (s *learningService) CompleteLesson(ctx context.Context, courseID, lessonID string) (*models.LessonCompletionResponse, error) {
	_, pos, err := s.locate(ctx, courseID, lessonID)
	if err != nil {
		return nil, err
	}

	progress, err := requireEnrollment(ctx, s.progressRepo, courseID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	req := &models.UpdateUserProgressRequest{LastAccessed: &now}
	if !progress.HasCompleted(lessonID) {
		req.CompletedLessons = append(progress.CompletedLessons, lessonID)
	}

	updated, err := s.progressRepo.Update(ctx, progress.ID, req)
	if err != nil {
		s.logger.Error("failed to complete lesson", zap.Error(err), zap.String("lesson_id", lessonID))
		return nil, fmt.Errorf("failed to complete lesson: %w", err)
	}

	quiz, err := s.quizRepo.GetByLessonID(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}

	return &models.LessonCompletionResponse{
		Progress:   updated,
		NextLesson: pos.NextLesson,
		HasQuiz:    quiz != nil,
	}, nil
}

// UncompleteLesson removes a lesson from the completed set
func (s *learningService) UncompleteLesson(ctx context.Context, courseID, lessonID string) (*models.UserProgress, error) {
	if _, _, err := s.locate(ctx, courseID, lessonID); err != nil {
		return nil, err
	}

	progress, err := requireEnrollment(ctx, s.progressRepo, courseID)
	if err != nil {
		return nil, err
	}

	completed := make([]string, 0, len(progress.CompletedLessons))
	for _, id := range progress.CompletedLessons {
		if id != lessonID {
			completed = append(completed, id)
		}
	}

	now := s.now()
	updated, err := s.progressRepo.Update(ctx, progress.ID, &models.UpdateUserProgressRequest{
		CompletedLessons: completed,
		LastAccessed:     &now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to uncomplete lesson: %w", err)
	}
	return updated, nil
}

// locate loads the course and resolves the lesson position inside it
func (s *learningService) locate(ctx context.Context, courseID, lessonID string) (*models.Course, *models.LessonPosition, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get course: %w", err)
	}

	pos, err := LocateLesson(*course, lessonID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get lesson: %w", err)
	}

	return course, pos, nil
}

// requireEnrollment returns the course's progress record or models.ErrNotEnrolled
func requireEnrollment(ctx context.Context, repo UserProgressRepository, courseID string) (*models.UserProgress, error) {
	progress, err := repo.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	if progress == nil {
		return nil, fmt.Errorf("%w: %s", models.ErrNotEnrolled, courseID)
	}
	return progress, nil
}
