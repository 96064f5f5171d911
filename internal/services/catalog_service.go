package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/learnhub/backend/internal/models"
	"go.uber.org/zap"
)

// CourseRepository is the interface that wraps methods for course data access
type CourseRepository interface {
	// GetAll retrieves every course in catalog order
	//
	// "ctx" is the context for the request.
	//
	// Returns a snapshot of all courses and an error if any.
	GetAll(ctx context.Context) ([]models.Course, error)
	// GetByID retrieves a course by its ID
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	//
	// Returns the course, or a models.NotFoundError if it does not exist.
	GetByID(ctx context.Context, id string) (*models.Course, error)
	// Create stores a new course under a freshly generated ID
	//
	// "ctx" is the context for the request.
	// "req" holds the course fields; missing modules default to an empty list.
	//
	// Returns the stored course and an error if any.
	Create(ctx context.Context, req *models.CreateCourseRequest) (*models.Course, error)
	// Update merges the non-nil fields of "req" onto the stored course
	//
	// Returns the updated course, or a models.NotFoundError if it does not exist.
	Update(ctx context.Context, id string, req *models.UpdateCourseRequest) (*models.Course, error)
	// Delete removes a course
	//
	// Returns a models.NotFoundError if it does not exist.
	Delete(ctx context.Context, id string) error
}

const filterAll = "all"

type catalogService struct {
	courseRepo   CourseRepository
	progressRepo UserProgressRepository
	logger       *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(courseRepo CourseRepository, progressRepo UserProgressRepository, logger *zap.Logger) *catalogService {
	return &catalogService{
		courseRepo:   courseRepo,
		progressRepo: progressRepo,
		logger:       logger,
	}
}

// ListCourses retrieves the courses matching the browse filter
//
// Search matches title, description or instructor case-insensitively.
// Category and difficulty match exactly; an empty value or "all" disables them.
func (s *catalogService) ListCourses(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to get courses", zap.Error(err))
		return nil, fmt.Errorf("failed to get courses: %w", err)
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	result := make([]models.Course, 0, len(courses))
	for _, course := range courses {
		if search != "" &&
			!strings.Contains(strings.ToLower(course.Title), search) &&
			!strings.Contains(strings.ToLower(course.Description), search) &&
			!strings.Contains(strings.ToLower(course.Instructor), search) {
			continue
		}
		if !matchesFilter(filter.Category, course.Category) {
			continue
		}
		if !matchesFilter(filter.Difficulty, string(course.Difficulty)) {
			continue
		}
		result = append(result, course)
	}

	return result, nil
}

// GetCourse retrieves a course by its ID
func (s *catalogService) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return course, nil
}

// GetCourseDetail retrieves a course with its lesson totals and the user's enrollment state
func (s *catalogService) GetCourseDetail(ctx context.Context, id string) (*models.CourseDetailResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	progress, err := s.progressRepo.GetByCourseID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	totalDuration := 0
	for _, module := range course.Modules {
		for _, lesson := range module.Lessons {
			totalDuration += lesson.Duration
		}
	}

	return &models.CourseDetailResponse{
		Course:          *course,
		Enrolled:        progress != nil,
		TotalLessons:    TotalLessons(*course),
		TotalDuration:   totalDuration,
		PercentComplete: PercentComplete(*course, progress),
	}, nil
}

// CreateCourse validates and stores a new course
func (s *catalogService) CreateCourse(ctx context.Context, req *models.CreateCourseRequest) (*models.Course, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", models.ErrInvalidInput)
	}
	if req.Difficulty != "" && !req.Difficulty.IsValid() {
		return nil, fmt.Errorf("%w: invalid difficulty: %s", models.ErrInvalidInput, req.Difficulty)
	}
	if req.Duration < 0 {
		return nil, fmt.Errorf("%w: duration must not be negative", models.ErrInvalidInput)
	}
	if err := validateModules(req.Modules); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.Create(ctx, req)
	if err != nil {
		s.logger.Error("failed to create course", zap.Error(err))
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	s.logger.Info("course created", zap.String("course_id", course.ID))
	return course, nil
}

// UpdateCourse validates and applies a partial course update
func (s *catalogService) UpdateCourse(ctx context.Context, id string, req *models.UpdateCourseRequest) (*models.Course, error) {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, fmt.Errorf("%w: title must not be empty", models.ErrInvalidInput)
	}
	if req.Difficulty != nil && !req.Difficulty.IsValid() {
		return nil, fmt.Errorf("%w: invalid difficulty: %s", models.ErrInvalidInput, *req.Difficulty)
	}
	if req.Duration != nil && *req.Duration < 0 {
		return nil, fmt.Errorf("%w: duration must not be negative", models.ErrInvalidInput)
	}
	if err := validateModules(req.Modules); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update course: %w", err)
	}
	return course, nil
}

// DeleteCourse removes a course
func (s *catalogService) DeleteCourse(ctx context.Context, id string) error {
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			s.logger.Error("failed to delete course", zap.Error(err), zap.String("course_id", id))
		}
		return fmt.Errorf("failed to delete course: %w", err)
	}
	return nil
}

// validateModules checks that lesson IDs are present and unique across all modules
func validateModules(modules []models.Module) error {
	seen := make(map[string]struct{})
	for _, module := range modules {
		for _, lesson := range module.Lessons {
			if lesson.ID == "" {
				return fmt.Errorf("%w: lesson id is required", models.ErrInvalidInput)
			}
			if _, ok := seen[lesson.ID]; ok {
				return fmt.Errorf("%w: duplicate lesson id: %s", models.ErrInvalidInput, lesson.ID)
			}
			seen[lesson.ID] = struct{}{}
		}
	}
	return nil
}

func matchesFilter(filter, value string) bool {
	return filter == "" || filter == filterAll || filter == value
}
