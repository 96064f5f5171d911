package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/learnhub/backend/internal/models"
	"go.uber.org/zap"
)

const defaultRecentActivityLimit = 5

type progressService struct {
	courseRepo   CourseRepository
	progressRepo UserProgressRepository
	logger       *zap.Logger
}

// NewProgressService creates a new progress service
func NewProgressService(courseRepo CourseRepository, progressRepo UserProgressRepository, logger *zap.Logger) *progressService {
	return &progressService{
		courseRepo:   courseRepo,
		progressRepo: progressRepo,
		logger:       logger,
	}
}

// enrollment joins a progress record with its course
type enrollment struct {
	course   models.Course
	progress models.UserProgress
}

// ListProgress retrieves every progress record
func (s *progressService) ListProgress(ctx context.Context) ([]models.UserProgress, error) {
	progress, err := s.progressRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	return progress, nil
}

// GetProgress retrieves the progress record of a course, or a NotFoundError if not enrolled
func (s *progressService) GetProgress(ctx context.Context, courseID string) (*models.UserProgress, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	progress, err := s.progressRepo.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	if progress == nil {
		return nil, models.NewNotFoundError("progress for course", courseID)
	}
	return progress, nil
}

// GetCourseProgressList retrieves every enrolled course with its completion state
func (s *progressService) GetCourseProgressList(ctx context.Context) ([]models.CourseProgressItem, error) {
	enrollments, err := s.enrollments(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]models.CourseProgressItem, 0, len(enrollments))
	for _, e := range enrollments {
		items = append(items, toCourseProgressItem(e))
	}
	return items, nil
}

// GetOverallStats aggregates lesson and course completion across enrolled courses
func (s *progressService) GetOverallStats(ctx context.Context) (*models.OverallStats, error) {
	enrollments, err := s.enrollments(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.OverallStats{TotalCourses: len(enrollments)}
	if len(enrollments) == 0 {
		return stats, nil
	}

	var percentSum float64
	for _, e := range enrollments {
		stats.TotalLessons += TotalLessons(e.course)
		stats.CompletedLessons += CompletedLessonCount(e.course, &e.progress)

		percent := PercentComplete(e.course, &e.progress)
		percentSum += percent
		if percent == 100 {
			stats.CompletedCourses++
		}
	}

	stats.AverageProgress = roundPercent(percentSum / float64(len(enrollments)))
	stats.Certificates = stats.CompletedCourses

	return stats, nil
}

// GetRecentActivity retrieves the most recently accessed enrolled courses, newest first.
// A non-positive limit falls back to 5.
func (s *progressService) GetRecentActivity(ctx context.Context, limit int) ([]models.CourseProgressItem, error) {
	if limit <= 0 {
		limit = defaultRecentActivityLimit
	}

	enrollments, err := s.enrollments(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]enrollment, 0, len(enrollments))
	for _, e := range enrollments {
		if !e.progress.LastAccessed.IsZero() {
			active = append(active, e)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].progress.LastAccessed.After(active[j].progress.LastAccessed)
	})
	if len(active) > limit {
		active = active[:limit]
	}

	items := make([]models.CourseProgressItem, 0, len(active))
	for _, e := range active {
		items = append(items, toCourseProgressItem(e))
	}
	return items, nil
}

// enrollments joins progress records with their courses, skipping records of deleted courses
func (s *progressService) enrollments(ctx context.Context) ([]enrollment, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to get courses", zap.Error(err))
		return nil, fmt.Errorf("failed to get courses: %w", err)
	}

	progress, err := s.progressRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to get progress", zap.Error(err))
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	return joinEnrollments(courses, progress), nil
}

func joinEnrollments(courses []models.Course, progress []models.UserProgress) []enrollment {
	byID := make(map[string]models.Course, len(courses))
	for _, c := range courses {
		byID[c.ID] = c
	}

	result := make([]enrollment, 0, len(progress))
	for _, p := range progress {
		course, ok := byID[p.CourseID]
		if !ok {
			continue
		}
		result = append(result, enrollment{course: course, progress: p})
	}
	return result
}

func toCourseProgressItem(e enrollment) models.CourseProgressItem {
	percent := PercentComplete(e.course, &e.progress)
	return models.CourseProgressItem{
		CourseID:         e.course.ID,
		CourseTitle:      e.course.Title,
		TotalLessons:     TotalLessons(e.course),
		CompletedLessons: CompletedLessonCount(e.course, &e.progress),
		PercentComplete:  percent,
		RoundedPercent:   roundPercent(percent),
		Completed:        percent == 100,
		LastAccessed:     e.progress.LastAccessed,
	}
}
