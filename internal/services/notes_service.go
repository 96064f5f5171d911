package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/learnhub/backend/internal/models"
	"go.uber.org/zap"
)

type notesService struct {
	courseRepo   CourseRepository
	progressRepo UserProgressRepository
	logger       *zap.Logger
	now          func() time.Time
}

// NewNotesService creates a new notes service
func NewNotesService(courseRepo CourseRepository, progressRepo UserProgressRepository, logger *zap.Logger) *notesService {
	return &notesService{
		courseRepo:   courseRepo,
		progressRepo: progressRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// SaveNote stores the note of a lesson, replacing any previous one
func (s *notesService) SaveNote(ctx context.Context, courseID, lessonID, content string) (*models.UserProgress, error) {
	progress, err := s.enrolledLesson(ctx, courseID, lessonID)
	if err != nil {
		return nil, err
	}

	notes := progress.Notes
	if notes == nil {
		notes = make(map[string]string)
	}
	notes[lessonID] = content

	return s.storeNotes(ctx, progress.ID, notes)
}

// DeleteNote removes the note of a lesson, or returns a NotFoundError if there is none
func (s *notesService) DeleteNote(ctx context.Context, courseID, lessonID string) (*models.UserProgress, error) {
	progress, err := s.enrolledLesson(ctx, courseID, lessonID)
	if err != nil {
		return nil, err
	}

	if _, ok := progress.Notes[lessonID]; !ok {
		return nil, models.NewNotFoundError("note", lessonID)
	}
	delete(progress.Notes, lessonID)

	return s.storeNotes(ctx, progress.ID, progress.Notes)
}

// ListNotes retrieves the non-blank notes of every enrolled course, most recently modified first.
//
// Notes of lessons no longer present in their course are skipped.
// Search matches note content, course title or lesson title case-insensitively.
func (s *notesService) ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get courses: %w", err)
	}
	progress, err := s.progressRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	notes := make([]models.Note, 0)
	for _, e := range joinEnrollments(courses, progress) {
		if !matchesFilter(filter.CourseID, e.course.ID) {
			continue
		}

		lessons := make(map[string]models.Lesson)
		for _, lesson := range NewLessonSequence(e.course).Lessons() {
			lessons[lesson.ID] = lesson
		}

		for lessonID, content := range e.progress.Notes {
			if strings.TrimSpace(content) == "" {
				continue
			}
			lesson, ok := lessons[lessonID]
			if !ok {
				continue
			}
			if search != "" &&
				!strings.Contains(strings.ToLower(content), search) &&
				!strings.Contains(strings.ToLower(e.course.Title), search) &&
				!strings.Contains(strings.ToLower(lesson.Title), search) {
				continue
			}

			notes = append(notes, models.Note{
				ID:           e.course.ID + "-" + lessonID,
				CourseID:     e.course.ID,
				LessonID:     lessonID,
				CourseName:   e.course.Title,
				LessonTitle:  lesson.Title,
				Content:      content,
				LastModified: e.progress.LastAccessed,
			})
		}
	}

	sort.SliceStable(notes, func(i, j int) bool {
		if !notes[i].LastModified.Equal(notes[j].LastModified) {
			return notes[i].LastModified.After(notes[j].LastModified)
		}
		return notes[i].ID < notes[j].ID
	})

	return notes, nil
}

// enrolledLesson checks that the lesson belongs to the course and returns the course's progress
func (s *notesService) enrolledLesson(ctx context.Context, courseID, lessonID string) (*models.UserProgress, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	if !NewLessonSequence(*course).Contains(lessonID) {
		return nil, fmt.Errorf("failed to get lesson: %w", models.NewNotFoundError("lesson", lessonID))
	}
	return requireEnrollment(ctx, s.progressRepo, courseID)
}

func (s *notesService) storeNotes(ctx context.Context, progressID string, notes map[string]string) (*models.UserProgress, error) {
	now := s.now()
	updated, err := s.progressRepo.Update(ctx, progressID, &models.UpdateUserProgressRequest{
		Notes:        notes,
		LastAccessed: &now,
	})
	if err != nil {
		s.logger.Error("failed to store notes", zap.Error(err), zap.String("progress_id", progressID))
		return nil, fmt.Errorf("failed to store notes: %w", err)
	}
	return updated, nil
}
