package services

import (
	"github.com/learnhub/backend/internal/models"
)

// LessonSequence is a course's lessons flattened once in module order, then lesson order
type LessonSequence struct {
	lessons      []models.Lesson
	moduleTitles []string
	index        map[string]int
}

// NewLessonSequence flattens the modules of the course into a single ordered sequence.
// If a lesson ID repeats, lookups resolve to its first occurrence.
func NewLessonSequence(course models.Course) *LessonSequence {
	total := TotalLessons(course)
	seq := &LessonSequence{
		lessons:      make([]models.Lesson, 0, total),
		moduleTitles: make([]string, 0, total),
		index:        make(map[string]int, total),
	}

	for _, module := range course.Modules {
		for _, lesson := range module.Lessons {
			if _, exists := seq.index[lesson.ID]; !exists {
				seq.index[lesson.ID] = len(seq.lessons)
			}
			seq.lessons = append(seq.lessons, lesson)
			seq.moduleTitles = append(seq.moduleTitles, module.Title)
		}
	}

	return seq
}

// Len returns the number of lessons in the sequence
func (s *LessonSequence) Len() int {
	return len(s.lessons)
}

// Lessons returns a copy of the flattened lessons
func (s *LessonSequence) Lessons() []models.Lesson {
	return append([]models.Lesson(nil), s.lessons...)
}

// Contains reports whether the lesson belongs to the course
func (s *LessonSequence) Contains(lessonID string) bool {
	_, ok := s.index[lessonID]
	return ok
}

// Locate resolves the position of a lesson and its neighbours.
//
// Returns a NotFoundError if the lesson is not part of the course.
func (s *LessonSequence) Locate(lessonID string) (*models.LessonPosition, error) {
	idx, ok := s.index[lessonID]
	if !ok {
		return nil, models.NewNotFoundError("lesson", lessonID)
	}

	pos := &models.LessonPosition{
		FlatIndex:    idx,
		ModuleTitle:  s.moduleTitles[idx],
		Lesson:       s.lessons[idx],
		TotalLessons: len(s.lessons),
	}
	if idx > 0 {
		prev := s.lessons[idx-1]
		pos.PrevLesson = &prev
	}
	if idx < len(s.lessons)-1 {
		next := s.lessons[idx+1]
		pos.NextLesson = &next
	}

	return pos, nil
}

// LocateLesson is a shorthand for NewLessonSequence(course).Locate(lessonID)
func LocateLesson(course models.Course, lessonID string) (*models.LessonPosition, error) {
	return NewLessonSequence(course).Locate(lessonID)
}
