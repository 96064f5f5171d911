package services

import (
	"math"

	"github.com/learnhub/backend/internal/models"
)

// CourseLessonIDs returns the set of lesson IDs across all modules of the course
func CourseLessonIDs(course models.Course) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, module := range course.Modules {
		for _, lesson := range module.Lessons {
			ids[lesson.ID] = struct{}{}
		}
	}
	return ids
}

// TotalLessons returns the number of lessons across all modules of the course
func TotalLessons(course models.Course) int {
	total := 0
	for _, module := range course.Modules {
		total += len(module.Lessons)
	}
	return total
}

// CompletedLessonCount counts the completed lessons that belong to the course.
// Duplicate entries in the completed set are counted once.
func CompletedLessonCount(course models.Course, progress *models.UserProgress) int {
	if progress == nil {
		return 0
	}

	ids := CourseLessonIDs(course)
	seen := make(map[string]struct{}, len(progress.CompletedLessons))
	for _, id := range progress.CompletedLessons {
		if _, ok := ids[id]; !ok {
			continue
		}
		seen[id] = struct{}{}
	}
	return len(seen)
}

// PercentComplete returns the unrounded completion percentage of the course in [0, 100].
//
// A nil progress means the user is not enrolled and yields 0, as does a course without lessons.
// Callers round for display; course completion is detected by comparing to exactly 100.
func PercentComplete(course models.Course, progress *models.UserProgress) float64 {
	total := TotalLessons(course)
	if progress == nil || total == 0 {
		return 0
	}

	percent := float64(CompletedLessonCount(course, progress)) / float64(total) * 100
	return math.Min(percent, 100)
}

// IsCourseCompleted reports whether every lesson of a non-empty course is completed
func IsCourseCompleted(course models.Course, progress *models.UserProgress) bool {
	return PercentComplete(course, progress) == 100
}

// roundPercent rounds half up for display
func roundPercent(percent float64) int {
	return int(math.Floor(percent + 0.5))
}
