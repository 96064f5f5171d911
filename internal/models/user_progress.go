package models

import (
	"maps"
	"slices"
	"time"
)

// QuizScore is the stored result of the latest attempt on a quiz
type QuizScore struct {
	Score  int  `json:"score"`
	Passed bool `json:"passed"`
}

// UserProgress represents the user's enrollment in a course.
//
// At most one record exists per CourseID; having a record means being enrolled.
type UserProgress struct {
	ID               string               `json:"id"`
	CourseID         string               `json:"courseId"`
	CompletedLessons []string             `json:"completedLessons"`
	QuizScores       map[string]QuizScore `json:"quizScores"`
	Notes            map[string]string    `json:"notes"`
	LastAccessed     time.Time            `json:"lastAccessed"`
}

// Clone returns a deep copy of the progress record
func (p UserProgress) Clone() UserProgress {
	out := p
	out.CompletedLessons = slices.Clone(p.CompletedLessons)
	out.QuizScores = maps.Clone(p.QuizScores)
	out.Notes = maps.Clone(p.Notes)
	return out
}

// HasCompleted reports whether the lesson is in the completed set
func (p UserProgress) HasCompleted(lessonID string) bool {
	return slices.Contains(p.CompletedLessons, lessonID)
}

// CreateUserProgressRequest represents a request to create a progress record
type CreateUserProgressRequest struct {
	CourseID         string               `json:"courseId"`
	CompletedLessons []string             `json:"completedLessons,omitempty"`
	QuizScores       map[string]QuizScore `json:"quizScores,omitempty"`
	Notes            map[string]string    `json:"notes,omitempty"`
	LastAccessed     time.Time            `json:"lastAccessed"`
}

// UpdateUserProgressRequest represents a request to update a progress record (partial update).
// Collection fields replace the stored value as a whole when non-nil.
type UpdateUserProgressRequest struct {
	CompletedLessons []string             `json:"completedLessons,omitempty"`
	QuizScores       map[string]QuizScore `json:"quizScores,omitempty"`
	Notes            map[string]string    `json:"notes,omitempty"`
	LastAccessed     *time.Time           `json:"lastAccessed,omitempty"`
}

// OverallStats aggregates progress across all enrolled courses
type OverallStats struct {
	TotalCourses     int `json:"totalCourses"`
	CompletedCourses int `json:"completedCourses"`
	TotalLessons     int `json:"totalLessons"`
	CompletedLessons int `json:"completedLessons"`
	AverageProgress  int `json:"averageProgress"`
	Certificates     int `json:"certificates"`
}

// CourseProgressItem pairs an enrolled course with its progress
type CourseProgressItem struct {
	CourseID         string    `json:"courseId"`
	CourseTitle      string    `json:"courseTitle"`
	TotalLessons     int       `json:"totalLessons"`
	CompletedLessons int       `json:"completedLessons"`
	PercentComplete  float64   `json:"percentComplete"`
	RoundedPercent   int       `json:"roundedPercent"`
	Completed        bool      `json:"completed"`
	LastAccessed     time.Time `json:"lastAccessed"`
}
