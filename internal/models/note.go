package models

import "time"

// Note represents a lesson note enriched with course and lesson titles
type Note struct {
	ID           string    `json:"id"`
	CourseID     string    `json:"courseId"`
	LessonID     string    `json:"lessonId"`
	CourseName   string    `json:"courseName"`
	LessonTitle  string    `json:"lessonTitle"`
	Content      string    `json:"content"`
	LastModified time.Time `json:"lastModified"`
}

// NoteFilter narrows the notes listing; empty or "all" CourseID disables the course filter
type NoteFilter struct {
	Search   string
	CourseID string
}

// SaveNoteRequest represents a request to save a lesson note
type SaveNoteRequest struct {
	Content string `json:"content"`
}
