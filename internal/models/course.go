package models

import "slices"

// Difficulty represents the difficulty level of a course
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// IsValid reports whether the difficulty is one of the known levels
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Course represents a course in the catalog.
//
// The order of Modules, and of Lessons inside each module, defines the
// canonical lesson traversal order.
type Course struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Instructor  string     `json:"instructor"`
	Category    string     `json:"category"`
	Difficulty  Difficulty `json:"difficulty"`
	Duration    int        `json:"duration"`
	Thumbnail   string     `json:"thumbnail,omitempty"`
	Modules     []Module   `json:"modules"`
}

// Module represents an ordered group of lessons inside a course
type Module struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

// Lesson represents a single lesson; its ID is unique within a course
type Lesson struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	Duration int    `json:"duration"`
	Content  string `json:"content"`
	VideoURL string `json:"videoUrl,omitempty"`
}

// Clone returns a deep copy of the course
func (c Course) Clone() Course {
	out := c
	if c.Modules != nil {
		out.Modules = make([]Module, len(c.Modules))
		for i, m := range c.Modules {
			out.Modules[i] = m
			out.Modules[i].Lessons = slices.Clone(m.Lessons)
		}
	}
	return out
}

// CreateCourseRequest represents a request to create a course
type CreateCourseRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Instructor  string     `json:"instructor"`
	Category    string     `json:"category"`
	Difficulty  Difficulty `json:"difficulty"`
	Duration    int        `json:"duration"`
	Thumbnail   string     `json:"thumbnail,omitempty"`
	Modules     []Module   `json:"modules,omitempty"`
}

// UpdateCourseRequest represents a request to update a course (partial update)
type UpdateCourseRequest struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Instructor  *string     `json:"instructor,omitempty"`
	Category    *string     `json:"category,omitempty"`
	Difficulty  *Difficulty `json:"difficulty,omitempty"`
	Duration    *int        `json:"duration,omitempty"`
	Thumbnail   *string     `json:"thumbnail,omitempty"`
	Modules     []Module    `json:"modules,omitempty"`
}

// CourseFilter holds browse filters; empty or "all" disables a filter
type CourseFilter struct {
	Search     string
	Category   string
	Difficulty string
}

// CourseDetailResponse represents a course together with the user's enrollment state
type CourseDetailResponse struct {
	Course
	Enrolled        bool    `json:"enrolled"`
	TotalLessons    int     `json:"totalLessons"`
	TotalDuration   int     `json:"totalDuration"`
	PercentComplete float64 `json:"percentComplete"`
}
