package models

// LessonPosition describes where a lesson sits in a course's flattened lesson sequence
type LessonPosition struct {
	FlatIndex    int     `json:"flatIndex"`
	ModuleTitle  string  `json:"moduleTitle"`
	Lesson       Lesson  `json:"lesson"`
	PrevLesson   *Lesson `json:"prevLesson"`
	NextLesson   *Lesson `json:"nextLesson"`
	TotalLessons int     `json:"totalLessons"`
}

// LessonViewResponse represents everything needed to render a lesson for an enrolled user
type LessonViewResponse struct {
	CourseID    string         `json:"courseId"`
	CourseTitle string         `json:"courseTitle"`
	Position    LessonPosition `json:"position"`
	Completed   bool           `json:"completed"`
	Note        string         `json:"note"`
	Quiz        *Quiz          `json:"quiz,omitempty"`
	QuizScore   *QuizScore     `json:"quizScore,omitempty"`
}

// LessonCompletionResponse represents the outcome of completing a lesson
type LessonCompletionResponse struct {
	Progress   *UserProgress `json:"progress"`
	NextLesson *Lesson       `json:"nextLesson"`
	HasQuiz    bool          `json:"hasQuiz"`
}
