package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/learnhub/backend/internal/models"
	"github.com/learnhub/backend/internal/repositories"
	"go.uber.org/zap"
)

var (
	testNow    = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	errStorage = errors.New("storage error")
)

func lesson(id string) models.Lesson {
	return models.Lesson{ID: id, Title: "Lesson " + id, Type: "reading", Duration: 10}
}

// twoModuleCourse has lessons [A, B] in module1 and [C] in module2
func twoModuleCourse() models.Course {
	return models.Course{
		ID:          "c1",
		Title:       "Go Basics",
		Description: "Learn Go",
		Instructor:  "Maria",
		Category:    "programming",
		Difficulty:  models.DifficultyBeginner,
		Modules: []models.Module{
			{ID: "m1", Title: "module1", Lessons: []models.Lesson{lesson("A"), lesson("B")}},
			{ID: "m2", Title: "module2", Lessons: []models.Lesson{lesson("C")}},
		},
	}
}

func secondCourse() models.Course {
	return models.Course{
		ID:          "c2",
		Title:       "Charts",
		Description: "Visualize data",
		Instructor:  "Daniel",
		Category:    "data",
		Difficulty:  models.DifficultyIntermediate,
		Modules: []models.Module{
			{ID: "m3", Title: "module3", Lessons: []models.Lesson{lesson("D"), lesson("E")}},
		},
	}
}

func twoQuestionQuiz() models.Quiz {
	return models.Quiz{
		ID:           "q1",
		LessonID:     "B",
		PassingScore: 70,
		Questions: []models.Question{
			{Question: "first", Options: []string{"x", "y"}, CorrectAnswer: 1},
			{Question: "second", Options: []string{"x", "y"}, CorrectAnswer: 0},
		},
	}
}

type testRepos struct {
	courses  CourseRepository
	quizzes  QuizRepository
	progress UserProgressRepository
}

// newTestRepos builds real in-memory repositories seeded with the test data
func newTestRepos(progress ...models.UserProgress) testRepos {
	ids := 0
	return testRepos{
		courses: repositories.NewCourseRepository([]models.Course{twoModuleCourse(), secondCourse()}),
		quizzes: repositories.NewQuizRepository([]models.Quiz{twoQuestionQuiz()}),
		progress: repositories.NewUserProgressRepository(progress,
			repositories.WithClock(func() time.Time { return testNow }),
			repositories.WithIDGenerator(func() string { ids++; return fmt.Sprintf("p-new-%d", ids) }),
		),
	}
}

func fixedClock() func() time.Time {
	return func() time.Time { return testNow }
}

func nopLogger() *zap.Logger {
	return zap.NewNop()
}

// mockCourseRepository is a mock implementation of CourseRepository returning a fixed error
type mockCourseRepository struct {
	err error
}

func (m *mockCourseRepository) GetAll(ctx context.Context) ([]models.Course, error) {
	return nil, m.err
}

func (m *mockCourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	return nil, m.err
}

func (m *mockCourseRepository) Create(ctx context.Context, req *models.CreateCourseRequest) (*models.Course, error) {
	return nil, m.err
}

func (m *mockCourseRepository) Update(ctx context.Context, id string, req *models.UpdateCourseRequest) (*models.Course, error) {
	return nil, m.err
}

func (m *mockCourseRepository) Delete(ctx context.Context, id string) error {
	return m.err
}

// mockUserProgressRepository is a mock implementation of UserProgressRepository
type mockUserProgressRepository struct {
	progress  *models.UserProgress
	all       []models.UserProgress
	err       error
	updateErr error
	updated   *models.UpdateUserProgressRequest
}

func (m *mockUserProgressRepository) GetAll(ctx context.Context) ([]models.UserProgress, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.all, nil
}

func (m *mockUserProgressRepository) GetByID(ctx context.Context, id string) (*models.UserProgress, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.progress, nil
}

func (m *mockUserProgressRepository) GetByCourseID(ctx context.Context, courseID string) (*models.UserProgress, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.progress, nil
}

func (m *mockUserProgressRepository) Create(ctx context.Context, req *models.CreateUserProgressRequest) (*models.UserProgress, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.UserProgress{ID: "created", CourseID: req.CourseID}, nil
}

func (m *mockUserProgressRepository) Update(ctx context.Context, id string, req *models.UpdateUserProgressRequest) (*models.UserProgress, error) {
	m.updated = req
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	return m.progress, nil
}

func (m *mockUserProgressRepository) Delete(ctx context.Context, id string) error {
	return m.err
}
