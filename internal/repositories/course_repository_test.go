package repositories

import (
	"context"
	"testing"

	"github.com/learnhub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupCourseTestRepository creates a course repository seeded with test courses
func setupCourseTestRepository(t *testing.T) *courseRepository {
	t.Helper()
	return NewCourseRepository(testCourses(), WithIDGenerator(sequentialIDs()))
}

func TestNewCourseRepository(t *testing.T) {
	seed := testCourses()

	repo := NewCourseRepository(seed)
	seed[0].Title = "changed after seeding"

	require.NotNil(t, repo)
	course, err := repo.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Course 1", course.Title)
}

func TestCourseRepository_GetAll(t *testing.T) {
	repo := setupCourseTestRepository(t)

	courses, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "c1", courses[0].ID)
	assert.Equal(t, "c2", courses[1].ID)

	// mutating the returned snapshot does not leak into the store
	courses[0].Modules[0].Lessons[0].Title = "mutated"
	again, err := repo.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Empty(t, again.Modules[0].Lessons[0].Title)
}

func TestCourseRepository_GetByID(t *testing.T) {
	tests := []struct {
		name          string
		id            string
		expectedError bool
		expectedTitle string
	}{
		{name: "success", id: "c1", expectedTitle: "Course 1"},
		{name: "not found", id: "missing", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := setupCourseTestRepository(t)

			course, err := repo.GetByID(context.Background(), tt.id)

			if tt.expectedError {
				assert.ErrorIs(t, err, models.ErrNotFound)
				assert.Nil(t, course)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedTitle, course.Title)
			}
		})
	}
}

func TestCourseRepository_Create(t *testing.T) {
	tests := []struct {
		name            string
		req             *models.CreateCourseRequest
		expectedModules int
	}{
		{
			name:            "defaults missing modules to empty",
			req:             &models.CreateCourseRequest{Title: "New"},
			expectedModules: 0,
		},
		{
			name: "keeps modules and normalizes lessons",
			req: &models.CreateCourseRequest{
				Title:   "New",
				Modules: []models.Module{{ID: "m", Title: "M"}},
			},
			expectedModules: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := setupCourseTestRepository(t)

			course, err := repo.Create(context.Background(), tt.req)

			require.NoError(t, err)
			assert.Equal(t, "new-1", course.ID)
			assert.NotNil(t, course.Modules)
			assert.Len(t, course.Modules, tt.expectedModules)
			for _, m := range course.Modules {
				assert.NotNil(t, m.Lessons)
			}

			stored, err := repo.GetByID(context.Background(), course.ID)
			require.NoError(t, err)
			assert.Equal(t, course, stored)

			all, err := repo.GetAll(context.Background())
			require.NoError(t, err)
			assert.Len(t, all, 3)
		})
	}
}

func TestCourseRepository_Update(t *testing.T) {
	repo := setupCourseTestRepository(t)
	title := "Renamed"
	difficulty := models.DifficultyAdvanced

	updated, err := repo.Update(context.Background(), "c1", &models.UpdateCourseRequest{
		Title:      &title,
		Difficulty: &difficulty,
	})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, models.DifficultyAdvanced, updated.Difficulty)
	// untouched fields survive the shallow merge
	assert.Len(t, updated.Modules, 2)

	stored, err := repo.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func TestCourseRepository_Delete(t *testing.T) {
	repo := setupCourseTestRepository(t)

	err := repo.Delete(context.Background(), "c1")
	require.NoError(t, err)

	_, err = repo.GetByID(context.Background(), "c1")
	assert.ErrorIs(t, err, models.ErrNotFound)

	err = repo.Delete(context.Background(), "c1")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
