package services

import (
	"testing"

	"github.com/learnhub/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestPercentComplete(t *testing.T) {
	emptyCourse := models.Course{ID: "empty"}
	emptyModules := models.Course{ID: "hollow", Modules: []models.Module{{ID: "m", Title: "m"}}}

	tests := []struct {
		name     string
		course   models.Course
		progress *models.UserProgress
		expected float64
	}{
		{
			name:     "not enrolled",
			course:   twoModuleCourse(),
			progress: nil,
			expected: 0,
		},
		{
			name:     "no lessons completed",
			course:   twoModuleCourse(),
			progress: &models.UserProgress{CompletedLessons: []string{}},
			expected: 0,
		},
		{
			name:     "one of three lessons",
			course:   twoModuleCourse(),
			progress: &models.UserProgress{CompletedLessons: []string{"A"}},
			expected: 100.0 / 3.0,
		},
		{
			name:     "all lessons completed",
			course:   twoModuleCourse(),
			progress: &models.UserProgress{CompletedLessons: []string{"A", "B", "C"}},
			expected: 100,
		},
		{
			name:     "completion order does not matter",
			course:   twoModuleCourse(),
			progress: &models.UserProgress{CompletedLessons: []string{"C", "A", "B"}},
			expected: 100,
		},
		{
			name:     "ids of other courses are ignored",
			course:   twoModuleCourse(),
			progress: &models.UserProgress{CompletedLessons: []string{"A", "X", "Y", "Z"}},
			expected: 100.0 / 3.0,
		},
		{
			name:     "duplicate ids count once",
			course:   twoModuleCourse(),
			progress: &models.UserProgress{CompletedLessons: []string{"A", "A", "A"}},
			expected: 100.0 / 3.0,
		},
		{
			name:     "course without modules",
			course:   emptyCourse,
			progress: &models.UserProgress{CompletedLessons: []string{"A"}},
			expected: 0,
		},
		{
			name:     "modules without lessons",
			course:   emptyModules,
			progress: &models.UserProgress{CompletedLessons: []string{"A"}},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			percent := PercentComplete(tt.course, tt.progress)

			assert.InDelta(t, tt.expected, percent, 1e-9)
			assert.GreaterOrEqual(t, percent, 0.0)
			assert.LessOrEqual(t, percent, 100.0)
		})
	}
}

func TestPercentComplete_NotPreRounded(t *testing.T) {
	course := twoModuleCourse()

	percent := PercentComplete(course, &models.UserProgress{CompletedLessons: []string{"A", "B"}})

	assert.NotEqual(t, 67.0, percent)
	assert.Equal(t, 67, roundPercent(percent))
	assert.False(t, IsCourseCompleted(course, &models.UserProgress{CompletedLessons: []string{"A", "B"}}))
	assert.True(t, IsCourseCompleted(course, &models.UserProgress{CompletedLessons: []string{"A", "B", "C"}}))
}

func TestPercentComplete_ExactlyHundredIffAllCompleted(t *testing.T) {
	course := twoModuleCourse()
	all := []string{"A", "B", "C"}

	// every subset of the course's lessons
	for mask := 0; mask < 1<<len(all); mask++ {
		completed := []string{}
		for i, id := range all {
			if mask&(1<<i) != 0 {
				completed = append(completed, id)
			}
		}

		percent := PercentComplete(course, &models.UserProgress{CompletedLessons: completed})

		assert.Equal(t, len(completed) == len(all), percent == 100, "completed %v", completed)
	}
}

func TestCompletedLessonCount(t *testing.T) {
	course := twoModuleCourse()

	assert.Equal(t, 0, CompletedLessonCount(course, nil))
	assert.Equal(t, 2, CompletedLessonCount(course, &models.UserProgress{CompletedLessons: []string{"A", "C", "Q"}}))
	assert.Equal(t, 3, TotalLessons(course))
	assert.Len(t, CourseLessonIDs(course), 3)
}

func TestRoundPercent(t *testing.T) {
	assert.Equal(t, 0, roundPercent(0))
	assert.Equal(t, 33, roundPercent(100.0/3.0))
	assert.Equal(t, 50, roundPercent(49.5))
	assert.Equal(t, 100, roundPercent(100))
}
