package repositories

import (
	"context"
	"fmt"

	"github.com/learnhub/backend/internal/models"
)

type courseRepository struct {
	store *memoryStore[models.Course]
	opts  options
}

// NewCourseRepository creates a new course repository seeded with the given courses
func NewCourseRepository(seed []models.Course, opts ...Option) *courseRepository {
	o := applyOptions(opts)
	return &courseRepository{
		store: newMemoryStore("course", seed,
			func(c models.Course) string { return c.ID },
			models.Course.Clone,
			o.latency,
		),
		opts: o,
	}
}

// GetAll retrieves every course in catalog order
func (r *courseRepository) GetAll(ctx context.Context) ([]models.Course, error) {
	courses, err := r.store.all(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get courses: %w", err)
	}
	return courses, nil
}

// GetByID retrieves a course by its ID
func (r *courseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	return r.store.get(ctx, id)
}

// Create stores a new course with a fresh ID
func (r *courseRepository) Create(ctx context.Context, req *models.CreateCourseRequest) (*models.Course, error) {
	course := models.Course{
		ID:          r.opts.newID(),
		Title:       req.Title,
		Description: req.Description,
		Instructor:  req.Instructor,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		Duration:    req.Duration,
		Thumbnail:   req.Thumbnail,
		Modules:     req.Modules,
	}.Clone()
	normalizeCourse(&course)

	created, err := r.store.insert(ctx, course, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}
	return created, nil
}

// Update merges the non-nil fields of req onto the stored course
func (r *courseRepository) Update(ctx context.Context, id string, req *models.UpdateCourseRequest) (*models.Course, error) {
	return r.store.modify(ctx, id, func(c *models.Course) {
		if req.Title != nil {
			c.Title = *req.Title
		}
		if req.Description != nil {
			c.Description = *req.Description
		}
		if req.Instructor != nil {
			c.Instructor = *req.Instructor
		}
		if req.Category != nil {
			c.Category = *req.Category
		}
		if req.Difficulty != nil {
			c.Difficulty = *req.Difficulty
		}
		if req.Duration != nil {
			c.Duration = *req.Duration
		}
		if req.Thumbnail != nil {
			c.Thumbnail = *req.Thumbnail
		}
		if req.Modules != nil {
			c.Modules = models.Course{Modules: req.Modules}.Clone().Modules
			normalizeCourse(c)
		}
	})
}

// Delete removes a course
func (r *courseRepository) Delete(ctx context.Context, id string) error {
	return r.store.remove(ctx, id)
}

func normalizeCourse(c *models.Course) {
	if c.Modules == nil {
		c.Modules = []models.Module{}
	}
	for i := range c.Modules {
		if c.Modules[i].Lessons == nil {
			c.Modules[i].Lessons = []models.Lesson{}
		}
	}
}
