package repositories

import (
	"context"
	"fmt"

	"github.com/learnhub/backend/internal/models"
)

type userProgressRepository struct {
	store *memoryStore[models.UserProgress]
	opts  options
}

// NewUserProgressRepository creates a new user progress repository seeded with the given records
func NewUserProgressRepository(seed []models.UserProgress, opts ...Option) *userProgressRepository {
	o := applyOptions(opts)
	normalized := make([]models.UserProgress, len(seed))
	for i, p := range seed {
		normalized[i] = p.Clone()
		normalizeProgress(&normalized[i])
	}
	return &userProgressRepository{
		store: newMemoryStore("progress", normalized,
			func(p models.UserProgress) string { return p.ID },
			models.UserProgress.Clone,
			o.latency,
		),
		opts: o,
	}
}

// GetAll retrieves every progress record
func (r *userProgressRepository) GetAll(ctx context.Context) ([]models.UserProgress, error) {
	progress, err := r.store.all(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	return progress, nil
}

// GetByID retrieves a progress record by its ID
func (r *userProgressRepository) GetByID(ctx context.Context, id string) (*models.UserProgress, error) {
	return r.store.get(ctx, id)
}

// GetByCourseID retrieves the progress record for a course.
// A course the user is not enrolled in yields nil and no error.
func (r *userProgressRepository) GetByCourseID(ctx context.Context, courseID string) (*models.UserProgress, error) {
	progress, err := r.store.find(ctx, func(p models.UserProgress) bool { return p.CourseID == courseID })
	if err != nil {
		return nil, fmt.Errorf("failed to get progress by course: %w", err)
	}
	return progress, nil
}

// Create stores a new progress record with a fresh ID.
//
// Returns models.ErrAlreadyExists if a record for the same course is already stored.
func (r *userProgressRepository) Create(ctx context.Context, req *models.CreateUserProgressRequest) (*models.UserProgress, error) {
	progress := models.UserProgress{
		ID:               r.opts.newID(),
		CourseID:         req.CourseID,
		CompletedLessons: req.CompletedLessons,
		QuizScores:       req.QuizScores,
		Notes:            req.Notes,
		LastAccessed:     req.LastAccessed,
	}
	if progress.LastAccessed.IsZero() {
		progress.LastAccessed = r.opts.now()
	}
	normalizeProgress(&progress)

	created, err := r.store.insert(ctx, progress, func(p models.UserProgress) bool {
		return p.CourseID == req.CourseID
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create progress: %w", err)
	}
	return created, nil
}

// Update merges the non-nil fields of req onto the stored progress record
func (r *userProgressRepository) Update(ctx context.Context, id string, req *models.UpdateUserProgressRequest) (*models.UserProgress, error) {
	return r.store.modify(ctx, id, func(p *models.UserProgress) {
		if req.CompletedLessons != nil {
			p.CompletedLessons = req.CompletedLessons
		}
		if req.QuizScores != nil {
			p.QuizScores = req.QuizScores
		}
		if req.Notes != nil {
			p.Notes = req.Notes
		}
		if req.LastAccessed != nil {
			p.LastAccessed = *req.LastAccessed
		}
	})
}

// Delete removes a progress record
func (r *userProgressRepository) Delete(ctx context.Context, id string) error {
	return r.store.remove(ctx, id)
}

func normalizeProgress(p *models.UserProgress) {
	if p.CompletedLessons == nil {
		p.CompletedLessons = []string{}
	}
	if p.QuizScores == nil {
		p.QuizScores = map[string]models.QuizScore{}
	}
	if p.Notes == nil {
		p.Notes = map[string]string{}
	}
}
