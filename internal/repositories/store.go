package repositories

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/learnhub/backend/internal/models"
)

// Option configures an in-memory repository
type Option func(*options)

type options struct {
	latency time.Duration
	now     func() time.Time
	newID   func() string
}

func defaultOptions() options {
	return options{
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// WithLatency delays every repository call by d to simulate a remote store
func WithLatency(d time.Duration) Option {
	return func(o *options) {
		o.latency = d
	}
}

// WithClock overrides the clock used for timestamps assigned on create
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithIDGenerator overrides the generator used for ids assigned on create
func WithIDGenerator(newID func() string) Option {
	return func(o *options) {
		o.newID = newID
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// memoryStore is an ordered collection of records guarded by a RWMutex.
// Records are cloned on every read and write so callers never share memory with the store.
type memoryStore[T any] struct {
	mu      sync.RWMutex
	items   []T
	entity  string
	idOf    func(T) string
	clone   func(T) T
	latency time.Duration
}

func newMemoryStore[T any](entity string, seed []T, idOf func(T) string, clone func(T) T, latency time.Duration) *memoryStore[T] {
	items := make([]T, 0, len(seed))
	for _, item := range seed {
		items = append(items, clone(item))
	}
	return &memoryStore[T]{
		items:   items,
		entity:  entity,
		idOf:    idOf,
		clone:   clone,
		latency: latency,
	}
}

// wait simulates store latency and aborts when the context ends
func (s *memoryStore[T]) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *memoryStore[T]) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(item T) bool { return s.idOf(item) == id })
}

func (s *memoryStore[T]) all(ctx context.Context) ([]T, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, s.clone(item))
	}
	return out, nil
}

func (s *memoryStore[T]) get(ctx context.Context, id string) (*T, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return nil, models.NewNotFoundError(s.entity, id)
	}
	item := s.clone(s.items[idx])
	return &item, nil
}

// find returns the first record matching the predicate, or nil
func (s *memoryStore[T]) find(ctx context.Context, match func(T) bool) (*T, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := slices.IndexFunc(s.items, match)
	if idx == -1 {
		return nil, nil
	}
	item := s.clone(s.items[idx])
	return &item, nil
}

// insert appends the record unless conflict reports a clash with a stored one
func (s *memoryStore[T]) insert(ctx context.Context, item T, conflict func(T) bool) (*T, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if conflict != nil && slices.ContainsFunc(s.items, conflict) {
		return nil, models.ErrAlreadyExists
	}

	s.items = append(s.items, s.clone(item))
	out := s.clone(item)
	return &out, nil
}

// modify applies patch to a copy of the stored record and stores the result
func (s *memoryStore[T]) modify(ctx context.Context, id string, patch func(*T)) (*T, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return nil, models.NewNotFoundError(s.entity, id)
	}

	updated := s.clone(s.items[idx])
	patch(&updated)
	s.items[idx] = s.clone(updated)

	out := s.clone(updated)
	return &out, nil
}

func (s *memoryStore[T]) remove(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return models.NewNotFoundError(s.entity, id)
	}

	s.items = slices.Delete(s.items, idx, idx+1)
	return nil
}
