package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every NotFoundError through errors.Is
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput marks request validation failures
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotEnrolled is returned when an operation needs a progress record for the course
	ErrNotEnrolled = errors.New("not enrolled in course")
	// ErrAlreadyExists is returned when creating a second progress record for a course
	ErrAlreadyExists = errors.New("already exists")
	// ErrIncompleteSubmission is returned when a quiz is submitted with unanswered questions
	ErrIncompleteSubmission = errors.New("all questions must be answered")
)

// NotFoundError reports that the requested id is absent from a collection
type NotFoundError struct {
	Entity string
	ID     string
}

// NewNotFoundError creates a NotFoundError for the entity and id
func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// Is makes errors.Is(err, ErrNotFound) true for any NotFoundError
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
