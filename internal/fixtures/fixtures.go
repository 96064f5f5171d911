// Package fixtures provides the static seed data for the in-memory repositories
package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/learnhub/backend/internal/models"
)

//go:embed data/*.json
var embedded embed.FS

const (
	coursesFile      = "courses.json"
	quizzesFile      = "quizzes.json"
	userProgressFile = "user_progress.json"
)

// Dataset holds the seed records for every collection
type Dataset struct {
	Courses      []models.Course
	Quizzes      []models.Quiz
	UserProgress []models.UserProgress
}

// Load reads the fixtures from dir, or from the embedded data set when dir is empty
func Load(dir string) (*Dataset, error) {
	var fsys fs.FS
	if dir == "" {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			return nil, fmt.Errorf("failed to open embedded fixtures: %w", err)
		}
		fsys = sub
	} else {
		fsys = os.DirFS(dir)
	}

	return LoadFS(fsys)
}

// LoadFS reads the fixtures from the given file system root
func LoadFS(fsys fs.FS) (*Dataset, error) {
	ds := &Dataset{}

	if err := decodeFile(fsys, coursesFile, &ds.Courses); err != nil {
		return nil, err
	}
	if err := decodeFile(fsys, quizzesFile, &ds.Quizzes); err != nil {
		return nil, err
	}
	if err := decodeFile(fsys, userProgressFile, &ds.UserProgress); err != nil {
		return nil, err
	}

	return ds, nil
}

func decodeFile(fsys fs.FS, name string, dst any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode fixture %s: %w", name, err)
	}
	return nil
}
