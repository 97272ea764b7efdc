package store

import (
	"errors"

	"github.com/ytget/swipetodo/internal/model"
)

// ErrNoData is returned by Storage.Load when nothing has been saved yet
var ErrNoData = errors.New("no saved tasks")

// Storage persists the full task list in a single slot.
type Storage interface {
	Load() ([]model.Task, error)
	Save(tasks []model.Task) error
}

// PlaceholderSource supplies the next example phrase for the empty entry.
type PlaceholderSource interface {
	Next() string
}
